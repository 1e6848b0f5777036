package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// ShareRepositoryImpl implements the ShareRepository interface. The
// shared_items table carries a polymorphic (item_type, item_id) pair, so the
// database cannot enforce referential integrity against tasks/appointments;
// existence and ownership are checked at the service layer before any insert.
type ShareRepositoryImpl struct {
	db *sqlx.DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *sqlx.DB) ports.ShareRepository {
	return &ShareRepositoryImpl{db: db}
}

func (r *ShareRepositoryImpl) Create(ctx context.Context, share *entities.SharedItem) error {
	query := `
		INSERT INTO shared_items (item_type, item_id, shared_by, shared_with)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		share.ItemType, share.ItemID, share.SharedBy, share.SharedWith,
	).Scan(&share.ID, &share.CreatedAt)

	if err != nil {
		// shared_with references users(id); a violation means the recipient
		// does not exist.
		if isForeignKeyViolation(err) {
			return entities.ErrRecipientNotFound
		}
		if isUniqueViolation(err) {
			return entities.ErrAlreadyShared
		}
		return fmt.Errorf("create share: %w", err)
	}

	return nil
}

// ListTasksSharedWith returns tasks shared to the user, most recent first,
// each joined with the sharing owner's username.
func (r *ShareRepositoryImpl) ListTasksSharedWith(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.description, t.due_date, t.status, t.created_at,
			u.username AS shared_by_username
		FROM tasks t
		JOIN shared_items si ON t.id = si.item_id AND si.item_type = 'task'
		JOIN users u ON si.shared_by = u.id
		WHERE si.shared_with = $1
		ORDER BY t.created_at DESC`

	tasks := []*entities.SharedTask{}
	err := r.db.SelectContext(ctx, &tasks, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks shared with user: %w", err)
	}

	return tasks, nil
}

func (r *ShareRepositoryImpl) ListTasksSharedBy(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.description, t.due_date, t.status, t.created_at,
			u.username AS shared_with_username
		FROM tasks t
		JOIN shared_items si ON t.id = si.item_id AND si.item_type = 'task'
		JOIN users u ON si.shared_with = u.id
		WHERE si.shared_by = $1
		ORDER BY t.created_at DESC`

	tasks := []*entities.SharedTask{}
	err := r.db.SelectContext(ctx, &tasks, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks shared by user: %w", err)
	}

	return tasks, nil
}

// ListAppointmentsSharedWith returns appointments shared to the user,
// soonest first, with the recipient's response state.
func (r *ShareRepositoryImpl) ListAppointmentsSharedWith(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	query := `
		SELECT a.id, a.user_id, a.title, a.description, a.location, a.start_time, a.end_time, a.created_at,
			u.username AS shared_by_username, si.confirmed, si.declined
		FROM appointments a
		JOIN shared_items si ON a.id = si.item_id AND si.item_type = 'appointment'
		JOIN users u ON si.shared_by = u.id
		WHERE si.shared_with = $1
		ORDER BY a.start_time ASC`

	appointments := []*entities.SharedAppointment{}
	err := r.db.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments shared with user: %w", err)
	}

	return appointments, nil
}

func (r *ShareRepositoryImpl) ListAppointmentsSharedBy(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	query := `
		SELECT a.id, a.user_id, a.title, a.description, a.location, a.start_time, a.end_time, a.created_at,
			u.username AS shared_with_username, si.confirmed, si.declined
		FROM appointments a
		JOIN shared_items si ON a.id = si.item_id AND si.item_type = 'appointment'
		JOIN users u ON si.shared_with = u.id
		WHERE si.shared_by = $1
		ORDER BY a.start_time ASC`

	appointments := []*entities.SharedAppointment{}
	err := r.db.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments shared by user: %w", err)
	}

	return appointments, nil
}

func (r *ShareRepositoryImpl) ListRecipients(ctx context.Context, ref entities.SharedItemRef) ([]entities.ShareRecipient, error) {
	query := `
		SELECT si.id AS share_id, si.shared_with, u.username, si.confirmed, si.declined
		FROM shared_items si
		JOIN users u ON si.shared_with = u.id
		WHERE si.item_type = $1 AND si.item_id = $2
		ORDER BY u.username`

	recipients := []entities.ShareRecipient{}
	err := r.db.SelectContext(ctx, &recipients, query, ref.Type, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("list share recipients: %w", err)
	}

	return recipients, nil
}

// SetResponse writes both response flags in one statement scoped by item id
// and recipient, so the flags can never both end up true and only the
// recipient of the relation can change them.
func (r *ShareRepositoryImpl) SetResponse(ctx context.Context, itemID, responderID int64, confirmed, declined bool) error {
	query := `
		UPDATE shared_items
		SET confirmed = $3, declined = $4
		WHERE item_id = $1 AND item_type = 'appointment' AND shared_with = $2`

	result, err := r.db.ExecContext(ctx, query, itemID, responderID, confirmed, declined)
	if err != nil {
		return fmt.Errorf("set share response: %w", err)
	}

	return checkAffected(result, entities.ErrShareNotFound)
}
