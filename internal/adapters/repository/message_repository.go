package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// MessageRepositoryImpl implements the MessageRepository interface
type MessageRepositoryImpl struct {
	db *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *sqlx.DB) ports.MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entities.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		message.SenderID, message.ReceiverID, message.Content,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return entities.ErrRecipientNotFound
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListConversations returns one row per partner the user has exchanged
// messages with: the latest message, its time and the unread inbound count.
func (r *MessageRepositoryImpl) ListConversations(ctx context.Context, userID int64) ([]*entities.Conversation, error) {
	query := `
		WITH threads AS (
			SELECT
				CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS partner_id,
				content,
				created_at,
				ROW_NUMBER() OVER (
					PARTITION BY CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END
					ORDER BY created_at DESC
				) AS rn
			FROM messages
			WHERE sender_id = $1 OR receiver_id = $1
		)
		SELECT th.partner_id,
			u.username AS partner_username,
			th.content AS last_message,
			th.created_at AS last_message_at,
			(SELECT COUNT(*) FROM messages m
				WHERE m.sender_id = th.partner_id AND m.receiver_id = $1 AND m.is_read = FALSE) AS unread_count
		FROM threads th
		JOIN users u ON u.id = th.partner_id
		WHERE th.rn = 1
		ORDER BY th.created_at DESC`

	conversations := []*entities.Conversation{}
	err := r.db.SelectContext(ctx, &conversations, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return conversations, nil
}

func (r *MessageRepositoryImpl) ListBetween(ctx context.Context, userID, partnerID int64) ([]*entities.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC`

	messages := []*entities.Message{}
	err := r.db.SelectContext(ctx, &messages, query, userID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (r *MessageRepositoryImpl) MarkConversationRead(ctx context.Context, userID, partnerID int64) (int64, error) {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`

	result, err := r.db.ExecContext(ctx, query, userID, partnerID)
	if err != nil {
		return 0, fmt.Errorf("mark conversation read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	return rowsAffected, nil
}
