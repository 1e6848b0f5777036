package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// AppointmentRepositoryImpl implements the AppointmentRepository interface
type AppointmentRepositoryImpl struct {
	db *sqlx.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *sqlx.DB) ports.AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appointment *entities.Appointment) error {
	query := `
		INSERT INTO appointments (user_id, title, description, location, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		appointment.UserID, appointment.Title, appointment.Description,
		appointment.Location, appointment.StartTime, appointment.EndTime,
	).Scan(&appointment.ID, &appointment.CreatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *AppointmentRepositoryImpl) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Appointment, error) {
	query := `
		SELECT id, user_id, title, description, location, start_time, end_time, created_at
		FROM appointments
		WHERE id = $1 AND user_id = $2`

	var appointment entities.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	query := `SELECT user_id FROM appointments WHERE id = $1`

	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, entities.ErrAppointmentNotFound
		}
		return 0, fmt.Errorf("get appointment owner: %w", err)
	}

	return ownerID, nil
}

func (r *AppointmentRepositoryImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Appointment, error) {
	query := `
		SELECT id, user_id, title, description, location, start_time, end_time, created_at
		FROM appointments
		WHERE user_id = $1
		ORDER BY start_time DESC`

	appointments := []*entities.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepositoryImpl) ListByOwnerAndDate(ctx context.Context, ownerID int64, day time.Time) ([]*entities.Appointment, error) {
	query := `
		SELECT id, user_id, title, description, location, start_time, end_time, created_at
		FROM appointments
		WHERE user_id = $1 AND start_time::date = $2::date
		ORDER BY start_time ASC`

	appointments := []*entities.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query, ownerID, day)
	if err != nil {
		return nil, fmt.Errorf("list appointments by date: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentRepositoryImpl) Update(ctx context.Context, appointment *entities.Appointment) error {
	query := `
		UPDATE appointments
		SET title = $3, description = $4, location = $5, start_time = $6, end_time = $7
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		appointment.ID, appointment.UserID, appointment.Title, appointment.Description,
		appointment.Location, appointment.StartTime, appointment.EndTime)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}

	return checkAffected(result, entities.ErrAppointmentNotFound)
}

func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM appointments WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	return checkAffected(result, entities.ErrAppointmentNotFound)
}
