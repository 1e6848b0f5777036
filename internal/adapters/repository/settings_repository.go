package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// SettingsRepositoryImpl implements the SettingsRepository interface
type SettingsRepositoryImpl struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) ports.SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, primary_color, secondary_color, notifications_enabled
		FROM user_settings
		WHERE user_id = $1`

	var settings entities.UserSettings
	err := r.db.GetContext(ctx, &settings, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepositoryImpl) UpdatePrimaryColor(ctx context.Context, userID int64, color string) error {
	query := `UPDATE user_settings SET primary_color = $2 WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, color)
	if err != nil {
		return fmt.Errorf("update primary color: %w", err)
	}

	return checkAffected(result, entities.ErrSettingsNotFound)
}

func (r *SettingsRepositoryImpl) UpdateSecondaryColor(ctx context.Context, userID int64, color string) error {
	query := `UPDATE user_settings SET secondary_color = $2 WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, color)
	if err != nil {
		return fmt.Errorf("update secondary color: %w", err)
	}

	return checkAffected(result, entities.ErrSettingsNotFound)
}

func (r *SettingsRepositoryImpl) UpdateNotifications(ctx context.Context, userID int64, enabled bool) error {
	query := `UPDATE user_settings SET notifications_enabled = $2 WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, enabled)
	if err != nil {
		return fmt.Errorf("update notification settings: %w", err)
	}

	return checkAffected(result, entities.ErrSettingsNotFound)
}
