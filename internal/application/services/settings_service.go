package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// SettingsService manages per-user preferences and profile self-service
type SettingsService struct {
	settingsRepo ports.SettingsRepository
	userRepo     ports.UserRepository
	authRepo     ports.AuthRepository
	logger       *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo ports.SettingsRepository, userRepo ports.UserRepository, authRepo ports.AuthRepository, logger *logger.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		authRepo:     authRepo,
		logger:       logger,
	}
}

// GetSettings returns the caller's settings row. Every user gets one at
// registration, so a miss here indicates data corruption.
func (s *SettingsService) GetSettings(ctx context.Context, callerID int64) (*entities.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// UpdatePrimaryColor sets the caller's primary theme color
func (s *SettingsService) UpdatePrimaryColor(ctx context.Context, callerID int64, color string) error {
	return s.settingsRepo.UpdatePrimaryColor(ctx, callerID, color)
}

// UpdateSecondaryColor sets the caller's secondary theme color
func (s *SettingsService) UpdateSecondaryColor(ctx context.Context, callerID int64, color string) error {
	return s.settingsRepo.UpdateSecondaryColor(ctx, callerID, color)
}

// UpdateNotifications toggles the caller's notification preference
func (s *SettingsService) UpdateNotifications(ctx context.Context, callerID int64, enabled bool) error {
	return s.settingsRepo.UpdateNotifications(ctx, callerID, enabled)
}

// UpdateProfile changes the caller's username and email. Collisions with
// another account surface as ErrDuplicateUser.
func (s *SettingsService) UpdateProfile(ctx context.Context, callerID int64, req ports.UpdateProfileRequest) error {
	if err := s.userRepo.UpdateProfile(ctx, callerID, req.Username, req.Email); err != nil {
		return err
	}

	s.logger.Info("Profile updated", "user_id", callerID)
	return nil
}

// ChangePassword verifies the current password against the stored hash before
// replacing it, then revokes all refresh tokens so stolen sessions die with
// the old password.
func (s *SettingsService) ChangePassword(ctx context.Context, callerID int64, req ports.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		s.logger.LogSecurityEvent("password_change_wrong_password", callerID, "", nil)
		return entities.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, callerID, string(hash)); err != nil {
		return err
	}

	if err := s.authRepo.RevokeAllUserTokens(ctx, callerID); err != nil {
		s.logger.WithError(err).Warn("Failed to revoke refresh tokens after password change", "user_id", callerID)
	}

	s.logger.Info("Password changed", "user_id", callerID)
	return nil
}

// ExportUserData assembles the caller's profile and settings for download.
// Credentials and internal hashes are never part of the export.
func (s *SettingsService) ExportUserData(ctx context.Context, callerID int64) (*ports.UserDataExport, error) {
	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return &ports.UserDataExport{
		User: &ports.UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			LastLogin: user.LastLogin,
		},
		Settings: settings,
	}, nil
}

// DeleteAccount removes the caller's account. Tasks, appointments, shares,
// messages and settings go with it through the cascade rules.
func (s *SettingsService) DeleteAccount(ctx context.Context, callerID int64) error {
	if err := s.userRepo.Delete(ctx, callerID); err != nil {
		return err
	}

	s.logger.LogSecurityEvent("account_deleted", callerID, "", nil)
	return nil
}
