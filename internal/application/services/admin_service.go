package services

import (
	"context"
	"fmt"

	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// AdminService exposes operations restricted to administrators. Role checks
// happen in the HTTP layer; these methods assume an admin caller.
type AdminService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo ports.UserRepository, logger *logger.Logger) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns every registered user as a public summary
func (s *AdminService) ListUsers(ctx context.Context) ([]*ports.UserSummary, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]*ports.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &ports.UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			LastLogin: user.LastLogin,
		})
	}

	return summaries, nil
}

// UpdateUser rewrites a user's profile and role
func (s *AdminService) UpdateUser(ctx context.Context, userID int64, req ports.AdminUpdateUserRequest) error {
	if err := s.userRepo.UpdateRoleProfile(ctx, userID, req.Username, req.Email, req.Role); err != nil {
		return err
	}

	s.logger.Info("User updated by admin", "user_id", userID, "role", req.Role)
	return nil
}

// DeleteUser removes a user and all their data through the cascade rules
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.LogSecurityEvent("user_deleted_by_admin", userID, "", nil)
	return nil
}

// GetStats returns the dashboard counters
func (s *AdminService) GetStats(ctx context.Context) (*ports.AdminStats, error) {
	stats, err := s.userRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return stats, nil
}
