package ports

import (
	"context"
	"time"

	"github.com/organizer/core/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create inserts the user and their default settings row in one
	// transaction so a crash cannot leave a user without settings.
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context) ([]*entities.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) error
	UpdateRoleProfile(ctx context.Context, id int64, username, email string, role entities.UserRole) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, excludeID int64, query string, limit int) ([]*entities.User, error)
	GetStats(ctx context.Context) (*AdminStats, error)
}

// TaskRepository defines the interface for task data operations. Every read
// or write that takes an ownerID is ownership-scoped: a row that exists but
// belongs to someone else behaves exactly like a missing row.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Task, error)
	GetOwnerID(ctx context.Context, id int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id, ownerID int64) error
	SetStatus(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error
}

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entities.Appointment) error
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Appointment, error)
	GetOwnerID(ctx context.Context, id int64) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Appointment, error)
	ListByOwnerAndDate(ctx context.Context, ownerID int64, day time.Time) ([]*entities.Appointment, error)
	Update(ctx context.Context, appointment *entities.Appointment) error
	Delete(ctx context.Context, id, ownerID int64) error
}

// ShareRepository defines the interface for sharing-relation data operations
type ShareRepository interface {
	Create(ctx context.Context, share *entities.SharedItem) error
	ListTasksSharedWith(ctx context.Context, userID int64) ([]*entities.SharedTask, error)
	ListTasksSharedBy(ctx context.Context, userID int64) ([]*entities.SharedTask, error)
	ListAppointmentsSharedWith(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error)
	ListAppointmentsSharedBy(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error)
	ListRecipients(ctx context.Context, ref entities.SharedItemRef) ([]entities.ShareRecipient, error)
	// SetResponse updates both response flags in one statement scoped by item
	// id, item type and recipient id; zero rows affected means no relation
	// targets the responder.
	SetResponse(ctx context.Context, itemID, responderID int64, confirmed, declined bool) error
}

// MessageRepository defines the interface for direct-message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	ListConversations(ctx context.Context, userID int64) ([]*entities.Conversation, error)
	ListBetween(ctx context.Context, userID, partnerID int64) ([]*entities.Message, error)
	MarkConversationRead(ctx context.Context, userID, partnerID int64) (int64, error)
}

// SettingsRepository defines the interface for user settings operations
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdatePrimaryColor(ctx context.Context, userID int64, color string) error
	UpdateSecondaryColor(ctx context.Context, userID int64, color string) error
	UpdateNotifications(ctx context.Context, userID int64, enabled bool) error
}

// AuthRepository defines the interface for refresh-token persistence
type AuthRepository interface {
	CreateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
	// CleanupExpiredTokens deletes tokens past their expiry and reports how
	// many rows went. Revoked but unexpired tokens stay for auditing.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// AdminStats holds the counters for the admin dashboard
type AdminStats struct {
	TotalUsers     int64 `json:"total_users" db:"total_users"`
	ActiveUsers    int64 `json:"active_users" db:"active_users"`
	TotalTasks     int64 `json:"total_tasks" db:"total_tasks"`
	CompletedTasks int64 `json:"completed_tasks" db:"completed_tasks"`
}

// RefreshToken represents a refresh token record
type RefreshToken struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	TokenHash string     `json:"token_hash" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	RevokedAt *time.Time `json:"revoked_at" db:"revoked_at"`
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsRevoked checks if the refresh token is revoked
func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

// IsValid checks if the refresh token is valid
func (rt *RefreshToken) IsValid() bool {
	return !rt.IsExpired() && !rt.IsRevoked()
}
