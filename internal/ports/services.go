package ports

import (
	"context"
	"time"

	"github.com/organizer/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID int64) error
	ValidateToken(tokenString string) (*Claims, error)
}

// TaskService interface for ownership-scoped task operations. The callerID on
// every method is the authenticated principal, threaded explicitly.
type TaskService interface {
	ListTasks(ctx context.Context, callerID int64) ([]*entities.Task, error)
	GetTask(ctx context.Context, callerID, taskID int64) (*TaskDetail, error)
	CreateTask(ctx context.Context, callerID int64, req CreateTaskRequest) (int64, error)
	UpdateTask(ctx context.Context, callerID, taskID int64, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, callerID, taskID int64) error
	CompleteTask(ctx context.Context, callerID, taskID int64) error
}

// AppointmentService interface for ownership-scoped appointment operations
type AppointmentService interface {
	ListAppointments(ctx context.Context, callerID int64) ([]*entities.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, callerID int64, day time.Time) ([]*entities.Appointment, error)
	GetAppointment(ctx context.Context, callerID, appointmentID int64) (*entities.Appointment, error)
	CreateAppointment(ctx context.Context, callerID int64, req CreateAppointmentRequest) (int64, error)
	UpdateAppointment(ctx context.Context, callerID, appointmentID int64, req UpdateAppointmentRequest) error
	DeleteAppointment(ctx context.Context, callerID, appointmentID int64) error
}

// ShareService interface for the sharing subsystem
type ShareService interface {
	CreateShare(ctx context.Context, ref entities.SharedItemRef, ownerID, recipientID int64) (int64, error)
	ListTasksSharedWithMe(ctx context.Context, callerID int64) ([]*entities.SharedTask, error)
	ListTasksSharedByMe(ctx context.Context, callerID int64) ([]*entities.SharedTask, error)
	ListAppointmentsSharedWithMe(ctx context.Context, callerID int64) ([]*entities.SharedAppointment, error)
	ListAppointmentsSharedByMe(ctx context.Context, callerID int64) ([]*entities.SharedAppointment, error)
	RespondToShare(ctx context.Context, appointmentID, responderID int64, decision entities.ShareDecision) error
}

// MessageService interface for direct messaging
type MessageService interface {
	ListConversations(ctx context.Context, callerID int64) ([]*entities.Conversation, error)
	GetConversation(ctx context.Context, callerID, partnerID int64) ([]*entities.Message, error)
	MarkConversationRead(ctx context.Context, callerID, partnerID int64) error
	SendMessage(ctx context.Context, callerID int64, req SendMessageRequest) (int64, error)
	SearchUsers(ctx context.Context, callerID int64, query string) ([]*UserSummary, error)
}

// SettingsService interface for settings and profile management
type SettingsService interface {
	GetSettings(ctx context.Context, callerID int64) (*entities.UserSettings, error)
	UpdatePrimaryColor(ctx context.Context, callerID int64, color string) error
	UpdateSecondaryColor(ctx context.Context, callerID int64, color string) error
	UpdateNotifications(ctx context.Context, callerID int64, enabled bool) error
	UpdateProfile(ctx context.Context, callerID int64, req UpdateProfileRequest) error
	ChangePassword(ctx context.Context, callerID int64, req ChangePasswordRequest) error
	ExportUserData(ctx context.Context, callerID int64) (*UserDataExport, error)
	DeleteAccount(ctx context.Context, callerID int64) error
}

// AdminService interface for administrator operations
type AdminService interface {
	ListUsers(ctx context.Context) ([]*UserSummary, error)
	UpdateUser(ctx context.Context, userID int64, req AdminUpdateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
	GetStats(ctx context.Context) (*AdminStats, error)
}

// Request/Response Types

// Auth related types
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	User         *entities.User `json:"user"`
}

type Claims struct {
	UserID   int64             `json:"user_id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Role     entities.UserRole `json:"role"`
}

// Task related types
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskDetail is a task plus its sharing metadata, so the detail view renders
// share state without a second round trip.
type TaskDetail struct {
	entities.Task
	SharingInfo []entities.ShareRecipient `json:"sharing_info"`
}

// Appointment related types
type CreateAppointmentRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Location    *string   `json:"location" validate:"omitempty,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

type UpdateAppointmentRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Location    *string   `json:"location" validate:"omitempty,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

// Share related types
type ShareRequest struct {
	SharedWith int64 `json:"sharedWith" validate:"required,gt=0"`
}

// Message related types
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=2000"`
}

// Settings related types
type UpdateColorRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

type UpdateNotificationsRequest struct {
	NotificationsEnabled *bool `json:"notificationsEnabled" validate:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserDataExport is the caller's profile and settings, never credentials
type UserDataExport struct {
	User     *UserSummary           `json:"user"`
	Settings *entities.UserSettings `json:"settings"`
}

// Admin related types
type AdminUpdateUserRequest struct {
	Username string            `json:"username" validate:"required,min=3,max=50"`
	Email    string            `json:"email" validate:"required,email"`
	Role     entities.UserRole `json:"role" validate:"required,oneof=user admin"`
}

// UserSummary is the public projection of a user
type UserSummary struct {
	ID        int64             `json:"id" db:"id"`
	Username  string            `json:"username" db:"username"`
	Email     string            `json:"email" db:"email"`
	Role      entities.UserRole `json:"role" db:"role"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	LastLogin *time.Time        `json:"last_login" db:"last_login"`
}

// Common response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
