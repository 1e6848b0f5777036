package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrShareNotFound       = errors.New("share not found or not modifiable")
	ErrRecipientNotFound   = errors.New("recipient does not exist")
	ErrSettingsNotFound    = errors.New("settings not found")
	ErrForbidden           = errors.New("forbidden")
	ErrSelfShare           = errors.New("cannot share an item with yourself")
	ErrSelfMessage         = errors.New("cannot send a message to yourself")
	ErrAlreadyShared       = errors.New("item already shared with this user")
	ErrDuplicateUser       = errors.New("username or email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrInvalidItemType     = errors.New("invalid item type")
	ErrInvalidDecision     = errors.New("invalid share decision")
)

// Enums and types
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ItemType discriminates which table a shared item id resolves against.
type ItemType string

const (
	ItemTypeTask        ItemType = "task"
	ItemTypeAppointment ItemType = "appointment"
)

// ShareDecision is a recipient's response to a shared appointment.
type ShareDecision string

const (
	ShareDecisionConfirm ShareDecision = "confirm"
	ShareDecisionDecline ShareDecision = "decline"
)

// User represents a user in the system
type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
}

// Task represents a task owned by a single user
type Task struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	Status      TaskStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Appointment represents a calendar appointment owned by a single user
type Appointment struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Location    *string   `json:"location" db:"location"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
	EndTime     time.Time `json:"end_time" db:"end_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SharedItem is a directed sharing relation between an owner and a recipient.
// Confirmed and declined only carry meaning for appointments; both false means
// the recipient has not responded yet.
type SharedItem struct {
	ID         int64     `json:"id" db:"id"`
	ItemType   ItemType  `json:"item_type" db:"item_type"`
	ItemID     int64     `json:"item_id" db:"item_id"`
	SharedBy   int64     `json:"shared_by" db:"shared_by"`
	SharedWith int64     `json:"shared_with" db:"shared_with"`
	Confirmed  bool      `json:"confirmed" db:"confirmed"`
	Declined   bool      `json:"declined" db:"declined"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SharedItemRef is a typed reference into the tasks or appointments table.
// The item_type/item_id pair in shared_items cannot be a real foreign key, so
// every resolution goes through per-type dispatch on this reference.
type SharedItemRef struct {
	Type ItemType
	ID   int64
}

func TaskRef(id int64) SharedItemRef {
	return SharedItemRef{Type: ItemTypeTask, ID: id}
}

func AppointmentRef(id int64) SharedItemRef {
	return SharedItemRef{Type: ItemTypeAppointment, ID: id}
}

// Message represents a direct message between two users
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Conversation summarizes the message thread with one partner
type Conversation struct {
	PartnerID       int64     `json:"partner_id" db:"partner_id"`
	PartnerUsername string    `json:"partner_username" db:"partner_username"`
	LastMessage     string    `json:"last_message" db:"last_message"`
	LastMessageAt   time.Time `json:"last_message_at" db:"last_message_at"`
	UnreadCount     int       `json:"unread_count" db:"unread_count"`
}

// UserSettings holds per-user UI preferences, one row per user
type UserSettings struct {
	UserID               int64  `json:"user_id" db:"user_id"`
	PrimaryColor         string `json:"primary_color" db:"primary_color"`
	SecondaryColor       string `json:"secondary_color" db:"secondary_color"`
	NotificationsEnabled bool   `json:"notifications_enabled" db:"notifications_enabled"`
}

// SharedTask is a task row joined with the identity on the other side of the
// sharing relation.
type SharedTask struct {
	Task
	SharedByUsername   string `json:"shared_by_username,omitempty" db:"shared_by_username"`
	SharedWithUsername string `json:"shared_with_username,omitempty" db:"shared_with_username"`
}

// SharedAppointment is an appointment row joined with the sharing relation and
// the recipient's response state.
type SharedAppointment struct {
	Appointment
	SharedByUsername   string `json:"shared_by_username,omitempty" db:"shared_by_username"`
	SharedWithUsername string `json:"shared_with_username,omitempty" db:"shared_with_username"`
	Confirmed          bool   `json:"confirmed" db:"confirmed"`
	Declined           bool   `json:"declined" db:"declined"`
}

// ShareRecipient describes one recipient of an item, for the owner's detail view
type ShareRecipient struct {
	ShareID    int64  `json:"share_id" db:"share_id"`
	SharedWith int64  `json:"shared_with" db:"shared_with"`
	Username   string `json:"username" db:"username"`
	Confirmed  bool   `json:"confirmed" db:"confirmed"`
	Declined   bool   `json:"declined" db:"declined"`
}

// Business logic methods for Task
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TaskStatusCompleted
}

func (t *Task) Complete() {
	t.Status = TaskStatusCompleted
}

// Business logic methods for Appointment
func (a *Appointment) Validate() error {
	if !a.EndTime.After(a.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}

func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

func (a *Appointment) OccursOn(day time.Time) bool {
	y1, m1, d1 := a.StartTime.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Business logic methods for SharedItem. The two response flags are always
// written together so they can never both be true.
func (s *SharedItem) Confirm() {
	s.Confirmed = true
	s.Declined = false
}

func (s *SharedItem) Decline() {
	s.Confirmed = false
	s.Declined = true
}

func (s *SharedItem) IsPending() bool {
	return !s.Confirmed && !s.Declined
}

// Apply mutates the response flags according to the decision.
func (s *SharedItem) Apply(decision ShareDecision) error {
	switch decision {
	case ShareDecisionConfirm:
		s.Confirm()
	case ShareDecisionDecline:
		s.Decline()
	default:
		return ErrInvalidDecision
	}
	return nil
}

// NotFoundError returns the per-type not-found sentinel for a reference.
func (r SharedItemRef) NotFoundError() error {
	switch r.Type {
	case ItemTypeTask:
		return ErrTaskNotFound
	case ItemTypeAppointment:
		return ErrAppointmentNotFound
	default:
		return ErrInvalidItemType
	}
}

// Utility methods
func (ur UserRole) IsValid() bool {
	switch ur {
	case UserRoleUser, UserRoleAdmin:
		return true
	default:
		return false
	}
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

func (it ItemType) IsValid() bool {
	switch it {
	case ItemTypeTask, ItemTypeAppointment:
		return true
	default:
		return false
	}
}

func (sd ShareDecision) IsValid() bool {
	switch sd {
	case ShareDecisionConfirm, ShareDecisionDecline:
		return true
	default:
		return false
	}
}
