package services

import (
	"context"
	"time"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/ports"
)

// Function-field fakes for the repository ports. Tests set only the fields
// they need; calling an unset field panics, which surfaces unexpected
// repository traffic immediately.

type fakeTaskRepo struct {
	createFn          func(ctx context.Context, task *entities.Task) error
	getByIDForOwnerFn func(ctx context.Context, id, ownerID int64) (*entities.Task, error)
	getOwnerIDFn      func(ctx context.Context, id int64) (int64, error)
	listByOwnerFn     func(ctx context.Context, ownerID int64) ([]*entities.Task, error)
	updateFn          func(ctx context.Context, task *entities.Task) error
	deleteFn          func(ctx context.Context, id, ownerID int64) error
	setStatusFn       func(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	return f.createFn(ctx, task)
}

func (f *fakeTaskRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Task, error) {
	return f.getByIDForOwnerFn(ctx, id, ownerID)
}

func (f *fakeTaskRepo) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	return f.getOwnerIDFn(ctx, id)
}

func (f *fakeTaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Task, error) {
	return f.listByOwnerFn(ctx, ownerID)
}

func (f *fakeTaskRepo) Update(ctx context.Context, task *entities.Task) error {
	return f.updateFn(ctx, task)
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id, ownerID int64) error {
	return f.deleteFn(ctx, id, ownerID)
}

func (f *fakeTaskRepo) SetStatus(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error {
	return f.setStatusFn(ctx, id, ownerID, status)
}

type fakeAppointmentRepo struct {
	createFn             func(ctx context.Context, appointment *entities.Appointment) error
	getByIDForOwnerFn    func(ctx context.Context, id, ownerID int64) (*entities.Appointment, error)
	getOwnerIDFn         func(ctx context.Context, id int64) (int64, error)
	listByOwnerFn        func(ctx context.Context, ownerID int64) ([]*entities.Appointment, error)
	listByOwnerAndDateFn func(ctx context.Context, ownerID int64, day time.Time) ([]*entities.Appointment, error)
	updateFn             func(ctx context.Context, appointment *entities.Appointment) error
	deleteFn             func(ctx context.Context, id, ownerID int64) error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entities.Appointment) error {
	return f.createFn(ctx, appointment)
}

func (f *fakeAppointmentRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Appointment, error) {
	return f.getByIDForOwnerFn(ctx, id, ownerID)
}

func (f *fakeAppointmentRepo) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	return f.getOwnerIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Appointment, error) {
	return f.listByOwnerFn(ctx, ownerID)
}

func (f *fakeAppointmentRepo) ListByOwnerAndDate(ctx context.Context, ownerID int64, day time.Time) ([]*entities.Appointment, error) {
	return f.listByOwnerAndDateFn(ctx, ownerID, day)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entities.Appointment) error {
	return f.updateFn(ctx, appointment)
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id, ownerID int64) error {
	return f.deleteFn(ctx, id, ownerID)
}

type fakeShareRepo struct {
	createFn                     func(ctx context.Context, share *entities.SharedItem) error
	listTasksSharedWithFn        func(ctx context.Context, userID int64) ([]*entities.SharedTask, error)
	listTasksSharedByFn          func(ctx context.Context, userID int64) ([]*entities.SharedTask, error)
	listAppointmentsSharedWithFn func(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error)
	listAppointmentsSharedByFn   func(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error)
	listRecipientsFn             func(ctx context.Context, ref entities.SharedItemRef) ([]entities.ShareRecipient, error)
	setResponseFn                func(ctx context.Context, itemID, responderID int64, confirmed, declined bool) error
}

func (f *fakeShareRepo) Create(ctx context.Context, share *entities.SharedItem) error {
	return f.createFn(ctx, share)
}

func (f *fakeShareRepo) ListTasksSharedWith(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	return f.listTasksSharedWithFn(ctx, userID)
}

func (f *fakeShareRepo) ListTasksSharedBy(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	return f.listTasksSharedByFn(ctx, userID)
}

func (f *fakeShareRepo) ListAppointmentsSharedWith(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	return f.listAppointmentsSharedWithFn(ctx, userID)
}

func (f *fakeShareRepo) ListAppointmentsSharedBy(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	return f.listAppointmentsSharedByFn(ctx, userID)
}

func (f *fakeShareRepo) ListRecipients(ctx context.Context, ref entities.SharedItemRef) ([]entities.ShareRecipient, error) {
	return f.listRecipientsFn(ctx, ref)
}

func (f *fakeShareRepo) SetResponse(ctx context.Context, itemID, responderID int64, confirmed, declined bool) error {
	return f.setResponseFn(ctx, itemID, responderID, confirmed, declined)
}

type fakeUserRepo struct {
	createFn                  func(ctx context.Context, user *entities.User) error
	getByIDFn                 func(ctx context.Context, id int64) (*entities.User, error)
	getByEmailFn              func(ctx context.Context, email string) (*entities.User, error)
	existsByEmailOrUsernameFn func(ctx context.Context, email, username string) (bool, error)
	listFn                    func(ctx context.Context) ([]*entities.User, error)
	updateProfileFn           func(ctx context.Context, id int64, username, email string) error
	updateRoleProfileFn       func(ctx context.Context, id int64, username, email string, role entities.UserRole) error
	updatePasswordFn          func(ctx context.Context, id int64, passwordHash string) error
	updateLastLoginFn         func(ctx context.Context, id int64, at time.Time) error
	deleteFn                  func(ctx context.Context, id int64) error
	searchFn                  func(ctx context.Context, excludeID int64, query string, limit int) ([]*entities.User, error)
	getStatsFn                func(ctx context.Context) (*ports.AdminStats, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return f.existsByEmailOrUsernameFn(ctx, email, username)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, username, email string) error {
	return f.updateProfileFn(ctx, id, username, email)
}

func (f *fakeUserRepo) UpdateRoleProfile(ctx context.Context, id int64, username, email string, role entities.UserRole) error {
	return f.updateRoleProfileFn(ctx, id, username, email, role)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return f.updatePasswordFn(ctx, id, passwordHash)
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return f.updateLastLoginFn(ctx, id, at)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeUserRepo) Search(ctx context.Context, excludeID int64, query string, limit int) ([]*entities.User, error) {
	return f.searchFn(ctx, excludeID, query, limit)
}

func (f *fakeUserRepo) GetStats(ctx context.Context) (*ports.AdminStats, error) {
	return f.getStatsFn(ctx)
}

type fakeMessageRepo struct {
	createFn               func(ctx context.Context, message *entities.Message) error
	listConversationsFn    func(ctx context.Context, userID int64) ([]*entities.Conversation, error)
	listBetweenFn          func(ctx context.Context, userID, partnerID int64) ([]*entities.Message, error)
	markConversationReadFn func(ctx context.Context, userID, partnerID int64) (int64, error)
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entities.Message) error {
	return f.createFn(ctx, message)
}

func (f *fakeMessageRepo) ListConversations(ctx context.Context, userID int64) ([]*entities.Conversation, error) {
	return f.listConversationsFn(ctx, userID)
}

func (f *fakeMessageRepo) ListBetween(ctx context.Context, userID, partnerID int64) ([]*entities.Message, error) {
	return f.listBetweenFn(ctx, userID, partnerID)
}

func (f *fakeMessageRepo) MarkConversationRead(ctx context.Context, userID, partnerID int64) (int64, error) {
	return f.markConversationReadFn(ctx, userID, partnerID)
}

type fakeSettingsRepo struct {
	getByUserIDFn          func(ctx context.Context, userID int64) (*entities.UserSettings, error)
	updatePrimaryColorFn   func(ctx context.Context, userID int64, color string) error
	updateSecondaryColorFn func(ctx context.Context, userID int64, color string) error
	updateNotificationsFn  func(ctx context.Context, userID int64, enabled bool) error
}

func (f *fakeSettingsRepo) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return f.getByUserIDFn(ctx, userID)
}

func (f *fakeSettingsRepo) UpdatePrimaryColor(ctx context.Context, userID int64, color string) error {
	return f.updatePrimaryColorFn(ctx, userID, color)
}

func (f *fakeSettingsRepo) UpdateSecondaryColor(ctx context.Context, userID int64, color string) error {
	return f.updateSecondaryColorFn(ctx, userID, color)
}

func (f *fakeSettingsRepo) UpdateNotifications(ctx context.Context, userID int64, enabled bool) error {
	return f.updateNotificationsFn(ctx, userID, enabled)
}

type fakeAuthRepo struct {
	createRefreshTokenFn  func(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	getRefreshTokenFn     func(ctx context.Context, tokenHash string) (*ports.RefreshToken, error)
	revokeRefreshTokenFn  func(ctx context.Context, tokenHash string) error
	revokeAllUserTokensFn func(ctx context.Context, userID int64) error
	cleanupExpiredFn      func(ctx context.Context) (int64, error)
}

func (f *fakeAuthRepo) CreateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return f.createRefreshTokenFn(ctx, userID, tokenHash, expiresAt)
}

func (f *fakeAuthRepo) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshToken, error) {
	return f.getRefreshTokenFn(ctx, tokenHash)
}

func (f *fakeAuthRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return f.revokeRefreshTokenFn(ctx, tokenHash)
}

func (f *fakeAuthRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	return f.revokeAllUserTokensFn(ctx, userID)
}

func (f *fakeAuthRepo) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return f.cleanupExpiredFn(ctx)
}
