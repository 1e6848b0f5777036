package services

import (
	"context"
	"fmt"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// ShareService creates and queries directed sharing relations. Only owners
// may initiate a share and only recipients may respond to one.
type ShareService struct {
	shareRepo       ports.ShareRepository
	taskRepo        ports.TaskRepository
	appointmentRepo ports.AppointmentRepository
	logger          *logger.Logger
}

// NewShareService creates a new share service
func NewShareService(shareRepo ports.ShareRepository, taskRepo ports.TaskRepository, appointmentRepo ports.AppointmentRepository, logger *logger.Logger) *ShareService {
	return &ShareService{
		shareRepo:       shareRepo,
		taskRepo:        taskRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// CreateShare inserts a sharing relation after verifying the caller owns the
// referenced item. Recipient existence is left to the shared_with foreign
// key; a violation surfaces as ErrRecipientNotFound without a partial write.
func (s *ShareService) CreateShare(ctx context.Context, ref entities.SharedItemRef, ownerID, recipientID int64) (int64, error) {
	if recipientID == ownerID {
		return 0, entities.ErrSelfShare
	}

	if err := s.guardOwnership(ctx, ref, ownerID); err != nil {
		return 0, err
	}

	share := &entities.SharedItem{
		ItemType:   ref.Type,
		ItemID:     ref.ID,
		SharedBy:   ownerID,
		SharedWith: recipientID,
	}

	if err := s.shareRepo.Create(ctx, share); err != nil {
		return 0, err
	}

	s.logger.Info("Item shared successfully",
		"share_id", share.ID, "item_type", ref.Type, "item_id", ref.ID,
		"shared_by", ownerID, "shared_with", recipientID)

	return share.ID, nil
}

// ListTasksSharedWithMe returns tasks shared to the caller, most recent first
func (s *ShareService) ListTasksSharedWithMe(ctx context.Context, callerID int64) ([]*entities.SharedTask, error) {
	tasks, err := s.shareRepo.ListTasksSharedWith(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared tasks: %w", err)
	}

	return tasks, nil
}

// ListTasksSharedByMe returns tasks the caller has shared out
func (s *ShareService) ListTasksSharedByMe(ctx context.Context, callerID int64) ([]*entities.SharedTask, error) {
	tasks, err := s.shareRepo.ListTasksSharedBy(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared tasks: %w", err)
	}

	return tasks, nil
}

// ListAppointmentsSharedWithMe returns appointments shared to the caller,
// soonest first, with the caller's response state.
func (s *ShareService) ListAppointmentsSharedWithMe(ctx context.Context, callerID int64) ([]*entities.SharedAppointment, error) {
	appointments, err := s.shareRepo.ListAppointmentsSharedWith(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared appointments: %w", err)
	}

	return appointments, nil
}

// ListAppointmentsSharedByMe returns appointments the caller has shared out
func (s *ShareService) ListAppointmentsSharedByMe(ctx context.Context, callerID int64) ([]*entities.SharedAppointment, error) {
	appointments, err := s.shareRepo.ListAppointmentsSharedBy(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared appointments: %w", err)
	}

	return appointments, nil
}

// RespondToShare records the recipient's decision on a shared appointment.
// Both flags are written together, so the final state is idempotent: a second
// confirm leaves (true,false), a decline after a confirm flips to
// (false,true). Tasks carry no accept/decline semantics.
func (s *ShareService) RespondToShare(ctx context.Context, appointmentID, responderID int64, decision entities.ShareDecision) error {
	share := &entities.SharedItem{}
	if err := share.Apply(decision); err != nil {
		return err
	}

	err := s.shareRepo.SetResponse(ctx, appointmentID, responderID, share.Confirmed, share.Declined)
	if err != nil {
		return err
	}

	s.logger.Info("Share response recorded",
		"appointment_id", appointmentID, "responder_id", responderID, "decision", decision)

	return nil
}

// guardOwnership dispatches on the reference type to the owning table.
// Task lookups fold "exists but foreign" into not-found so existence never
// leaks to non-owners; appointment mutations surface forbidden instead.
func (s *ShareService) guardOwnership(ctx context.Context, ref entities.SharedItemRef, ownerID int64) error {
	switch ref.Type {
	case entities.ItemTypeTask:
		actualOwner, err := s.taskRepo.GetOwnerID(ctx, ref.ID)
		if err != nil {
			return err
		}
		if actualOwner != ownerID {
			return entities.ErrTaskNotFound
		}
	case entities.ItemTypeAppointment:
		actualOwner, err := s.appointmentRepo.GetOwnerID(ctx, ref.ID)
		if err != nil {
			return err
		}
		if actualOwner != ownerID {
			return entities.ErrForbidden
		}
	default:
		return entities.ErrInvalidItemType
	}

	return nil
}
