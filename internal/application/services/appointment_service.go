package services

import (
	"context"
	"fmt"
	"time"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// AppointmentService handles ownership-scoped appointment operations. Unlike
// tasks, mutations distinguish a missing appointment (not found) from one
// owned by someone else (forbidden).
type AppointmentService struct {
	appointmentRepo ports.AppointmentRepository
	logger          *logger.Logger
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointmentRepo ports.AppointmentRepository, logger *logger.Logger) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ListAppointments returns the caller's appointments, most recent start first
func (s *AppointmentService) ListAppointments(ctx context.Context, callerID int64) ([]*entities.Appointment, error) {
	appointments, err := s.appointmentRepo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appointments, nil
}

// ListAppointmentsByDate returns the caller's appointments on a given day,
// earliest first
func (s *AppointmentService) ListAppointmentsByDate(ctx context.Context, callerID int64, day time.Time) ([]*entities.Appointment, error) {
	appointments, err := s.appointmentRepo.ListByOwnerAndDate(ctx, callerID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments by date: %w", err)
	}

	return appointments, nil
}

// GetAppointment returns one of the caller's appointments
func (s *AppointmentService) GetAppointment(ctx context.Context, callerID, appointmentID int64) (*entities.Appointment, error) {
	return s.appointmentRepo.GetByIDForOwner(ctx, appointmentID, callerID)
}

// CreateAppointment creates a new appointment owned by the caller
func (s *AppointmentService) CreateAppointment(ctx context.Context, callerID int64, req ports.CreateAppointmentRequest) (int64, error) {
	appointment := &entities.Appointment{
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := appointment.Validate(); err != nil {
		return 0, err
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info("Appointment created successfully", "appointment_id", appointment.ID, "user_id", callerID)

	return appointment.ID, nil
}

// UpdateAppointment updates an appointment after checking the caller owns it
func (s *AppointmentService) UpdateAppointment(ctx context.Context, callerID, appointmentID int64, req ports.UpdateAppointmentRequest) error {
	if err := s.checkOwnership(ctx, appointmentID, callerID); err != nil {
		return err
	}

	appointment := &entities.Appointment{
		ID:          appointmentID,
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := appointment.Validate(); err != nil {
		return err
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return err
	}

	s.logger.Info("Appointment updated successfully", "appointment_id", appointmentID, "user_id", callerID)

	return nil
}

// DeleteAppointment deletes an appointment after checking the caller owns it
func (s *AppointmentService) DeleteAppointment(ctx context.Context, callerID, appointmentID int64) error {
	if err := s.checkOwnership(ctx, appointmentID, callerID); err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID, callerID); err != nil {
		return err
	}

	s.logger.Info("Appointment deleted successfully", "appointment_id", appointmentID, "user_id", callerID)

	return nil
}

// checkOwnership resolves the owner of an appointment: a missing row surfaces
// as not found, a foreign one as forbidden.
func (s *AppointmentService) checkOwnership(ctx context.Context, appointmentID, callerID int64) error {
	ownerID, err := s.appointmentRepo.GetOwnerID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if ownerID != callerID {
		s.logger.Warn("Appointment mutation by non-owner rejected",
			"appointment_id", appointmentID, "caller_id", callerID, "owner_id", ownerID)
		return entities.ErrForbidden
	}

	return nil
}
