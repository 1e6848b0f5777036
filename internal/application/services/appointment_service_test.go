package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

func TestCreateAppointment(t *testing.T) {
	start := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	t.Run("valid time range", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			createFn: func(ctx context.Context, appointment *entities.Appointment) error {
				appointment.ID = 5
				return nil
			},
		}
		svc := NewAppointmentService(appointmentRepo, logger.NewNop())

		id, err := svc.CreateAppointment(context.Background(), 1, ports.CreateAppointmentRequest{
			Title:     "Dentist",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("end before start rejected before any write", func(t *testing.T) {
		svc := NewAppointmentService(&fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateAppointment(context.Background(), 1, ports.CreateAppointmentRequest{
			Title:     "Dentist",
			StartTime: start,
			EndTime:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, entities.ErrInvalidTimeRange)
	})
}

func TestUpdateAppointmentOwnership(t *testing.T) {
	start := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	req := ports.UpdateAppointmentRequest{
		Title:     "Dentist",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}

	t.Run("owner may update", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return 1, nil
			},
			updateFn: func(ctx context.Context, appointment *entities.Appointment) error {
				assert.Equal(t, int64(5), appointment.ID)
				return nil
			},
		}
		svc := NewAppointmentService(appointmentRepo, logger.NewNop())

		assert.NoError(t, svc.UpdateAppointment(context.Background(), 1, 5, req))
	})

	t.Run("foreign appointment is forbidden", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return 99, nil
			},
		}
		svc := NewAppointmentService(appointmentRepo, logger.NewNop())

		err := svc.UpdateAppointment(context.Background(), 1, 5, req)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("absent appointment is not found", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return 0, entities.ErrAppointmentNotFound
			},
		}
		svc := NewAppointmentService(appointmentRepo, logger.NewNop())

		err := svc.UpdateAppointment(context.Background(), 1, 5, req)
		assert.ErrorIs(t, err, entities.ErrAppointmentNotFound)
	})
}

func TestDeleteAppointmentForbidden(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
			return 99, nil
		},
	}
	svc := NewAppointmentService(appointmentRepo, logger.NewNop())

	err := svc.DeleteAppointment(context.Background(), 1, 5)
	assert.ErrorIs(t, err, entities.ErrForbidden)
}

func TestListAppointmentsByDate(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	appointmentRepo := &fakeAppointmentRepo{
		listByOwnerAndDateFn: func(ctx context.Context, ownerID int64, got time.Time) ([]*entities.Appointment, error) {
			assert.Equal(t, day, got)
			return []*entities.Appointment{{ID: 5, Title: "Dentist"}}, nil
		},
	}
	svc := NewAppointmentService(appointmentRepo, logger.NewNop())

	appointments, err := svc.ListAppointmentsByDate(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Dentist", appointments[0].Title)
}
