package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
)

func TestCreateShareTask(t *testing.T) {
	const ownerID, recipientID, taskID = int64(1), int64(2), int64(7)

	t.Run("owner shares own task", func(t *testing.T) {
		var inserted *entities.SharedItem
		shareRepo := &fakeShareRepo{
			createFn: func(ctx context.Context, share *entities.SharedItem) error {
				share.ID = 42
				inserted = share
				return nil
			},
		}
		taskRepo := &fakeTaskRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				assert.Equal(t, taskID, id)
				return ownerID, nil
			},
		}

		svc := NewShareService(shareRepo, taskRepo, &fakeAppointmentRepo{}, logger.NewNop())

		shareID, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, recipientID)
		require.NoError(t, err)
		assert.Equal(t, int64(42), shareID)

		require.NotNil(t, inserted)
		assert.Equal(t, entities.ItemTypeTask, inserted.ItemType)
		assert.Equal(t, taskID, inserted.ItemID)
		assert.Equal(t, ownerID, inserted.SharedBy)
		assert.Equal(t, recipientID, inserted.SharedWith)
	})

	t.Run("self share rejected before any lookup", func(t *testing.T) {
		svc := NewShareService(&fakeShareRepo{}, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, ownerID)
		assert.ErrorIs(t, err, entities.ErrSelfShare)
	})

	t.Run("foreign task folds to not found", func(t *testing.T) {
		taskRepo := &fakeTaskRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return int64(99), nil
			},
		}
		svc := NewShareService(&fakeShareRepo{}, taskRepo, &fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrTaskNotFound)
	})

	t.Run("absent task", func(t *testing.T) {
		taskRepo := &fakeTaskRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return 0, entities.ErrTaskNotFound
			},
		}
		svc := NewShareService(&fakeShareRepo{}, taskRepo, &fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrTaskNotFound)
	})

	t.Run("missing recipient surfaces from insert", func(t *testing.T) {
		shareRepo := &fakeShareRepo{
			createFn: func(ctx context.Context, share *entities.SharedItem) error {
				return entities.ErrRecipientNotFound
			},
		}
		taskRepo := &fakeTaskRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return ownerID, nil
			},
		}
		svc := NewShareService(shareRepo, taskRepo, &fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrRecipientNotFound)
	})

	t.Run("duplicate share surfaces conflict", func(t *testing.T) {
		shareRepo := &fakeShareRepo{
			createFn: func(ctx context.Context, share *entities.SharedItem) error {
				return entities.ErrAlreadyShared
			},
		}
		taskRepo := &fakeTaskRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return ownerID, nil
			},
		}
		svc := NewShareService(shareRepo, taskRepo, &fakeAppointmentRepo{}, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.TaskRef(taskID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrAlreadyShared)
	})
}

func TestCreateShareAppointment(t *testing.T) {
	const ownerID, recipientID, appointmentID = int64(1), int64(2), int64(5)

	t.Run("owner shares own appointment", func(t *testing.T) {
		shareRepo := &fakeShareRepo{
			createFn: func(ctx context.Context, share *entities.SharedItem) error {
				share.ID = 9
				assert.Equal(t, entities.ItemTypeAppointment, share.ItemType)
				return nil
			},
		}
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return ownerID, nil
			},
		}
		svc := NewShareService(shareRepo, &fakeTaskRepo{}, appointmentRepo, logger.NewNop())

		shareID, err := svc.CreateShare(context.Background(), entities.AppointmentRef(appointmentID), ownerID, recipientID)
		require.NoError(t, err)
		assert.Equal(t, int64(9), shareID)
	})

	t.Run("foreign appointment is forbidden, not hidden", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return int64(99), nil
			},
		}
		svc := NewShareService(&fakeShareRepo{}, &fakeTaskRepo{}, appointmentRepo, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.AppointmentRef(appointmentID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("absent appointment", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			getOwnerIDFn: func(ctx context.Context, id int64) (int64, error) {
				return 0, entities.ErrAppointmentNotFound
			},
		}
		svc := NewShareService(&fakeShareRepo{}, &fakeTaskRepo{}, appointmentRepo, logger.NewNop())

		_, err := svc.CreateShare(context.Background(), entities.AppointmentRef(appointmentID), ownerID, recipientID)
		assert.ErrorIs(t, err, entities.ErrAppointmentNotFound)
	})
}

func TestCreateShareInvalidType(t *testing.T) {
	svc := NewShareService(&fakeShareRepo{}, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

	ref := entities.SharedItemRef{Type: "note", ID: 1}
	_, err := svc.CreateShare(context.Background(), ref, 1, 2)
	assert.ErrorIs(t, err, entities.ErrInvalidItemType)
}

func TestRespondToShare(t *testing.T) {
	const appointmentID, responderID = int64(5), int64(2)

	t.Run("confirm sets confirmed and clears declined", func(t *testing.T) {
		var gotConfirmed, gotDeclined bool
		shareRepo := &fakeShareRepo{
			setResponseFn: func(ctx context.Context, itemID, rID int64, confirmed, declined bool) error {
				assert.Equal(t, appointmentID, itemID)
				assert.Equal(t, responderID, rID)
				gotConfirmed, gotDeclined = confirmed, declined
				return nil
			},
		}
		svc := NewShareService(shareRepo, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

		err := svc.RespondToShare(context.Background(), appointmentID, responderID, entities.ShareDecisionConfirm)
		require.NoError(t, err)
		assert.True(t, gotConfirmed)
		assert.False(t, gotDeclined)
	})

	t.Run("decline sets declined and clears confirmed", func(t *testing.T) {
		var gotConfirmed, gotDeclined bool
		shareRepo := &fakeShareRepo{
			setResponseFn: func(ctx context.Context, itemID, rID int64, confirmed, declined bool) error {
				gotConfirmed, gotDeclined = confirmed, declined
				return nil
			},
		}
		svc := NewShareService(shareRepo, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

		err := svc.RespondToShare(context.Background(), appointmentID, responderID, entities.ShareDecisionDecline)
		require.NoError(t, err)
		assert.False(t, gotConfirmed)
		assert.True(t, gotDeclined)
	})

	t.Run("invalid decision rejected before the write", func(t *testing.T) {
		svc := NewShareService(&fakeShareRepo{}, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

		err := svc.RespondToShare(context.Background(), appointmentID, responderID, entities.ShareDecision("maybe"))
		assert.ErrorIs(t, err, entities.ErrInvalidDecision)
	})

	t.Run("no relation targeting the responder", func(t *testing.T) {
		shareRepo := &fakeShareRepo{
			setResponseFn: func(ctx context.Context, itemID, rID int64, confirmed, declined bool) error {
				return entities.ErrShareNotFound
			},
		}
		svc := NewShareService(shareRepo, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())

		err := svc.RespondToShare(context.Background(), appointmentID, responderID, entities.ShareDecisionConfirm)
		assert.ErrorIs(t, err, entities.ErrShareNotFound)
	})
}

func TestListShared(t *testing.T) {
	shareRepo := &fakeShareRepo{
		listTasksSharedWithFn: func(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
			return []*entities.SharedTask{{SharedByUsername: "alice"}}, nil
		},
		listTasksSharedByFn: func(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
			return []*entities.SharedTask{{SharedWithUsername: "bob"}}, nil
		},
		listAppointmentsSharedWithFn: func(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
			return []*entities.SharedAppointment{{Confirmed: true}}, nil
		},
		listAppointmentsSharedByFn: func(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
			return []*entities.SharedAppointment{}, nil
		},
	}
	svc := NewShareService(shareRepo, &fakeTaskRepo{}, &fakeAppointmentRepo{}, logger.NewNop())
	ctx := context.Background()

	withMe, err := svc.ListTasksSharedWithMe(ctx, 2)
	require.NoError(t, err)
	require.Len(t, withMe, 1)
	assert.Equal(t, "alice", withMe[0].SharedByUsername)

	byMe, err := svc.ListTasksSharedByMe(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byMe, 1)
	assert.Equal(t, "bob", byMe[0].SharedWithUsername)

	appointmentsWithMe, err := svc.ListAppointmentsSharedWithMe(ctx, 2)
	require.NoError(t, err)
	require.Len(t, appointmentsWithMe, 1)
	assert.True(t, appointmentsWithMe[0].Confirmed)

	appointmentsByMe, err := svc.ListAppointmentsSharedByMe(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, appointmentsByMe)
}
