package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))
	return c, rec
}

type stubTaskRepo struct {
	createFn        func(ctx context.Context, task *entities.Task) error
	getByIDForOwner func(ctx context.Context, id, ownerID int64) (*entities.Task, error)
	getOwnerID      func(ctx context.Context, id int64) (int64, error)
	listByOwner     func(ctx context.Context, ownerID int64) ([]*entities.Task, error)
	updateFn        func(ctx context.Context, task *entities.Task) error
	deleteFn        func(ctx context.Context, id, ownerID int64) error
	setStatusFn     func(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error
}

func (s *stubTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	return s.createFn(ctx, task)
}

func (s *stubTaskRepo) GetByIDForOwner(ctx context.Context, id, ownerID int64) (*entities.Task, error) {
	return s.getByIDForOwner(ctx, id, ownerID)
}

func (s *stubTaskRepo) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	return s.getOwnerID(ctx, id)
}

func (s *stubTaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Task, error) {
	return s.listByOwner(ctx, ownerID)
}

func (s *stubTaskRepo) Update(ctx context.Context, task *entities.Task) error {
	return s.updateFn(ctx, task)
}

func (s *stubTaskRepo) Delete(ctx context.Context, id, ownerID int64) error {
	return s.deleteFn(ctx, id, ownerID)
}

func (s *stubTaskRepo) SetStatus(ctx context.Context, id, ownerID int64, status entities.TaskStatus) error {
	return s.setStatusFn(ctx, id, ownerID, status)
}

type stubShareRepo struct {
	createFn func(ctx context.Context, share *entities.SharedItem) error
}

func (s *stubShareRepo) Create(ctx context.Context, share *entities.SharedItem) error {
	return s.createFn(ctx, share)
}

func (s *stubShareRepo) ListTasksSharedWith(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	return nil, nil
}

func (s *stubShareRepo) ListTasksSharedBy(ctx context.Context, userID int64) ([]*entities.SharedTask, error) {
	return nil, nil
}

func (s *stubShareRepo) ListAppointmentsSharedWith(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	return nil, nil
}

func (s *stubShareRepo) ListAppointmentsSharedBy(ctx context.Context, userID int64) ([]*entities.SharedAppointment, error) {
	return nil, nil
}

func (s *stubShareRepo) ListRecipients(ctx context.Context, ref entities.SharedItemRef) ([]entities.ShareRecipient, error) {
	return nil, nil
}

func (s *stubShareRepo) SetResponse(ctx context.Context, itemID, responderID int64, confirmed, declined bool) error {
	return nil
}

func newTaskHandler(taskRepo *stubTaskRepo, shareRepo *stubShareRepo) *TaskHandler {
	log := logger.NewNop()
	taskService := services.NewTaskService(taskRepo, shareRepo, log)
	shareService := services.NewShareService(shareRepo, taskRepo, nil, log)
	return NewTaskHandler(taskService, shareService, log)
}

func TestCreateTaskEndpoint(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		taskRepo := &stubTaskRepo{
			createFn: func(ctx context.Context, task *entities.Task) error {
				task.ID = 42
				return nil
			},
		}
		h := newTaskHandler(taskRepo, &stubShareRepo{})

		c, rec := newTestContext(t, http.MethodPost, "/api/v1/tasks", `{"title":"Buy milk"}`)
		require.NoError(t, h.CreateTask(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp ports.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		h := newTaskHandler(&stubTaskRepo{}, &stubShareRepo{})

		c, _ := newTestContext(t, http.MethodPost, "/api/v1/tasks", `{"description":"no title"}`)
		err := h.CreateTask(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetTaskEndpoint(t *testing.T) {
	t.Run("unknown task", func(t *testing.T) {
		taskRepo := &stubTaskRepo{
			getByIDForOwner: func(ctx context.Context, id, ownerID int64) (*entities.Task, error) {
				return nil, entities.ErrTaskNotFound
			},
		}
		h := newTaskHandler(taskRepo, &stubShareRepo{})

		c, _ := newTestContext(t, http.MethodGet, "/api/v1/tasks/99", "")
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := h.GetTask(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h := newTaskHandler(&stubTaskRepo{}, &stubShareRepo{})

		c, _ := newTestContext(t, http.MethodGet, "/api/v1/tasks/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.GetTask(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestShareTaskEndpoint(t *testing.T) {
	t.Run("successful share", func(t *testing.T) {
		taskRepo := &stubTaskRepo{
			getOwnerID: func(ctx context.Context, id int64) (int64, error) {
				return 1, nil
			},
		}
		shareRepo := &stubShareRepo{
			createFn: func(ctx context.Context, share *entities.SharedItem) error {
				share.ID = 7
				return nil
			},
		}
		h := newTaskHandler(taskRepo, shareRepo)

		c, rec := newTestContext(t, http.MethodPost, "/api/v1/tasks/5/share", `{"sharedWith":2}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, h.ShareTask(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ports.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("sharing with yourself", func(t *testing.T) {
		h := newTaskHandler(&stubTaskRepo{}, &stubShareRepo{})

		c, _ := newTestContext(t, http.MethodPost, "/api/v1/tasks/5/share", `{"sharedWith":1}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.ShareTask(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("task owned by someone else", func(t *testing.T) {
		taskRepo := &stubTaskRepo{
			getOwnerID: func(ctx context.Context, id int64) (int64, error) {
				return 3, nil
			},
		}
		h := newTaskHandler(taskRepo, &stubShareRepo{})

		c, _ := newTestContext(t, http.MethodPost, "/api/v1/tasks/5/share", `{"sharedWith":2}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.ShareTask(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
