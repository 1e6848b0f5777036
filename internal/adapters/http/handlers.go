package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and receive an initial token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ports.RegisterRequest true "Registration data"
// @Success 201 {object} ports.AuthResponse
// @Failure 400 {object} ports.ErrorResponse
// @Failure 409 {object} ports.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateUser) {
			return echo.NewHTTPError(http.StatusConflict, "Email or username already in use")
		}
		h.logger.Error("Registration failed", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Registration failed")
	}

	return c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ports.LoginRequest true "Credentials"
// @Success 200 {object} ports.AuthResponse
// @Failure 400 {object} ports.ErrorResponse
// @Failure 401 {object} ports.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("Login failed", "error", err, "email", req.Email)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	return c.JSON(http.StatusOK, response)
}

// RefreshToken godoc
// @Summary Refresh the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} ports.AuthResponse
// @Failure 401 {object} ports.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		h.logger.Error("Token refresh failed", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	return c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Log out
// @Description Revoke every refresh token of the caller
// @Tags auth
// @Produce json
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		h.logger.Error("Logout failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Logged out successfully"})
}

// AdminHandler handles administrator requests. Routes using it sit behind
// the admin role middleware.
type AdminHandler struct {
	adminService *services.AdminService
	logger       *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} ports.UserSummary
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("List users failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve users")
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a user's profile and role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body ports.AdminUpdateUserRequest true "User data"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Failure 409 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	var req ports.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.adminService.UpdateUser(c.Request().Context(), userID, req); err != nil {
		return h.mapError(c, err, "Update user failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "User updated successfully"})
}

// DeleteUser godoc
// @Summary Delete a user and all their data
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), userID); err != nil {
		return h.mapError(c, err, "Delete user failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "User deleted successfully"})
}

// GetStats godoc
// @Summary Usage statistics
// @Tags admin
// @Produce json
// @Success 200 {object} ports.AdminStats
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminService.GetStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve statistics")
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) mapError(c echo.Context, err error, msg string, fields ...interface{}) error {
	return mapDomainError(h.logger, err, msg, fields...)
}

// Utility functions and helper types

// mapDomainError translates domain sentinels into HTTP errors. Anything not
// recognized is logged with detail and answered with a generic 500 so
// internals never reach the client.
func mapDomainError(log *logger.Logger, err error, msg string, fields ...interface{}) error {
	switch {
	case errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrAppointmentNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrShareNotFound),
		errors.Is(err, entities.ErrSettingsNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrRecipientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "recipient does not exist")
	case errors.Is(err, entities.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Access denied")
	case errors.Is(err, entities.ErrSelfShare),
		errors.Is(err, entities.ErrSelfMessage),
		errors.Is(err, entities.ErrInvalidTimeRange),
		errors.Is(err, entities.ErrInvalidItemType),
		errors.Is(err, entities.ErrInvalidDecision):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrAlreadyShared),
		errors.Is(err, entities.ErrDuplicateUser):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Errorw(msg, append([]interface{}{"error", err}, fields...)...)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

func getUserIDFromContext(c echo.Context) int64 {
	if id, ok := c.Get("user_id").(int64); ok {
		return id
	}
	return 0
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// Request/Response types
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
