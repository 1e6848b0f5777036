package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// SettingsHandler handles settings and profile self-service requests
type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings godoc
// @Summary Get the caller's settings
// @Tags settings
// @Produce json
// @Success 200 {object} entities.UserSettings
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID := getUserIDFromContext(c)

	settings, err := h.settingsService.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "Get settings failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, settings)
}

// UpdatePrimaryColor godoc
// @Summary Set the primary theme color
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ports.UpdateColorRequest true "Color"
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /settings/primary-color [patch]
func (h *SettingsHandler) UpdatePrimaryColor(c echo.Context) error {
	return h.updateColor(c, h.settingsService.UpdatePrimaryColor, "Primary color updated")
}

// UpdateSecondaryColor godoc
// @Summary Set the secondary theme color
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ports.UpdateColorRequest true "Color"
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /settings/secondary-color [patch]
func (h *SettingsHandler) UpdateSecondaryColor(c echo.Context) error {
	return h.updateColor(c, h.settingsService.UpdateSecondaryColor, "Secondary color updated")
}

// UpdateNotifications godoc
// @Summary Toggle notifications
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ports.UpdateNotificationsRequest true "Preference"
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /settings/notifications [patch]
func (h *SettingsHandler) UpdateNotifications(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.settingsService.UpdateNotifications(c.Request().Context(), userID, *req.NotificationsEnabled); err != nil {
		return mapDomainError(h.logger, err, "Update notifications failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Notification settings updated"})
}

// UpdateProfile godoc
// @Summary Update username and email
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ports.UpdateProfileRequest true "Profile"
// @Success 200 {object} ports.MessageResponse
// @Failure 409 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.settingsService.UpdateProfile(c.Request().Context(), userID, req); err != nil {
		return mapDomainError(h.logger, err, "Update profile failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Profile updated successfully"})
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags settings
// @Accept json
// @Produce json
// @Param request body ports.ChangePasswordRequest true "Passwords"
// @Success 200 {object} ports.MessageResponse
// @Failure 401 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /settings/password [put]
func (h *SettingsHandler) ChangePassword(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.settingsService.ChangePassword(c.Request().Context(), userID, req); err != nil {
		return mapDomainError(h.logger, err, "Change password failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Password changed successfully"})
}

// ExportData godoc
// @Summary Download the caller's data
// @Tags settings
// @Produce json
// @Success 200 {object} ports.UserDataExport
// @Security BearerAuth
// @Router /settings/export-data [get]
func (h *SettingsHandler) ExportData(c echo.Context) error {
	userID := getUserIDFromContext(c)

	export, err := h.settingsService.ExportUserData(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "Export data failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, export)
}

// DeleteAccount godoc
// @Summary Delete the caller's account
// @Tags settings
// @Produce json
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /settings/account [delete]
func (h *SettingsHandler) DeleteAccount(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.settingsService.DeleteAccount(c.Request().Context(), userID); err != nil {
		return mapDomainError(h.logger, err, "Delete account failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Account deleted successfully"})
}

func (h *SettingsHandler) updateColor(c echo.Context, update func(ctx context.Context, callerID int64, color string) error, message string) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateColorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := update(c.Request().Context(), userID, req.Color); err != nil {
		return mapDomainError(h.logger, err, "Update color failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: message})
}
