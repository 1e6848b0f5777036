package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// AppointmentHandler handles appointment-related requests, including the
// sharing and response routes mounted under /appointments.
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
	shareService       *services.ShareService
	logger             *logger.Logger
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *services.AppointmentService, shareService *services.ShareService, logger *logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		shareService:       shareService,
		logger:             logger,
	}
}

// ListAppointments godoc
// @Summary List the caller's appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} entities.Appointment
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointments, err := h.appointmentService.ListAppointments(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List appointments failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, appointments)
}

// ListAppointmentsByDate godoc
// @Summary List the caller's appointments on a calendar day
// @Tags appointments
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} entities.Appointment
// @Failure 400 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/date/{date} [get]
func (h *AppointmentHandler) ListAppointmentsByDate(c echo.Context) error {
	userID := getUserIDFromContext(c)

	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}

	appointments, err := h.appointmentService.ListAppointmentsByDate(c.Request().Context(), userID, day)
	if err != nil {
		return mapDomainError(h.logger, err, "List appointments by date failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, appointments)
}

// GetAppointment godoc
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} entities.Appointment
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment ID")
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request().Context(), userID, appointmentID)
	if err != nil {
		return mapDomainError(h.logger, err, "Get appointment failed", "appointment_id", appointmentID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, appointment)
}

// CreateAppointment godoc
// @Summary Create an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body ports.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} ports.CreatedResponse
// @Failure 400 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointmentID, err := h.appointmentService.CreateAppointment(c.Request().Context(), userID, req)
	if err != nil {
		return mapDomainError(h.logger, err, "Create appointment failed", "user_id", userID)
	}

	return c.JSON(http.StatusCreated, ports.CreatedResponse{Message: "Appointment created successfully", ID: appointmentID})
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body ports.UpdateAppointmentRequest true "Appointment data"
// @Success 200 {object} ports.MessageResponse
// @Failure 403 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment ID")
	}

	var req ports.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.appointmentService.UpdateAppointment(c.Request().Context(), userID, appointmentID, req); err != nil {
		return mapDomainError(h.logger, err, "Update appointment failed", "appointment_id", appointmentID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Appointment updated successfully"})
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 403 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment ID")
	}

	if err := h.appointmentService.DeleteAppointment(c.Request().Context(), userID, appointmentID); err != nil {
		return mapDomainError(h.logger, err, "Delete appointment failed", "appointment_id", appointmentID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Appointment deleted successfully"})
}

// ShareAppointment godoc
// @Summary Share an appointment with another user
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body ports.ShareRequest true "Recipient"
// @Success 200 {object} ports.CreatedResponse
// @Failure 400 {object} ports.ErrorResponse
// @Failure 403 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Failure 409 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/{id}/share [post]
func (h *AppointmentHandler) ShareAppointment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment ID")
	}

	var req ports.ShareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shareID, err := h.shareService.CreateShare(c.Request().Context(), entities.AppointmentRef(appointmentID), userID, req.SharedWith)
	if err != nil {
		return mapDomainError(h.logger, err, "Share appointment failed", "appointment_id", appointmentID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.CreatedResponse{Message: "Appointment shared successfully", ID: shareID})
}

// ListSharedWithMe godoc
// @Summary List appointments shared with the caller
// @Tags appointments
// @Produce json
// @Success 200 {array} entities.SharedAppointment
// @Security BearerAuth
// @Router /appointments/shared/with-me [get]
func (h *AppointmentHandler) ListSharedWithMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointments, err := h.shareService.ListAppointmentsSharedWithMe(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List shared appointments failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, appointments)
}

// ListSharedByMe godoc
// @Summary List appointments the caller has shared
// @Tags appointments
// @Produce json
// @Success 200 {array} entities.SharedAppointment
// @Security BearerAuth
// @Router /appointments/shared/by-me [get]
func (h *AppointmentHandler) ListSharedByMe(c echo.Context) error {
	userID := getUserIDFromContext(c)

	appointments, err := h.shareService.ListAppointmentsSharedByMe(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List shared appointments failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, appointments)
}

// ConfirmShare godoc
// @Summary Confirm a shared appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/shared/{id}/confirm [patch]
func (h *AppointmentHandler) ConfirmShare(c echo.Context) error {
	return h.respondToShare(c, entities.ShareDecisionConfirm, "Appointment confirmed")
}

// DeclineShare godoc
// @Summary Decline a shared appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} ports.MessageResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /appointments/shared/{id}/decline [patch]
func (h *AppointmentHandler) DeclineShare(c echo.Context) error {
	return h.respondToShare(c, entities.ShareDecisionDecline, "Appointment declined")
}

func (h *AppointmentHandler) respondToShare(c echo.Context, decision entities.ShareDecision, message string) error {
	userID := getUserIDFromContext(c)

	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment ID")
	}

	if err := h.shareService.RespondToShare(c.Request().Context(), appointmentID, userID, decision); err != nil {
		return mapDomainError(h.logger, err, "Share response failed", "appointment_id", appointmentID, "user_id", userID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: message})
}
