package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/organizer/core/internal/application/services"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

// MessageHandler handles direct-messaging requests
type MessageHandler struct {
	messageService *services.MessageService
	logger         *logger.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// ListConversations godoc
// @Summary List the caller's conversations
// @Tags messages
// @Produce json
// @Success 200 {array} entities.Conversation
// @Security BearerAuth
// @Router /messages/conversations [get]
func (h *MessageHandler) ListConversations(c echo.Context) error {
	userID := getUserIDFromContext(c)

	conversations, err := h.messageService.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(h.logger, err, "List conversations failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, conversations)
}

// GetConversation godoc
// @Summary Get the message history with a partner
// @Tags messages
// @Produce json
// @Param userId path int true "Partner user ID"
// @Success 200 {array} entities.Message
// @Security BearerAuth
// @Router /messages/conversations/{userId} [get]
func (h *MessageHandler) GetConversation(c echo.Context) error {
	userID := getUserIDFromContext(c)

	partnerID, err := parseIDParam(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	messages, err := h.messageService.GetConversation(c.Request().Context(), userID, partnerID)
	if err != nil {
		return mapDomainError(h.logger, err, "Get conversation failed", "user_id", userID, "partner_id", partnerID)
	}

	return c.JSON(http.StatusOK, messages)
}

// MarkConversationRead godoc
// @Summary Mark every message from a partner as read
// @Tags messages
// @Produce json
// @Param userId path int true "Partner user ID"
// @Success 200 {object} ports.MessageResponse
// @Security BearerAuth
// @Router /messages/conversations/{userId}/read [patch]
func (h *MessageHandler) MarkConversationRead(c echo.Context) error {
	userID := getUserIDFromContext(c)

	partnerID, err := parseIDParam(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.messageService.MarkConversationRead(c.Request().Context(), userID, partnerID); err != nil {
		return mapDomainError(h.logger, err, "Mark conversation read failed", "user_id", userID, "partner_id", partnerID)
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Conversation marked as read"})
}

// SendMessage godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body ports.SendMessageRequest true "Message"
// @Success 201 {object} ports.CreatedResponse
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Security BearerAuth
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	messageID, err := h.messageService.SendMessage(c.Request().Context(), userID, req)
	if err != nil {
		return mapDomainError(h.logger, err, "Send message failed", "user_id", userID, "receiver_id", req.ReceiverID)
	}

	return c.JSON(http.StatusCreated, ports.CreatedResponse{Message: "Message sent successfully", ID: messageID})
}

// SearchUsers godoc
// @Summary Search users to message
// @Tags messages
// @Produce json
// @Param q query string true "Search prefix"
// @Success 200 {array} ports.UserSummary
// @Security BearerAuth
// @Router /messages/users/search [get]
func (h *MessageHandler) SearchUsers(c echo.Context) error {
	userID := getUserIDFromContext(c)

	users, err := h.messageService.SearchUsers(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return mapDomainError(h.logger, err, "User search failed", "user_id", userID)
	}

	return c.JSON(http.StatusOK, users)
}
