package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/logger"
	"github.com/organizer/core/internal/ports"
)

const userSearchLimit = 20

// MessageService handles direct messages between users
type MessageService struct {
	messageRepo ports.MessageRepository
	userRepo    ports.UserRepository
	logger      *logger.Logger
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo ports.MessageRepository, userRepo ports.UserRepository, logger *logger.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListConversations returns one entry per partner the caller has exchanged
// messages with, newest conversation first.
func (s *MessageService) ListConversations(ctx context.Context, callerID int64) ([]*entities.Conversation, error) {
	conversations, err := s.messageRepo.ListConversations(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return conversations, nil
}

// GetConversation returns the full message history between the caller and the
// partner in chronological order.
func (s *MessageService) GetConversation(ctx context.Context, callerID, partnerID int64) ([]*entities.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, callerID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	return messages, nil
}

// MarkConversationRead marks every unread message from the partner as read.
// Marking an empty or already-read conversation is a no-op, not an error.
func (s *MessageService) MarkConversationRead(ctx context.Context, callerID, partnerID int64) error {
	updated, err := s.messageRepo.MarkConversationRead(ctx, callerID, partnerID)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	if updated > 0 {
		s.logger.Debug("Conversation marked read",
			"user_id", callerID, "partner_id", partnerID, "messages", updated)
	}

	return nil
}

// SendMessage stores a message from the caller to the receiver and returns
// its id. Sending to oneself or to a nonexistent user is rejected.
func (s *MessageService) SendMessage(ctx context.Context, callerID int64, req ports.SendMessageRequest) (int64, error) {
	if req.ReceiverID == callerID {
		return 0, entities.ErrSelfMessage
	}

	message := &entities.Message{
		SenderID:   callerID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return 0, err
	}

	s.logger.Info("Message sent",
		"message_id", message.ID, "sender_id", callerID, "receiver_id", req.ReceiverID)

	return message.ID, nil
}

// SearchUsers finds potential message partners by username or email prefix,
// excluding the caller. A blank query returns nothing.
func (s *MessageService) SearchUsers(ctx context.Context, callerID int64, query string) ([]*ports.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*ports.UserSummary{}, nil
	}

	users, err := s.userRepo.Search(ctx, callerID, query, userSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	summaries := make([]*ports.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, &ports.UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			LastLogin: user.LastLogin,
		})
	}

	return summaries, nil
}
