package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organizer/core/internal/domain/entities"
)

func TestMessageRepositoryCreate(t *testing.T) {
	t.Run("insert returns id and timestamp", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO messages`).
			WithArgs(int64(1), int64(2), "hello").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

		message := &entities.Message{SenderID: 1, ReceiverID: 2, Content: "hello"}
		require.NoError(t, repo.Create(context.Background(), message))
		assert.Equal(t, int64(11), message.ID)
		assert.Equal(t, now, message.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation maps to missing recipient", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectQuery(`INSERT INTO messages`).
			WithArgs(int64(1), int64(99), "hello").
			WillReturnError(&pq.Error{Code: "23503"})

		message := &entities.Message{SenderID: 1, ReceiverID: 99, Content: "hello"}
		err := repo.Create(context.Background(), message)
		assert.ErrorIs(t, err, entities.ErrRecipientNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessageRepositoryListConversations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"partner_id", "partner_username", "last_message", "last_message_at", "unread_count"}).
		AddRow(int64(2), "bob", "see you tomorrow", now, 3).
		AddRow(int64(4), "carol", "thanks", now.Add(-time.Hour), 0)
	mock.ExpectQuery(`WITH threads AS`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	conversations, err := repo.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, int64(2), conversations[0].PartnerID)
	assert.Equal(t, "bob", conversations[0].PartnerUsername)
	assert.Equal(t, "see you tomorrow", conversations[0].LastMessage)
	assert.Equal(t, 3, conversations[0].UnreadCount)
	assert.Equal(t, 0, conversations[1].UnreadCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryListBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "is_read", "created_at"}).
		AddRow(int64(1), int64(1), int64(2), "hi", true, now.Add(-time.Minute)).
		AddRow(int64(2), int64(2), int64(1), "hey", false, now)
	mock.ExpectQuery(`FROM messages`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	messages, err := repo.ListBetween(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0].Content)
	assert.False(t, messages[1].IsRead)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryMarkConversationRead(t *testing.T) {
	t.Run("flags unread inbound messages", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectExec(`UPDATE messages`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 4))

		updated, err := repo.MarkConversationRead(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), updated)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing unread is not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db)

		mock.ExpectExec(`UPDATE messages`).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.MarkConversationRead(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Zero(t, updated)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
