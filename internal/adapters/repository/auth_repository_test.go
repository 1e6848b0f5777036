package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepositoryCleanupExpiredTokens(t *testing.T) {
	t.Run("reports deleted rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthRepository(db)

		mock.ExpectExec(`DELETE FROM refresh_tokens WHERE expires_at < CURRENT_TIMESTAMP`).
			WillReturnResult(sqlmock.NewResult(0, 5))

		deleted, err := repo.CleanupExpiredTokens(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(5), deleted)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing expired", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuthRepository(db)

		mock.ExpectExec(`DELETE FROM refresh_tokens`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.CleanupExpiredTokens(context.Background())
		require.NoError(t, err)
		assert.Zero(t, deleted)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthRepositoryRevokeAllUserTokens(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	mock.ExpectExec(`UPDATE refresh_tokens`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.RevokeAllUserTokens(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
