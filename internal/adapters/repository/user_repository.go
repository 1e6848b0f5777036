package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/organizer/core/internal/domain/entities"
	"github.com/organizer/core/internal/infrastructure/database"
	"github.com/organizer/core/internal/ports"
)

// UserRepositoryImpl implements the UserRepository interface
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create inserts the user together with their default settings row. Both
// inserts run in one transaction so a crash cannot leave a user without
// settings.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (username, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`

		err := tx.QueryRowContext(ctx, userQuery,
			user.Username, user.Email, user.PasswordHash, user.Role,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}

		settingsQuery := `INSERT INTO user_settings (user_id) VALUES ($1)`
		if _, err := tx.ExecContext(ctx, settingsQuery, user.ID); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at, last_login
		FROM users
		WHERE id = $1`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created_at, last_login
		FROM users
		WHERE email = $1`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email, username)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context) ([]*entities.User, error) {
	query := `
		SELECT id, username, email, role, created_at, last_login
		FROM users
		ORDER BY created_at DESC`

	users := []*entities.User{}
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id int64, username, email string) error {
	query := `UPDATE users SET username = $2, email = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, username, email)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrDuplicateUser
		}
		return fmt.Errorf("update user profile: %w", err)
	}

	return checkAffected(result, entities.ErrUserNotFound)
}

func (r *UserRepositoryImpl) UpdateRoleProfile(ctx context.Context, id int64, username, email string, role entities.UserRole) error {
	query := `UPDATE users SET username = $2, email = $3, role = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, username, email, role)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.ErrDuplicateUser
		}
		return fmt.Errorf("update user: %w", err)
	}

	return checkAffected(result, entities.ErrUserNotFound)
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	return checkAffected(result, entities.ErrUserNotFound)
}

func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	return nil
}

// Delete removes the user row; tasks, appointments, shares, messages and
// settings go with it through ON DELETE CASCADE.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return checkAffected(result, entities.ErrUserNotFound)
}

// likeEscaper neutralizes LIKE/ILIKE metacharacters so user input stays a
// literal prefix.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *UserRepositoryImpl) Search(ctx context.Context, excludeID int64, query string, limit int) ([]*entities.User, error) {
	sqlQuery := `
		SELECT id, username, email, role, created_at, last_login
		FROM users
		WHERE id <> $1 AND (username ILIKE $2 OR email ILIKE $2)
		ORDER BY username
		LIMIT $3`

	users := []*entities.User{}
	err := r.db.SelectContext(ctx, &users, sqlQuery, excludeID, likeEscaper.Replace(query)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return users, nil
}

func (r *UserRepositoryImpl) GetStats(ctx context.Context) (*ports.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users WHERE last_login >= NOW() - INTERVAL '24 hours') AS active_users,
			(SELECT COUNT(*) FROM tasks) AS total_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks`

	var stats ports.AdminStats
	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		return nil, fmt.Errorf("get admin stats: %w", err)
	}

	return &stats, nil
}

// checkAffected maps a zero-row result onto the given sentinel.
func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
