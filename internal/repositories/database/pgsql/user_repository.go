package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signordemola/belize-app/internal/apperrors"
	"github.com/signordemola/belize-app/internal/core/domain"
	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
	"github.com/signordemola/belize-app/internal/models"
	"github.com/signordemola/belize-app/internal/utils/mapping"
)

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{pool: pool}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, first_name, last_name, email, role, password_hash, transaction_pin, is_transfer_blocked, created_at, created_by, last_updated_at, last_updated_by`

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	var pin sql.NullString
	if modelUser.TransactionPin != "" {
		pin = sql.NullString{String: modelUser.TransactionPin, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Email,
		modelUser.Role,
		modelUser.PasswordHash,
		pin,
		modelUser.IsTransferBlocked,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, modelUser.Username)
		}
		return fmt.Errorf("failed to save user %s: %w", modelUser.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var modelUser models.User
	var pin sql.NullString

	err := row.Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.FirstName,
		&modelUser.LastName,
		&modelUser.Email,
		&modelUser.Role,
		&modelUser.PasswordHash,
		&pin,
		&modelUser.IsTransferBlocked,
		&modelUser.CreatedAt,
		&modelUser.CreatedBy,
		&modelUser.LastUpdatedAt,
		&modelUser.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	if pin.Valid {
		modelUser.TransactionPin = pin.String
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, userID))
}

// FindUserByUsername retrieves a user by their login username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, username))
}

// UpdateTransactionPin replaces the stored PIN hash.
func (r *PgxUserRepository) UpdateTransactionPin(ctx context.Context, userID string, pinHash string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET transaction_pin = $2, last_updated_at = $3, last_updated_by = $1
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, userID, pinHash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update transaction PIN for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransferBlock toggles the administrative transfer block.
func (r *PgxUserRepository) UpdateTransferBlock(ctx context.Context, userID string, blocked bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET is_transfer_blocked = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, userID, blocked, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update transfer block for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
