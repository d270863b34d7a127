package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AnthoniusHendriyanto/session-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, COALESCE(password_hash, ''), password_changed_at, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1
		LIMIT 1;
	`, userColumns)
	row := r.db.QueryRow(ctx, query, strings.ToLower(email))

	return scanUser(row)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1
		LIMIT 1;
	`, userColumns)
	row := r.db.QueryRow(ctx, query, id)

	return scanUser(row)
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, password_changed_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash,
		user.PasswordChangedAt, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: create user: %v", autherror.ErrStoreUnavailable, err)
	}

	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.PasswordChangedAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return &user, nil
}
