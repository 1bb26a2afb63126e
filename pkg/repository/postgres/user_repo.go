package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/rolepanel/pkg/user"
)

const uniqueViolation = "23505"

// UserRepository implements user.Repository backed by PostgreSQL (pgx).
// The schema is owned by the goose migrations in pkg/storage/postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// inTx runs fn in a transaction that is committed only if fn succeeds.
func (r *UserRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, name, username, password, level)
			VALUES ($1, $2, $3, $4, ($5::text)::user_level)
		`, u.ID, u.Name, u.Username, u.Password, string(u.Level))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s", user.ErrUserAlreadyExists, pgErr.Detail)
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, username, password, level::text
		FROM users ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, username, password, level::text
		FROM users WHERE username = $1
	`, username)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, username string, ch user.Changes) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET name = $1, password = $2, level = ($3::text)::user_level
			WHERE username = $4
		`, ch.Name, ch.Password, string(ch.Level), username)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u     user.User
		level string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Password, &level); err != nil {
		return user.User{}, err
	}
	u.Level = user.Level(level)
	return u, nil
}
