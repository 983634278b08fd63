package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cinelog/cinelog/internal/platform/db"
)

var _ Repository = (*SQLRepository)(nil)

var (
	ErrNotFound    = errors.New("user repository: user not found")
	ErrQueryFailed = errors.New("user repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

func NewRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

func (r *SQLRepository) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, r.db)
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

const queryUserCreate = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserCreate, params.Name, params.Email, params.PasswordHash)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserFindByEmail = `
SELECT id, name, email, password_hash, verified_at, created_at, updated_at FROM users
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFindByEmail, email)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return &u, nil
}

const queryUserFind = `
SELECT id, name, email, password_hash, verified_at, created_at, updated_at FROM users
WHERE id = $1
LIMIT 1
`

func (r *SQLRepository) Find(ctx context.Context, userID string) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFind, userID)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return &u, nil
}

const queryUserList = "SELECT id, name, email, verified_at, created_at, updated_at FROM users"

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, queryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}
