package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cinelog/cinelog/internal/platform/db"
	"github.com/cinelog/cinelog/internal/user"
)

type SQLRepository struct {
	db db.Executor
}

func NewRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

var _ Repository = (*SQLRepository)(nil)

func (r *SQLRepository) exec(ctx context.Context) db.Executor {
	return db.ExecutorFrom(ctx, r.db)
}

type IssueTokenParams struct {
	UserID    string
	Purpose   Purpose
	TokenHash string
	ExpiresAt time.Time
}

// queryTokenIssue inserts a token, or replaces a stale one in the same
// statement. A live token blocks the insert (no row returned), which is the
// cooldown; the unique index makes the check race-free under concurrent
// requests.
const queryTokenIssue = `
INSERT INTO one_time_tokens (user_id, purpose, token_hash, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, purpose) DO UPDATE
SET token_hash = EXCLUDED.token_hash, expires_at = EXCLUDED.expires_at, created_at = NOW()
WHERE one_time_tokens.expires_at <= NOW()
RETURNING id, created_at
`

func (r *SQLRepository) IssueToken(ctx context.Context, params IssueTokenParams) (Token, error) {
	t := Token{
		UserID:    params.UserID,
		Purpose:   params.Purpose,
		TokenHash: params.TokenHash,
		ExpiresAt: params.ExpiresAt,
	}

	row := r.exec(ctx).QueryRowContext(ctx, queryTokenIssue, params.UserID, params.Purpose, params.TokenHash, params.ExpiresAt)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, ErrTooSoon
		}
		return t, fmt.Errorf("issue %s token for user %s: %w", params.Purpose, params.UserID, err)
	}
	return t, nil
}

const queryTokenFindLive = `
SELECT id, user_id, purpose, token_hash, expires_at, created_at FROM one_time_tokens
WHERE user_id = $1 AND purpose = $2 AND expires_at > NOW()
LIMIT 1
`

func (r *SQLRepository) FindLiveToken(ctx context.Context, userID string, purpose Purpose) (Token, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryTokenFindLive, userID, purpose)
	var t Token
	if err := row.Scan(&t.ID, &t.UserID, &t.Purpose, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, ErrTokenNotFound
		}
		return t, fmt.Errorf("find live %s token for user %s: %w", purpose, userID, err)
	}
	return t, nil
}

const queryTokenDelete = "DELETE FROM one_time_tokens WHERE id = $1"

func (r *SQLRepository) DeleteToken(ctx context.Context, tokenID string) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryTokenDelete, tokenID)
	if err != nil {
		return fmt.Errorf("delete token %s: %w", tokenID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return ErrTokenNotFound
	}

	return nil
}

const queryUserVerify = "UPDATE users SET verified_at = NOW(), updated_at = NOW() WHERE id = $1 AND verified_at IS NULL"

func (r *SQLRepository) VerifyUser(ctx context.Context, userID string) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryUserVerify, userID)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return fmt.Errorf("user not found or already verified: %w", user.ErrNotFound)
	}

	return nil
}

const queryUserChangePassword = "UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2"

func (r *SQLRepository) ChangeUserPassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.exec(ctx).ExecContext(ctx, queryUserChangePassword, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return user.ErrNotFound
	}

	return nil
}
