package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cinelog/cinelog/internal/platform/db"
)

var (
	ErrNotFound  = errors.New("review repository: review not found")
	ErrDuplicate = errors.New("review repository: movie already reviewed by this user")
)

const pgUniqueViolation = "23505"

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

type CreateReviewParams struct {
	OwnerID string
	MovieID string
	Rating  float64
	Content string
}

const queryReviewCreate = `
INSERT INTO reviews (owner_id, movie_id, rating, content)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateReviewParams) (Review, error) {
	rev := Review{
		OwnerID: params.OwnerID,
		MovieID: params.MovieID,
		Rating:  params.Rating,
		Content: params.Content,
	}

	row := r.exec(ctx).QueryRowContext(ctx, queryReviewCreate, params.OwnerID, params.MovieID, params.Rating, params.Content)
	if err := row.Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return rev, ErrDuplicate
		}
		return rev, fmt.Errorf("create review for movie %s: %w", params.MovieID, err)
	}
	return rev, nil
}

type UpdateReviewParams struct {
	ID      string
	OwnerID string
	Rating  float64
	Content string
}

// The owner check is part of the WHERE clause so a user updating someone
// else's review gets the same not-found as a missing id.
const queryReviewUpdate = `
UPDATE reviews SET rating = $1, content = $2, updated_at = NOW()
WHERE id = $3 AND owner_id = $4
RETURNING id, owner_id, movie_id, rating, content, created_at, updated_at
`

func (r *SQLRepository) Update(ctx context.Context, params UpdateReviewParams) (Review, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryReviewUpdate, params.Rating, params.Content, params.ID, params.OwnerID)
	var rev Review
	if err := row.Scan(&rev.ID, &rev.OwnerID, &rev.MovieID, &rev.Rating, &rev.Content, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rev, ErrNotFound
		}
		return rev, fmt.Errorf("update review %s: %w", params.ID, err)
	}
	return rev, nil
}
