package review

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cinelog/cinelog/internal/auth"
	"github.com/cinelog/cinelog/internal/pkg/message"
	"github.com/cinelog/cinelog/internal/pkg/web"
)

const (
	MsgInvalidMovie  = "Invalid movie"
	MsgInvalidReview = "Invalid review"
	MsgNotFound      = "Review not found"
	MsgDuplicate     = "You have already reviewed this movie"
)

type Handler struct {
	svc ReviewService
}

func NewHandler(svc ReviewService) *Handler {
	return &Handler{svc: svc}
}

// UpsertReviewRequest carries the rating payload for both add and update.
// The ratings validation the routes are gated by runs against these tags.
type UpsertReviewRequest struct {
	Rating  *float64 `json:"rating,omitempty" validate:"required,gte=0,lte=10"`
	Content string   `json:"content,omitempty" validate:"required,max=2000"`
}

func (r UpsertReviewRequest) LogValue() slog.Value {
	rating := 0.0
	if r.Rating != nil {
		rating = *r.Rating
	}
	return slog.GroupValue(
		slog.Float64("rating", rating),
		slog.Int("content_length", len(r.Content)),
	)
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	OwnerID   string    `json:"owner_id"`
	Rating    float64   `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newReviewResponse(rev Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        rev.ID,
		MovieID:   rev.MovieID,
		OwnerID:   rev.OwnerID,
		Rating:    rev.Rating,
		Content:   rev.Content,
		CreatedAt: rev.CreatedAt,
		UpdatedAt: rev.UpdatedAt,
	}
}

func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	movieID := r.PathValue("movieId")
	if err := uuid.Validate(movieID); err != nil {
		web.RespondBadRequest(w, err, MsgInvalidMovie, nil)
		return
	}

	req, err := web.ParamsFromContext[UpsertReviewRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rev, err := h.svc.AddReview(r.Context(), CreateReviewParams{
		OwnerID: ownerID,
		MovieID: movieID,
		Rating:  *req.Rating,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			web.RespondBadRequest(w, err, MsgDuplicate, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondCreated(w, nil, newReviewResponse(rev))
}

func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	reviewID := r.PathValue("reviewId")
	if err := uuid.Validate(reviewID); err != nil {
		web.RespondBadRequest(w, err, MsgInvalidReview, nil)
		return
	}

	req, err := web.ParamsFromContext[UpsertReviewRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	rev, err := h.svc.UpdateReview(r.Context(), UpdateReviewParams{
		ID:      reviewID,
		OwnerID: ownerID,
		Rating:  *req.Rating,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, MsgNotFound, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondOK(w, nil, newReviewResponse(rev))
}
