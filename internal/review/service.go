package review

import (
	"context"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, params CreateReviewParams) (Review, error)
	Update(ctx context.Context, params UpdateReviewParams) (Review, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, params CreateReviewParams) (Review, error)
	UpdateReview(ctx context.Context, params UpdateReviewParams) (Review, error)
}

type Service struct {
	repo Repository
}

var _ ReviewService = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddReview(ctx context.Context, params CreateReviewParams) (Review, error) {
	rev, err := s.repo.Create(ctx, params)
	if err != nil {
		return rev, fmt.Errorf("add review for movie %s: %w", params.MovieID, err)
	}
	return rev, nil
}

func (s *Service) UpdateReview(ctx context.Context, params UpdateReviewParams) (Review, error) {
	rev, err := s.repo.Update(ctx, params)
	if err != nil {
		return rev, fmt.Errorf("update review %s: %w", params.ID, err)
	}
	return rev, nil
}
