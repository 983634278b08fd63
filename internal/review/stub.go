package review

import (
	"context"
	"errors"
)

type StubService struct {
	AddReviewFunc    func(ctx context.Context, params CreateReviewParams) (Review, error)
	UpdateReviewFunc func(ctx context.Context, params UpdateReviewParams) (Review, error)
}

var _ ReviewService = (*StubService)(nil)

func (s *StubService) AddReview(ctx context.Context, params CreateReviewParams) (Review, error) {
	if s.AddReviewFunc == nil {
		return Review{}, errors.New("AddReview not implemented by stub")
	}
	return s.AddReviewFunc(ctx, params)
}

func (s *StubService) UpdateReview(ctx context.Context, params UpdateReviewParams) (Review, error) {
	if s.UpdateReviewFunc == nil {
		return Review{}, errors.New("UpdateReview not implemented by stub")
	}
	return s.UpdateReviewFunc(ctx, params)
}

type StubRepo struct {
	CreateFunc func(ctx context.Context, params CreateReviewParams) (Review, error)
	UpdateFunc func(ctx context.Context, params UpdateReviewParams) (Review, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateReviewParams) (Review, error) {
	if r.CreateFunc == nil {
		return Review{}, errors.New("Create not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Update(ctx context.Context, params UpdateReviewParams) (Review, error) {
	if r.UpdateFunc == nil {
		return Review{}, errors.New("Update not implemented by stub")
	}
	return r.UpdateFunc(ctx, params)
}
