package repository

import (
	"context"

	"github.com/TimKirathe/wonderland-api/internal/models"
	"github.com/TimKirathe/wonderland-api/internal/store"
)

const ReviewCollection = "reviews"

type ReviewRepo struct {
	store *store.Client
}

func NewReviewRepo(s *store.Client) *ReviewRepo {
	return &ReviewRepo{store: s}
}

func (r *ReviewRepo) FindRecent(ctx context.Context, limit int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.store.SelectRecent(ctx, ReviewCollection, "date", limit, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Probe checks that the store answers at all. Used by the health endpoint.
func (r *ReviewRepo) Probe(ctx context.Context) error {
	return r.store.ProbeOne(ctx, ReviewCollection)
}
