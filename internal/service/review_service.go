package service

import (
	"context"

	"github.com/TimKirathe/wonderland-api/internal/models"
	"github.com/TimKirathe/wonderland-api/internal/repository"
)

// reviewLimit caps how many testimonials the site carousel shows.
const reviewLimit = 9

type ReviewService struct {
	reviews *repository.ReviewRepo
}

func NewReviewService(reviews *repository.ReviewRepo) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviews.FindRecent(ctx, reviewLimit)
}
