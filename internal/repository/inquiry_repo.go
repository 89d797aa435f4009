package repository

import (
	"context"

	"github.com/TimKirathe/wonderland-api/internal/models"
	"github.com/TimKirathe/wonderland-api/internal/store"
)

const InquiryCollection = "enrollment_inquiries"

type InquiryRepo struct {
	store *store.Client
}

func NewInquiryRepo(s *store.Client) *InquiryRepo {
	return &InquiryRepo{store: s}
}

func (r *InquiryRepo) Create(ctx context.Context, inq *models.EnrollmentInquiry) error {
	return r.store.Insert(ctx, InquiryCollection, inq)
}

func (r *InquiryRepo) FindRecent(ctx context.Context, limit int) ([]models.EnrollmentInquiry, error) {
	var inqs []models.EnrollmentInquiry
	if err := r.store.SelectRecent(ctx, InquiryCollection, "created_at", limit, &inqs); err != nil {
		return nil, err
	}
	return inqs, nil
}
