package repository

import (
	"context"

	"github.com/TimKirathe/wonderland-api/internal/models"
	"github.com/TimKirathe/wonderland-api/internal/store"
)

const ContactCollection = "contact_requests"

type ContactRepo struct {
	store *store.Client
}

func NewContactRepo(s *store.Client) *ContactRepo {
	return &ContactRepo{store: s}
}

func (r *ContactRepo) Create(ctx context.Context, req *models.ContactRequest) error {
	return r.store.Insert(ctx, ContactCollection, req)
}

func (r *ContactRepo) FindRecent(ctx context.Context, limit int) ([]models.ContactRequest, error) {
	var reqs []models.ContactRequest
	if err := r.store.SelectRecent(ctx, ContactCollection, "created_at", limit, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
