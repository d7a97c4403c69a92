package service

import (
	"context"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

type businessService struct {
	userRepo repository.UserRepository
}

func NewBusinessService(userRepo repository.UserRepository) BusinessService {
	return &businessService{userRepo: userRepo}
}

func (s *businessService) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]domain.User, error) {
	return s.userRepo.ListBusinesses(ctx, filter)
}
