package service

import (
	"context"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

// donationService is the read side of the donation ledger. Writes happen only
// through FundraiserService.Support.
type donationService struct {
	contributionRepo repository.ContributionRepository
}

func NewDonationService(contributionRepo repository.ContributionRepository) DonationService {
	return &donationService{contributionRepo: contributionRepo}
}

func (s *donationService) History(ctx context.Context, caller domain.Principal) ([]domain.DonationRecord, error) {
	if err := canViewDonationHistory(caller); err != nil {
		return nil, err
	}
	return s.contributionRepo.ListBySupporter(ctx, caller.ID)
}
