package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/logger"
	"growthlink-backend/internal/repository"
)

type fundraiserService struct {
	fundraiserRepo   repository.FundraiserRepository
	contributionRepo repository.ContributionRepository
	userRepo         repository.UserRepository
	noteRepo         repository.NotificationRepository
	emailSvc         EmailService

	minDonation    int64
	supportRetries int
	now            func() time.Time
}

func NewFundraiserService(
	fundraiserRepo repository.FundraiserRepository,
	contributionRepo repository.ContributionRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	minDonation int64,
	supportRetries int,
) FundraiserService {
	return &fundraiserService{
		fundraiserRepo:   fundraiserRepo,
		contributionRepo: contributionRepo,
		userRepo:         userRepo,
		noteRepo:         noteRepo,
		emailSvc:         emailSvc,
		minDonation:      minDonation,
		supportRetries:   supportRetries,
		now:              time.Now,
	}
}

func (s *fundraiserService) Create(ctx context.Context, caller domain.Principal, title, description, purpose string, goalAmount int64, durationDays int32) (*domain.Fundraiser, error) {
	if err := canCreateFundraiser(caller); err != nil {
		return nil, err
	}

	active, err := s.fundraiserRepo.HasActiveByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("you already have an active fundraiser, complete or cancel it first: %w", domain.ErrConflict)
	}

	f, err := domain.NewFundraiser(uuid.NewString(), caller.ID, title, description, purpose, goalAmount, durationDays, s.now())
	if err != nil {
		return nil, err
	}

	// The repo's partial unique index closes the check-then-insert race.
	if err := s.fundraiserRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fundraiserService) Get(ctx context.Context, id string) (*domain.Fundraiser, error) {
	f, err := s.fundraiserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contributions, err := s.contributionRepo.ListByFundraiser(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Supporters = contributions
	return f, nil
}

func (s *fundraiserService) List(ctx context.Context, filter domain.FundraiserFilter) ([]domain.Fundraiser, error) {
	if filter.Status == "" {
		filter.Status = domain.FundraiserStatusActive
	}
	return s.fundraiserRepo.List(ctx, filter)
}

func (s *fundraiserService) ListMine(ctx context.Context, caller domain.Principal) ([]domain.Fundraiser, error) {
	if err := canCreateFundraiser(caller); err != nil {
		return nil, err
	}
	return s.fundraiserRepo.ListByOwner(ctx, caller.ID)
}

func (s *fundraiserService) Update(ctx context.Context, caller domain.Principal, id string, title, description, purpose *string) (*domain.Fundraiser, error) {
	f, err := s.fundraiserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManageFundraiser(caller, f); err != nil {
		return nil, err
	}
	if err := f.ApplyUpdate(title, description, purpose, s.now()); err != nil {
		return nil, err
	}
	if err := s.fundraiserRepo.Update(ctx, f); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("fundraiser changed concurrently, retry: %w", domain.ErrTransient)
		}
		return nil, err
	}
	return f, nil
}

func (s *fundraiserService) Cancel(ctx context.Context, caller domain.Principal, id string) (*domain.Fundraiser, error) {
	f, err := s.fundraiserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canManageFundraiser(caller, f); err != nil {
		return nil, err
	}
	if err := f.Cancel(s.now()); err != nil {
		return nil, err
	}
	if err := s.fundraiserRepo.Update(ctx, f); err != nil {
		if errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("fundraiser changed concurrently, retry: %w", domain.ErrTransient)
		}
		return nil, err
	}
	return f, nil
}

// Support runs the donation transition under optimistic concurrency: load
// the record, apply the transition to the snapshot, commit conditionally on
// the loaded version, retry on a lost race. The contribution append and the
// raised-amount increment land in one transaction, so the ledger can never
// disagree with the fundraiser total.
func (s *fundraiserService) Support(ctx context.Context, caller domain.Principal, id string, amount int64, message string) (*domain.Fundraiser, bool, error) {
	if err := canSupportFundraiser(caller); err != nil {
		return nil, false, err
	}
	if amount < s.minDonation {
		return nil, false, fmt.Errorf("minimum donation amount is %d: %w", s.minDonation, domain.ErrValidation)
	}

	for attempt := 0; attempt < s.supportRetries; attempt++ {
		f, err := s.fundraiserRepo.GetByID(ctx, id)
		if err != nil {
			return nil, false, err
		}

		now := s.now()
		c := &domain.Contribution{
			ID:           uuid.NewString(),
			FundraiserID: f.ID,
			SupporterID:  caller.ID,
			Amount:       amount,
			Message:      message,
			DonatedOn:    now,
		}

		goalReached, err := f.ApplySupport(c, now)
		if errors.Is(err, domain.ErrExpired) {
			// The expiry flip is a real transition: persist it, record
			// nothing for this call.
			if uerr := s.fundraiserRepo.Update(ctx, f); uerr != nil {
				if errors.Is(uerr, domain.ErrVersionConflict) {
					continue // someone else moved it first, re-evaluate
				}
				return nil, false, uerr
			}
			return nil, false, err
		}
		if err != nil {
			return nil, false, err
		}

		if err := s.fundraiserRepo.CommitSupport(ctx, f, c); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				continue
			}
			return nil, false, err
		}

		s.notifyOwner(ctx, f, caller.ID, amount, goalReached)
		return f, goalReached, nil
	}

	return nil, false, fmt.Errorf("donation could not be recorded after %d attempts: %w", s.supportRetries, domain.ErrTransient)
}

// notifyOwner is best-effort: the donation is already committed, a failed
// notification must not fail the request.
func (s *fundraiserService) notifyOwner(ctx context.Context, f *domain.Fundraiser, supporterID string, amount int64, goalReached bool) {
	owner, err := s.userRepo.GetByID(ctx, f.OwnerID)
	if err != nil {
		logger.Warn("Failed to load owner for donation notification", "fundraiser_id", f.ID, "error", err)
		return
	}
	supporter, err := s.userRepo.GetByID(ctx, supporterID)
	if err != nil {
		logger.Warn("Failed to load supporter for donation notification", "fundraiser_id", f.ID, "error", err)
		return
	}

	note := &domain.Notification{
		ID:      uuid.NewString(),
		UserID:  owner.ID,
		Title:   "New Donation",
		Message: fmt.Sprintf("%s donated %d to %s", supporter.Name, amount, f.Title),
		Attributes: map[string]string{
			"type":          "DONATION_RECEIVED",
			"fundraiser_id": f.ID,
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create donation notification", "fundraiser_id", f.ID, "error", err)
	}
	if err := s.emailSvc.SendDonationReceivedNotification(ctx, owner.Email, supporter.Name, f.Title, amount); err != nil {
		logger.Warn("Failed to send donation email", "fundraiser_id", f.ID, "error", err)
	}

	if goalReached {
		goalNote := &domain.Notification{
			ID:      uuid.NewString(),
			UserID:  owner.ID,
			Title:   "Goal Reached",
			Message: fmt.Sprintf("%s reached its goal of %d", f.Title, f.GoalAmount),
			Attributes: map[string]string{
				"type":          "GOAL_REACHED",
				"fundraiser_id": f.ID,
			},
		}
		if err := s.noteRepo.Create(ctx, goalNote); err != nil {
			logger.Warn("Failed to create goal notification", "fundraiser_id", f.ID, "error", err)
		}
		if err := s.emailSvc.SendGoalReachedNotification(ctx, owner.Email, f.Title, f.CurrentAmount); err != nil {
			logger.Warn("Failed to send goal email", "fundraiser_id", f.ID, "error", err)
		}
	}
}
