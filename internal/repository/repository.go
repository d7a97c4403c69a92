package repository

import (
	"context"

	"growthlink-backend/internal/domain"
)

// UserRepository reads user records. User provisioning happens outside this
// system, records arrive pre-created.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]domain.User, error)
}

type FundraiserRepository interface {
	// Create inserts a new fundraiser. A second active fundraiser for the
	// same owner fails with domain.ErrConflict.
	Create(ctx context.Context, f *domain.Fundraiser) error
	GetByID(ctx context.Context, id string) (*domain.Fundraiser, error)
	HasActiveByOwner(ctx context.Context, ownerID string) (bool, error)

	// Update persists the mutable fields conditionally on the loaded
	// version. A concurrent writer having bumped the version fails with
	// domain.ErrVersionConflict.
	Update(ctx context.Context, f *domain.Fundraiser) error

	// CommitSupport persists a support transition in one transaction: the
	// conditional fundraiser update plus the contribution append. Either
	// both land or neither does; a lost version race fails with
	// domain.ErrVersionConflict and nothing is written.
	CommitSupport(ctx context.Context, f *domain.Fundraiser, c *domain.Contribution) error

	List(ctx context.Context, filter domain.FundraiserFilter) ([]domain.Fundraiser, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Fundraiser, error)
	ListExpiredActive(ctx context.Context) ([]domain.Fundraiser, error)
}

type ContributionRepository interface {
	ListByFundraiser(ctx context.Context, fundraiserID string) ([]domain.Contribution, error)
	ListBySupporter(ctx context.Context, supporterID string) ([]domain.DonationRecord, error)
}

type CollaborationRepository interface {
	// Create inserts a pending request. A concurrent pending request for the
	// same (sender, receiver) pair fails with domain.ErrConflict.
	Create(ctx context.Context, c *domain.Collaboration) error
	GetByID(ctx context.Context, id string) (*domain.Collaboration, error)
	HasPending(ctx context.Context, senderID, receiverID string) (bool, error)
	Update(ctx context.Context, c *domain.Collaboration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, userID string, direction domain.CollaborationDirection, status domain.CollaborationStatus) ([]domain.Collaboration, error)
	CountByStatus(ctx context.Context, userID string, direction domain.CollaborationDirection) (domain.CollaborationStatusCounts, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
