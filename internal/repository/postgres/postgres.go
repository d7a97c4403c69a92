package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"growthlink-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.FundraiserRepository
	repository.ContributionRepository
	repository.CollaborationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		FundraiserRepository:    NewFundraiserRepository(db),
		ContributionRepository:  NewContributionRepository(db),
		CollaborationRepository: NewCollaborationRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique_violation. The
// partial unique indexes on fundraisers (one active per owner) and
// collaborations (one pending per ordered pair) close check-then-insert races.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
