package postgres

import (
	"context"
	"database/sql"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

// Contributions are written only inside fundraiserRepository.CommitSupport;
// this repository is the read side of the ledger.
type contributionRepository struct {
	db *sql.DB
}

func NewContributionRepository(db *sql.DB) repository.ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) ListByFundraiser(ctx context.Context, fundraiserID string) ([]domain.Contribution, error) {
	query := `SELECT id, fundraiser_id, supporter_id, amount, COALESCE(message, ''), donated_on
	          FROM contributions WHERE fundraiser_id = $1 ORDER BY donated_on`
	rows, err := r.db.QueryContext(ctx, query, fundraiserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.ID, &c.FundraiserID, &c.SupporterID, &c.Amount, &c.Message, &c.DonatedOn); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

// ListBySupporter resolves each entry against the current fundraiser record
// at read time. History entries survive later status changes on the campaign.
func (r *contributionRepository) ListBySupporter(ctx context.Context, supporterID string) ([]domain.DonationRecord, error) {
	query := `SELECT c.id, c.fundraiser_id, c.supporter_id, c.amount, COALESCE(c.message, ''), c.donated_on,
	                 f.title, u.business_name, f.status
	          FROM contributions c
	          JOIN fundraisers f ON f.id = c.fundraiser_id
	          JOIN users u ON u.id = f.owner_id
	          WHERE c.supporter_id = $1 ORDER BY c.donated_on`
	rows, err := r.db.QueryContext(ctx, query, supporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DonationRecord
	for rows.Next() {
		var d domain.DonationRecord
		if err := rows.Scan(&d.ID, &d.FundraiserID, &d.SupporterID, &d.Amount, &d.Message, &d.DonatedOn,
			&d.FundraiserTitle, &d.BusinessName, &d.FundraiserStatus); err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	return records, rows.Err()
}
