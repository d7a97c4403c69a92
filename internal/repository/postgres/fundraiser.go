package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

type fundraiserRepository struct {
	db *sql.DB
}

func NewFundraiserRepository(db *sql.DB) repository.FundraiserRepository {
	return &fundraiserRepository{db: db}
}

const fundraiserColumns = `f.id, f.owner_id, f.title, f.description, f.purpose, f.goal_amount, f.current_amount, f.duration_days, f.end_date, f.status, f.version, f.created_on, f.updated_on`

func scanFundraiser(row interface{ Scan(...any) error }, withOwner bool) (*domain.Fundraiser, error) {
	f := &domain.Fundraiser{}
	dest := []any{&f.ID, &f.OwnerID, &f.Title, &f.Description, &f.Purpose, &f.GoalAmount, &f.CurrentAmount, &f.DurationDays, &f.EndDate, &f.Status, &f.Version, &f.CreatedOn, &f.UpdatedOn}
	if withOwner {
		dest = append(dest, &f.BusinessName, &f.BusinessType, &f.City, &f.State)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fundraiserRepository) Create(ctx context.Context, f *domain.Fundraiser) error {
	query := `INSERT INTO fundraisers (id, owner_id, title, description, purpose, goal_amount, current_amount, duration_days, end_date, status, version, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query, f.ID, f.OwnerID, f.Title, f.Description, f.Purpose, f.GoalAmount, f.CurrentAmount, f.DurationDays, f.EndDate, f.Status, f.Version, f.CreatedOn, f.UpdatedOn)
	if isUniqueViolation(err) {
		return fmt.Errorf("owner %s already has an active fundraiser: %w", f.OwnerID, domain.ErrConflict)
	}
	return err
}

func (r *fundraiserRepository) GetByID(ctx context.Context, id string) (*domain.Fundraiser, error) {
	query := `SELECT ` + fundraiserColumns + `, u.business_name, u.business_type, COALESCE(u.city, ''), COALESCE(u.state, '')
	          FROM fundraisers f JOIN users u ON u.id = f.owner_id WHERE f.id = $1`
	f, err := scanFundraiser(r.db.QueryRowContext(ctx, query, id), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fundraiser %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fundraiserRepository) HasActiveByOwner(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM fundraisers WHERE owner_id = $1 AND status = $2)`
	err := r.db.QueryRowContext(ctx, query, ownerID, domain.FundraiserStatusActive).Scan(&exists)
	return exists, err
}

func (r *fundraiserRepository) Update(ctx context.Context, f *domain.Fundraiser) error {
	query := `UPDATE fundraisers SET title=$1, description=$2, purpose=$3, current_amount=$4, status=$5, updated_on=$6, version=version+1
	          WHERE id=$7 AND version=$8`
	res, err := r.db.ExecContext(ctx, query, f.Title, f.Description, f.Purpose, f.CurrentAmount, f.Status, f.UpdatedOn, f.ID, f.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("fundraiser %s was modified concurrently: %w", f.ID, domain.ErrVersionConflict)
	}
	f.Version++
	return nil
}

// CommitSupport lands the contribution append and the fundraiser update in
// one transaction, keyed on the version the caller loaded. This is the only
// write path for contributions, so the raised total and the contribution sum
// cannot diverge.
func (r *fundraiserRepository) CommitSupport(ctx context.Context, f *domain.Fundraiser, c *domain.Contribution) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	update := `UPDATE fundraisers SET current_amount=$1, status=$2, updated_on=$3, version=version+1
	           WHERE id=$4 AND version=$5`
	res, err := tx.ExecContext(ctx, update, f.CurrentAmount, f.Status, f.UpdatedOn, f.ID, f.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("fundraiser %s was modified concurrently: %w", f.ID, domain.ErrVersionConflict)
	}

	insert := `INSERT INTO contributions (id, fundraiser_id, supporter_id, amount, message, donated_on)
	           VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insert, c.ID, c.FundraiserID, c.SupporterID, c.Amount, c.Message, c.DonatedOn); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	f.Version++
	return nil
}

func (r *fundraiserRepository) List(ctx context.Context, filter domain.FundraiserFilter) ([]domain.Fundraiser, error) {
	query := `SELECT ` + fundraiserColumns + `, u.business_name, u.business_type, COALESCE(u.city, ''), COALESCE(u.state, '')
	          FROM fundraisers f JOIN users u ON u.id = f.owner_id WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND f.status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (f.title ILIKE $%d OR u.business_name ILIKE $%d)", len(args), len(args))
	}
	if filter.BusinessType != "" {
		args = append(args, filter.BusinessType)
		query += fmt.Sprintf(" AND u.business_type = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += fmt.Sprintf(" AND u.city ILIKE $%d", len(args))
	}
	if filter.State != "" {
		args = append(args, "%"+filter.State+"%")
		query += fmt.Sprintf(" AND u.state ILIKE $%d", len(args))
	}
	query += " ORDER BY f.created_on DESC"

	return r.queryMany(ctx, query, true, args...)
}

func (r *fundraiserRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Fundraiser, error) {
	query := `SELECT ` + fundraiserColumns + ` FROM fundraisers f WHERE f.owner_id = $1 ORDER BY f.created_on DESC`
	return r.queryMany(ctx, query, false, ownerID)
}

func (r *fundraiserRepository) ListExpiredActive(ctx context.Context) ([]domain.Fundraiser, error) {
	query := `SELECT ` + fundraiserColumns + ` FROM fundraisers f WHERE f.status = $1 AND f.end_date < NOW() ORDER BY f.end_date`
	return r.queryMany(ctx, query, false, domain.FundraiserStatusActive)
}

func (r *fundraiserRepository) queryMany(ctx context.Context, query string, withOwner bool, args ...interface{}) ([]domain.Fundraiser, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs []domain.Fundraiser
	for rows.Next() {
		f, err := scanFundraiser(rows, withOwner)
		if err != nil {
			return nil, err
		}
		fs = append(fs, *f)
	}
	return fs, rows.Err()
}
