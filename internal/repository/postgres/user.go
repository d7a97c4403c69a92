package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, role, COALESCE(business_name, ''), COALESCE(business_type, ''), COALESCE(city, ''), COALESCE(state, ''), created_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.BusinessName, &u.BusinessType, &u.City, &u.State, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1`
	args := []interface{}{domain.RoleBusiness}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (business_name ILIKE $%d OR name ILIKE $%d)", len(args), len(args))
	}
	if filter.BusinessType != "" {
		args = append(args, filter.BusinessType)
		query += fmt.Sprintf(" AND business_type = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		query += fmt.Sprintf(" AND city ILIKE $%d", len(args))
	}
	if filter.State != "" {
		args = append(args, "%"+filter.State+"%")
		query += fmt.Sprintf(" AND state ILIKE $%d", len(args))
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
