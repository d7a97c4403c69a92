package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/repository"
)

type collaborationRepository struct {
	db *sql.DB
}

func NewCollaborationRepository(db *sql.DB) repository.CollaborationRepository {
	return &collaborationRepository{db: db}
}

const collaborationColumns = `c.id, c.sender_id, c.receiver_id, c.collaboration_type, c.message, c.status, COALESCE(c.response_message, ''), c.response_date, c.created_on, c.updated_on, s.business_name, r.business_name`

func scanCollaboration(row interface{ Scan(...any) error }) (*domain.Collaboration, error) {
	c := &domain.Collaboration{}
	err := row.Scan(&c.ID, &c.SenderID, &c.ReceiverID, &c.Type, &c.Message, &c.Status, &c.ResponseMessage, &c.ResponseDate, &c.CreatedOn, &c.UpdatedOn, &c.SenderName, &c.ReceiverName)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collaborationRepository) Create(ctx context.Context, c *domain.Collaboration) error {
	query := `INSERT INTO collaborations (id, sender_id, receiver_id, collaboration_type, message, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.SenderID, c.ReceiverID, c.Type, c.Message, c.Status, c.CreatedOn, c.UpdatedOn)
	if isUniqueViolation(err) {
		return fmt.Errorf("a pending request to this business already exists: %w", domain.ErrConflict)
	}
	return err
}

func (r *collaborationRepository) GetByID(ctx context.Context, id string) (*domain.Collaboration, error) {
	query := `SELECT ` + collaborationColumns + `
	          FROM collaborations c
	          JOIN users s ON s.id = c.sender_id
	          JOIN users r ON r.id = c.receiver_id
	          WHERE c.id = $1`
	c, err := scanCollaboration(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collaboration %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collaborationRepository) HasPending(ctx context.Context, senderID, receiverID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM collaborations WHERE sender_id = $1 AND receiver_id = $2 AND status = $3)`
	err := r.db.QueryRowContext(ctx, query, senderID, receiverID, domain.CollaborationStatusPending).Scan(&exists)
	return exists, err
}

func (r *collaborationRepository) Update(ctx context.Context, c *domain.Collaboration) error {
	query := `UPDATE collaborations SET status=$1, response_message=$2, response_date=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, c.Status, c.ResponseMessage, c.ResponseDate, c.UpdatedOn, c.ID)
	return err
}

func (r *collaborationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collaborations WHERE id = $1`, id)
	return err
}

func (r *collaborationRepository) List(ctx context.Context, userID string, direction domain.CollaborationDirection, status domain.CollaborationStatus) ([]domain.Collaboration, error) {
	query := `SELECT ` + collaborationColumns + `
	          FROM collaborations c
	          JOIN users s ON s.id = c.sender_id
	          JOIN users r ON r.id = c.receiver_id`
	args := []interface{}{userID}

	switch direction {
	case domain.CollaborationDirectionSent:
		query += " WHERE c.sender_id = $1"
	case domain.CollaborationDirectionReceived:
		query += " WHERE c.receiver_id = $1"
	default:
		query += " WHERE (c.sender_id = $1 OR c.receiver_id = $1)"
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND c.status = $%d", len(args))
	}
	query += " ORDER BY c.created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []domain.Collaboration
	for rows.Next() {
		c, err := scanCollaboration(rows)
		if err != nil {
			return nil, err
		}
		cs = append(cs, *c)
	}
	return cs, rows.Err()
}

func (r *collaborationRepository) CountByStatus(ctx context.Context, userID string, direction domain.CollaborationDirection) (domain.CollaborationStatusCounts, error) {
	var counts domain.CollaborationStatusCounts

	column := "sender_id"
	if direction == domain.CollaborationDirectionReceived {
		column = "receiver_id"
	}
	query := fmt.Sprintf(`SELECT status, count(*) FROM collaborations WHERE %s = $1 GROUP BY status`, column)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.CollaborationStatus
		var n int32
		if err := rows.Scan(&status, &n); err != nil {
			return counts, err
		}
		counts.Total += n
		switch status {
		case domain.CollaborationStatusPending:
			counts.Pending = n
		case domain.CollaborationStatusAccepted:
			counts.Accepted = n
		case domain.CollaborationStatusRejected:
			counts.Rejected = n
		case domain.CollaborationStatusCompleted:
			counts.Completed = n
		}
	}
	return counts, rows.Err()
}
