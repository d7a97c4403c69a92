package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growthlink-backend/internal/domain"
)

func newCollabMockDB(t *testing.T) (sqlmock.Sqlmock, *collaborationRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, &collaborationRepository{db: db}
}

func sampleCollaboration() *domain.Collaboration {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Collaboration{
		ID:         "collab-1",
		SenderID:   "biz-1",
		ReceiverID: "biz-2",
		Type:       domain.CollaborationTypeCrossPromotion,
		Message:    "Let's cross promote",
		Status:     domain.CollaborationStatusPending,
		CreatedOn:  created,
		UpdatedOn:  created,
	}
}

func collaborationRows(c *domain.Collaboration) *sqlmock.Rows {
	cols := []string{"id", "sender_id", "receiver_id", "collaboration_type", "message", "status", "response_message", "response_date", "created_on", "updated_on", "sender_name", "receiver_name"}
	var responseDate driver.Value
	if c.ResponseDate != nil {
		responseDate = *c.ResponseDate
	}
	return sqlmock.NewRows(cols).
		AddRow(c.ID, c.SenderID, c.ReceiverID, string(c.Type), c.Message, string(c.Status), c.ResponseMessage, responseDate, c.CreatedOn, c.UpdatedOn, "Crumbs Co", "Beans Co")
}

func TestCollaborationRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		c := sampleCollaboration()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collaborations")).
			WithArgs(c.ID, c.SenderID, c.ReceiverID, string(c.Type), c.Message, string(c.Status), c.CreatedOn, c.UpdatedOn).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Pending Maps To Conflict", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO collaborations")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "collaborations_one_pending_per_pair"})

		err := repo.Create(ctx, sampleCollaboration())
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestCollaborationRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found With Business Names", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		c := sampleCollaboration()
		mock.ExpectQuery("SELECT .+ FROM collaborations c").
			WithArgs("collab-1").
			WillReturnRows(collaborationRows(c))

		got, err := repo.GetByID(ctx, "collab-1")
		require.NoError(t, err)
		assert.Equal(t, "Crumbs Co", got.SenderName)
		assert.Equal(t, "Beans Co", got.ReceiverName)
		assert.Nil(t, got.ResponseDate)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		mock.ExpectQuery("SELECT .+ FROM collaborations c").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCollaborationRepository_HasPending(t *testing.T) {
	ctx := context.Background()
	mock, repo := newCollabMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM collaborations")).
		WithArgs("biz-1", "biz-2", string(domain.CollaborationStatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasPending(ctx, "biz-1", "biz-2")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCollaborationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	mock, repo := newCollabMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collaborations WHERE id = $1")).
		WithArgs("collab-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, "collab-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollaborationRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Sent With Status Filter", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		c := sampleCollaboration()
		mock.ExpectQuery("SELECT .+ WHERE c.sender_id = .+ AND c.status = .+ ORDER BY c.created_on DESC").
			WithArgs("biz-1", string(domain.CollaborationStatusPending)).
			WillReturnRows(collaborationRows(c))

		got, err := repo.List(ctx, "biz-1", domain.CollaborationDirectionSent, domain.CollaborationStatusPending)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "collab-1", got[0].ID)
	})

	t.Run("Both Directions", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("(c.sender_id = $1 OR c.receiver_id = $1)")).
			WithArgs("biz-1").
			WillReturnRows(collaborationRows(sampleCollaboration()))

		got, err := repo.List(ctx, "biz-1", domain.CollaborationDirectionBoth, "")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestCollaborationRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Sent Counts By Sender Column", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		rows := sqlmock.NewRows([]string{"status", "count"}).
			AddRow(string(domain.CollaborationStatusPending), 2).
			AddRow(string(domain.CollaborationStatusAccepted), 1).
			AddRow(string(domain.CollaborationStatusRejected), 3)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE sender_id = $1 GROUP BY status")).
			WithArgs("biz-1").
			WillReturnRows(rows)

		counts, err := repo.CountByStatus(ctx, "biz-1", domain.CollaborationDirectionSent)
		require.NoError(t, err)
		assert.Equal(t, int32(6), counts.Total)
		assert.Equal(t, int32(2), counts.Pending)
		assert.Equal(t, int32(1), counts.Accepted)
		assert.Equal(t, int32(3), counts.Rejected)
		assert.Equal(t, int32(0), counts.Completed)
	})

	t.Run("Received Counts By Receiver Column", func(t *testing.T) {
		mock, repo := newCollabMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE receiver_id = $1 GROUP BY status")).
			WithArgs("biz-2").
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

		counts, err := repo.CountByStatus(ctx, "biz-2", domain.CollaborationDirectionReceived)
		require.NoError(t, err)
		assert.Equal(t, int32(0), counts.Total)
	})
}
