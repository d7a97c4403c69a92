package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"growthlink-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockFundraiserRepo
type MockFundraiserRepo struct {
	mock.Mock
}

func (m *MockFundraiserRepo) Create(ctx context.Context, f *domain.Fundraiser) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFundraiserRepo) GetByID(ctx context.Context, id string) (*domain.Fundraiser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fundraiser), args.Error(1)
}
func (m *MockFundraiserRepo) HasActiveByOwner(ctx context.Context, ownerID string) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFundraiserRepo) Update(ctx context.Context, f *domain.Fundraiser) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFundraiserRepo) CommitSupport(ctx context.Context, f *domain.Fundraiser, c *domain.Contribution) error {
	args := m.Called(ctx, f, c)
	return args.Error(0)
}
func (m *MockFundraiserRepo) List(ctx context.Context, filter domain.FundraiserFilter) ([]domain.Fundraiser, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fundraiser), args.Error(1)
}
func (m *MockFundraiserRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Fundraiser, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fundraiser), args.Error(1)
}
func (m *MockFundraiserRepo) ListExpiredActive(ctx context.Context) ([]domain.Fundraiser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fundraiser), args.Error(1)
}

// MockContributionRepo
type MockContributionRepo struct {
	mock.Mock
}

func (m *MockContributionRepo) ListByFundraiser(ctx context.Context, fundraiserID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, fundraiserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}
func (m *MockContributionRepo) ListBySupporter(ctx context.Context, supporterID string) ([]domain.DonationRecord, error) {
	args := m.Called(ctx, supporterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DonationRecord), args.Error(1)
}

// MockCollaborationRepo
type MockCollaborationRepo struct {
	mock.Mock
}

func (m *MockCollaborationRepo) Create(ctx context.Context, c *domain.Collaboration) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCollaborationRepo) GetByID(ctx context.Context, id string) (*domain.Collaboration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaboration), args.Error(1)
}
func (m *MockCollaborationRepo) HasPending(ctx context.Context, senderID, receiverID string) (bool, error) {
	args := m.Called(ctx, senderID, receiverID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCollaborationRepo) Update(ctx context.Context, c *domain.Collaboration) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCollaborationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCollaborationRepo) List(ctx context.Context, userID string, direction domain.CollaborationDirection, status domain.CollaborationStatus) ([]domain.Collaboration, error) {
	args := m.Called(ctx, userID, direction, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collaboration), args.Error(1)
}
func (m *MockCollaborationRepo) CountByStatus(ctx context.Context, userID string, direction domain.CollaborationDirection) (domain.CollaborationStatusCounts, error) {
	args := m.Called(ctx, userID, direction)
	return args.Get(0).(domain.CollaborationStatusCounts), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDonationReceivedNotification(ctx context.Context, ownerEmail, supporterName, fundraiserTitle string, amount int64) error {
	args := m.Called(ctx, ownerEmail, supporterName, fundraiserTitle, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendGoalReachedNotification(ctx context.Context, ownerEmail, fundraiserTitle string, totalRaised int64) error {
	args := m.Called(ctx, ownerEmail, fundraiserTitle, totalRaised)
	return args.Error(0)
}
func (m *MockEmailService) SendCollaborationRequestNotification(ctx context.Context, receiverEmail, senderBusiness string, ctype domain.CollaborationType) error {
	args := m.Called(ctx, receiverEmail, senderBusiness, ctype)
	return args.Error(0)
}
func (m *MockEmailService) SendCollaborationResponseNotification(ctx context.Context, senderEmail, receiverBusiness string, status domain.CollaborationStatus) error {
	args := m.Called(ctx, senderEmail, receiverBusiness, status)
	return args.Error(0)
}
