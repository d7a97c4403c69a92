package service

import (
	"context"

	"growthlink-backend/internal/domain"
)

type FundraiserService interface {
	Create(ctx context.Context, caller domain.Principal, title, description, purpose string, goalAmount int64, durationDays int32) (*domain.Fundraiser, error)
	Get(ctx context.Context, id string) (*domain.Fundraiser, error)
	List(ctx context.Context, filter domain.FundraiserFilter) ([]domain.Fundraiser, error)
	ListMine(ctx context.Context, caller domain.Principal) ([]domain.Fundraiser, error)
	Update(ctx context.Context, caller domain.Principal, id string, title, description, purpose *string) (*domain.Fundraiser, error)
	Cancel(ctx context.Context, caller domain.Principal, id string) (*domain.Fundraiser, error)
	// Support records a donation. The returned bool reports whether this
	// donation completed the campaign goal.
	Support(ctx context.Context, caller domain.Principal, id string, amount int64, message string) (*domain.Fundraiser, bool, error)
}

type DonationService interface {
	History(ctx context.Context, caller domain.Principal) ([]domain.DonationRecord, error)
}

type CollaborationService interface {
	Send(ctx context.Context, caller domain.Principal, receiverID string, ctype domain.CollaborationType, message string) (*domain.Collaboration, error)
	Get(ctx context.Context, caller domain.Principal, id string) (*domain.Collaboration, error)
	List(ctx context.Context, caller domain.Principal, direction domain.CollaborationDirection, status domain.CollaborationStatus) ([]domain.Collaboration, error)
	Respond(ctx context.Context, caller domain.Principal, id string, status domain.CollaborationStatus, responseMessage string) (*domain.Collaboration, error)
	Complete(ctx context.Context, caller domain.Principal, id string) (*domain.Collaboration, error)
	Cancel(ctx context.Context, caller domain.Principal, id string) error
	Stats(ctx context.Context, caller domain.Principal) (*domain.CollaborationStats, error)
}

type BusinessService interface {
	ListBusinesses(ctx context.Context, filter domain.BusinessFilter) ([]domain.User, error)
}

type NotificationService interface {
	List(ctx context.Context, caller domain.Principal, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, caller domain.Principal, notificationID string) error
}

type EmailService interface {
	SendDonationReceivedNotification(ctx context.Context, ownerEmail, supporterName, fundraiserTitle string, amount int64) error
	SendGoalReachedNotification(ctx context.Context, ownerEmail, fundraiserTitle string, totalRaised int64) error
	SendCollaborationRequestNotification(ctx context.Context, receiverEmail, senderBusiness string, ctype domain.CollaborationType) error
	SendCollaborationResponseNotification(ctx context.Context, senderEmail, receiverBusiness string, status domain.CollaborationStatus) error
}
