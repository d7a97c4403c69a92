package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/logger"
	"growthlink-backend/internal/repository"
)

type collaborationService struct {
	collabRepo repository.CollaborationRepository
	userRepo   repository.UserRepository
	noteRepo   repository.NotificationRepository
	emailSvc   EmailService
	now        func() time.Time
}

func NewCollaborationService(
	collabRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) CollaborationService {
	return &collaborationService{
		collabRepo: collabRepo,
		userRepo:   userRepo,
		noteRepo:   noteRepo,
		emailSvc:   emailSvc,
		now:        time.Now,
	}
}

func (s *collaborationService) Send(ctx context.Context, caller domain.Principal, receiverID string, ctype domain.CollaborationType, message string) (*domain.Collaboration, error) {
	if err := canSendCollaboration(caller); err != nil {
		return nil, err
	}

	c, err := domain.NewCollaboration(uuid.NewString(), caller.ID, receiverID, ctype, message, s.now())
	if err != nil {
		return nil, err
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver.Role != domain.RoleBusiness {
		return nil, fmt.Errorf("receiver is not a business: %w", domain.ErrNotFound)
	}

	pending, err := s.collabRepo.HasPending(ctx, caller.ID, receiverID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("you already have a pending request with this business: %w", domain.ErrConflict)
	}

	// The partial unique index on (sender, receiver, pending) makes the
	// insert authoritative if two sends race past the check above.
	if err := s.collabRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.notify(ctx, receiver.ID, "New Collaboration Request",
		fmt.Sprintf("You received a %s request", c.Type),
		map[string]string{"type": "COLLABORATION_REQUEST", "collaboration_id": c.ID})

	sender, err := s.userRepo.GetByID(ctx, caller.ID)
	if err == nil {
		c.SenderName = sender.BusinessName
		c.ReceiverName = receiver.BusinessName
		if err := s.emailSvc.SendCollaborationRequestNotification(ctx, receiver.Email, sender.BusinessName, c.Type); err != nil {
			logger.Warn("Failed to send collaboration request email", "collaboration_id", c.ID, "error", err)
		}
	}

	return c, nil
}

func (s *collaborationService) Get(ctx context.Context, caller domain.Principal, id string) (*domain.Collaboration, error) {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canViewCollaboration(caller, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *collaborationService) List(ctx context.Context, caller domain.Principal, direction domain.CollaborationDirection, status domain.CollaborationStatus) ([]domain.Collaboration, error) {
	if err := canSendCollaboration(caller); err != nil {
		return nil, err
	}
	if direction == "" {
		direction = domain.CollaborationDirectionBoth
	}
	return s.collabRepo.List(ctx, caller.ID, direction, status)
}

func (s *collaborationService) Respond(ctx context.Context, caller domain.Principal, id string, status domain.CollaborationStatus, responseMessage string) (*domain.Collaboration, error) {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canRespondCollaboration(caller, c); err != nil {
		return nil, err
	}
	if err := c.Respond(status, responseMessage, s.now()); err != nil {
		return nil, err
	}
	if err := s.collabRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.notify(ctx, c.SenderID, "Collaboration "+titleCase(status),
		fmt.Sprintf("Your %s request was %s", c.Type, strings.ToLower(string(status))),
		map[string]string{"type": "COLLABORATION_" + string(status), "collaboration_id": c.ID})

	sender, err := s.userRepo.GetByID(ctx, c.SenderID)
	if err == nil {
		if err := s.emailSvc.SendCollaborationResponseNotification(ctx, sender.Email, c.ReceiverName, status); err != nil {
			logger.Warn("Failed to send collaboration response email", "collaboration_id", c.ID, "error", err)
		}
	}

	return c, nil
}

func (s *collaborationService) Complete(ctx context.Context, caller domain.Principal, id string) (*domain.Collaboration, error) {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canCompleteCollaboration(caller, c); err != nil {
		return nil, err
	}
	if err := c.Complete(s.now()); err != nil {
		return nil, err
	}
	if err := s.collabRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	// Tell the other party.
	other := c.SenderID
	if caller.ID == c.SenderID {
		other = c.ReceiverID
	}
	s.notify(ctx, other, "Collaboration Completed",
		fmt.Sprintf("Your %s collaboration was marked as completed", c.Type),
		map[string]string{"type": "COLLABORATION_COMPLETED", "collaboration_id": c.ID})

	return c, nil
}

// Cancel hard-deletes a pending request. Unlike rejection there is no record
// left behind, so a follow-up request to the same business is allowed.
func (s *collaborationService) Cancel(ctx context.Context, caller domain.Principal, id string) error {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := canCancelCollaboration(caller, c); err != nil {
		return err
	}
	if err := c.CanCancel(); err != nil {
		return err
	}
	return s.collabRepo.Delete(ctx, id)
}

func (s *collaborationService) Stats(ctx context.Context, caller domain.Principal) (*domain.CollaborationStats, error) {
	if err := canSendCollaboration(caller); err != nil {
		return nil, err
	}
	sent, err := s.collabRepo.CountByStatus(ctx, caller.ID, domain.CollaborationDirectionSent)
	if err != nil {
		return nil, err
	}
	received, err := s.collabRepo.CountByStatus(ctx, caller.ID, domain.CollaborationDirectionReceived)
	if err != nil {
		return nil, err
	}
	return &domain.CollaborationStats{Sent: sent, Received: received}, nil
}

func (s *collaborationService) notify(ctx context.Context, userID, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to create collaboration notification", "user_id", userID, "error", err)
	}
}

func titleCase(s domain.CollaborationStatus) string {
	str := strings.ToLower(string(s))
	if str == "" {
		return str
	}
	return strings.ToUpper(str[:1]) + str[1:]
}
