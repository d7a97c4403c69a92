package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"growthlink-backend/internal/domain"
	"growthlink-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed sender. With an empty API key all
// sends become no-ops, so local setups run without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, body string) error {
	if s.apiKey == "" {
		logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendDonationReceivedNotification(ctx context.Context, ownerEmail, supporterName, fundraiserTitle string, amount int64) error {
	subject := "You received a donation"
	body := fmt.Sprintf("%s donated %d to your fundraiser %q.\n\nBest regards,\nThe GrowthLink Team", supporterName, amount, fundraiserTitle)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendGoalReachedNotification(ctx context.Context, ownerEmail, fundraiserTitle string, totalRaised int64) error {
	subject := fmt.Sprintf("%s reached its goal!", fundraiserTitle)
	body := fmt.Sprintf("Congratulations! Your fundraiser %q reached its goal with a total of %d raised.\n\nBest regards,\nThe GrowthLink Team", fundraiserTitle, totalRaised)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendCollaborationRequestNotification(ctx context.Context, receiverEmail, senderBusiness string, ctype domain.CollaborationType) error {
	subject := "New collaboration request"
	body := fmt.Sprintf("%s sent you a %s collaboration request. Log in to respond.\n\nBest regards,\nThe GrowthLink Team", senderBusiness, ctype)
	return s.send(receiverEmail, subject, body)
}

func (s *emailService) SendCollaborationResponseNotification(ctx context.Context, senderEmail, receiverBusiness string, status domain.CollaborationStatus) error {
	subject := "Your collaboration request was " + strings.ToLower(string(status))
	body := fmt.Sprintf("%s %s your collaboration request.\n\nBest regards,\nThe GrowthLink Team", receiverBusiness, strings.ToLower(string(status)))
	return s.send(senderEmail, subject, body)
}
