package domain

import (
	"fmt"
	"time"
)

type CollaborationStatus string

const (
	CollaborationStatusPending   CollaborationStatus = "PENDING"
	CollaborationStatusAccepted  CollaborationStatus = "ACCEPTED"
	CollaborationStatusRejected  CollaborationStatus = "REJECTED"
	CollaborationStatusCompleted CollaborationStatus = "COMPLETED"
)

type CollaborationType string

const (
	CollaborationTypeJointMarketing   CollaborationType = "Joint Marketing"
	CollaborationTypeCrossPromotion   CollaborationType = "Cross Promotion"
	CollaborationTypeResourceSharing  CollaborationType = "Resource Sharing"
	CollaborationTypeEventPartnership CollaborationType = "Event Partnership"
	CollaborationTypeProductBundling  CollaborationType = "Product Bundling"
	CollaborationTypeOther            CollaborationType = "Other"
)

var collaborationTypes = map[CollaborationType]bool{
	CollaborationTypeJointMarketing:   true,
	CollaborationTypeCrossPromotion:   true,
	CollaborationTypeResourceSharing:  true,
	CollaborationTypeEventPartnership: true,
	CollaborationTypeProductBundling:  true,
	CollaborationTypeOther:            true,
}

const MaxCollaborationMessageLength = 500

type CollaborationDirection string

const (
	CollaborationDirectionSent     CollaborationDirection = "sent"
	CollaborationDirectionReceived CollaborationDirection = "received"
	CollaborationDirectionBoth     CollaborationDirection = "both"
)

// Collaboration is a proposal from one business to another. The receiver
// drives the pending transition, either party completes an accepted one, and
// only the sender may cancel while pending (cancel deletes the record).
type Collaboration struct {
	ID              string              `json:"id"`
	SenderID        string              `json:"sender_id"`
	ReceiverID      string              `json:"receiver_id"`
	Type            CollaborationType   `json:"collaboration_type"`
	Message         string              `json:"message"`
	Status          CollaborationStatus `json:"status"`
	ResponseMessage string              `json:"response_message,omitempty"`
	ResponseDate    *time.Time          `json:"response_date,omitempty"`
	CreatedOn       time.Time           `json:"created_on"`
	UpdatedOn       time.Time           `json:"updated_on"`

	// Participant business names, populated on reads.
	SenderName   string `json:"sender_name,omitempty"`
	ReceiverName string `json:"receiver_name,omitempty"`
}

// CollaborationStats aggregates a business's requests per direction.
type CollaborationStats struct {
	Sent     CollaborationStatusCounts `json:"sent"`
	Received CollaborationStatusCounts `json:"received"`
}

type CollaborationStatusCounts struct {
	Total     int32 `json:"total"`
	Pending   int32 `json:"pending"`
	Accepted  int32 `json:"accepted"`
	Rejected  int32 `json:"rejected"`
	Completed int32 `json:"completed"`
}

// NewCollaboration validates the request input and returns a pending record.
// Receiver existence is the caller's concern; sender/receiver distinctness is
// validated here.
func NewCollaboration(id, senderID, receiverID string, ctype CollaborationType, message string, now time.Time) (*Collaboration, error) {
	if senderID == receiverID {
		return nil, fmt.Errorf("cannot send a collaboration request to yourself: %w", ErrValidation)
	}
	if !collaborationTypes[ctype] {
		return nil, fmt.Errorf("unknown collaboration type %q: %w", ctype, ErrValidation)
	}
	if message == "" {
		return nil, fmt.Errorf("message is required: %w", ErrValidation)
	}
	if len(message) > MaxCollaborationMessageLength {
		return nil, fmt.Errorf("message cannot exceed %d characters: %w", MaxCollaborationMessageLength, ErrValidation)
	}
	return &Collaboration{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Type:       ctype,
		Message:    message,
		Status:     CollaborationStatusPending,
		CreatedOn:  now,
		UpdatedOn:  now,
	}, nil
}

// Respond transitions pending to accepted or rejected and records the
// receiver's response. Any other target status is rejected.
func (c *Collaboration) Respond(status CollaborationStatus, responseMessage string, now time.Time) error {
	if status != CollaborationStatusAccepted && status != CollaborationStatusRejected {
		return fmt.Errorf("response status must be accepted or rejected: %w", ErrValidation)
	}
	if c.Status != CollaborationStatusPending {
		return fmt.Errorf("request has already been responded to: %w", ErrInvalidState)
	}
	c.Status = status
	c.ResponseMessage = responseMessage
	c.ResponseDate = &now
	c.UpdatedOn = now
	return nil
}

// Complete transitions accepted to completed.
func (c *Collaboration) Complete(now time.Time) error {
	if c.Status != CollaborationStatusAccepted {
		return fmt.Errorf("only accepted collaborations can be completed: %w", ErrInvalidState)
	}
	c.Status = CollaborationStatusCompleted
	c.UpdatedOn = now
	return nil
}

// CanCancel reports whether the record may still be cancelled. Cancellation
// is a hard delete, unlike rejection which preserves the record.
func (c *Collaboration) CanCancel() error {
	if c.Status != CollaborationStatusPending {
		return fmt.Errorf("can only cancel pending requests: %w", ErrInvalidState)
	}
	return nil
}

// IsParticipant reports whether the given user is the sender or receiver.
func (c *Collaboration) IsParticipant(userID string) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}
