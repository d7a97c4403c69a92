package domain

import (
	"fmt"
	"time"
)

type FundraiserStatus string

const (
	FundraiserStatusActive    FundraiserStatus = "ACTIVE"
	FundraiserStatusCompleted FundraiserStatus = "COMPLETED"
	FundraiserStatusCancelled FundraiserStatus = "CANCELLED"
)

// Hard invariants of the fundraiser record. The minimum donation amount is
// deliberately not here: the record layer only guarantees a positive amount,
// the configurable policy floor lives at the service boundary.
const (
	MaxTitleLength  = 100
	MinGoalAmount   = 1000
	MinDurationDays = 7
	MaxDurationDays = 90
)

type Fundraiser struct {
	ID            string           `json:"id"`
	OwnerID       string           `json:"owner_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Purpose       string           `json:"purpose"`
	GoalAmount    int64            `json:"goal_amount"`
	CurrentAmount int64            `json:"current_amount"`
	DurationDays  int32            `json:"duration_days"`
	EndDate       time.Time        `json:"end_date"`
	Status        FundraiserStatus `json:"status"`
	Version       int32            `json:"-"`
	CreatedOn     time.Time        `json:"created_on"`
	UpdatedOn     time.Time        `json:"updated_on"`

	// Supporters is the contribution sequence in chronological order,
	// populated on single-record reads.
	Supporters []Contribution `json:"supporters,omitempty"`

	// Owner business fields, populated on list/search reads.
	BusinessName string `json:"business_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// FundraiserFilter narrows list/search reads. All set fields AND together.
type FundraiserFilter struct {
	Status       FundraiserStatus
	Search       string
	BusinessType string
	City         string
	State        string
}

// NewFundraiser validates the creation input and returns a fundraiser in the
// active state with its end date fixed once. The end date is never recomputed,
// duration is immutable after creation.
func NewFundraiser(id, ownerID, title, description, purpose string, goalAmount int64, durationDays int32, now time.Time) (*Fundraiser, error) {
	if title == "" || description == "" || purpose == "" {
		return nil, fmt.Errorf("title, description and purpose are required: %w", ErrValidation)
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title cannot exceed %d characters: %w", MaxTitleLength, ErrValidation)
	}
	if goalAmount < MinGoalAmount {
		return nil, fmt.Errorf("goal amount must be at least %d: %w", MinGoalAmount, ErrValidation)
	}
	if durationDays < MinDurationDays || durationDays > MaxDurationDays {
		return nil, fmt.Errorf("duration must be between %d and %d days: %w", MinDurationDays, MaxDurationDays, ErrValidation)
	}
	return &Fundraiser{
		ID:           id,
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		Purpose:      purpose,
		GoalAmount:   goalAmount,
		DurationDays: durationDays,
		EndDate:      now.AddDate(0, 0, int(durationDays)),
		Status:       FundraiserStatusActive,
		CreatedOn:    now,
		UpdatedOn:    now,
	}, nil
}

// ApplyUpdate mutates the three owner-editable text fields. Nil pointers leave
// the field unchanged. Goal, duration and end date are immutable.
func (f *Fundraiser) ApplyUpdate(title, description, purpose *string, now time.Time) error {
	if f.Status != FundraiserStatusActive {
		return fmt.Errorf("cannot update a %s fundraiser: %w", f.Status, ErrInvalidState)
	}
	if title != nil {
		if *title == "" {
			return fmt.Errorf("title cannot be empty: %w", ErrValidation)
		}
		if len(*title) > MaxTitleLength {
			return fmt.Errorf("title cannot exceed %d characters: %w", MaxTitleLength, ErrValidation)
		}
		f.Title = *title
	}
	if description != nil {
		f.Description = *description
	}
	if purpose != nil {
		f.Purpose = *purpose
	}
	f.UpdatedOn = now
	return nil
}

// Cancel transitions active to cancelled. Cancelling twice fails: the second
// call observes a non-active state.
func (f *Fundraiser) Cancel(now time.Time) error {
	if f.Status != FundraiserStatusActive {
		return fmt.Errorf("fundraiser is %s: %w", f.Status, ErrInvalidState)
	}
	f.Status = FundraiserStatusCancelled
	f.UpdatedOn = now
	return nil
}

// ApplySupport runs the donation transition against an in-memory snapshot:
// status check, expiry check, amount check, append, increment, goal check.
// On ErrExpired the status has been flipped to completed and the caller must
// persist the flip without recording a contribution. The returned bool
// reports whether this contribution reached the goal.
//
// Expiry is exclusive: a donation at exactly the end date is accepted, only
// now > endDate expires the campaign.
func (f *Fundraiser) ApplySupport(c *Contribution, now time.Time) (bool, error) {
	if f.Status != FundraiserStatusActive {
		return false, fmt.Errorf("fundraiser is not accepting donations: %w", ErrInvalidState)
	}
	if now.After(f.EndDate) {
		f.Status = FundraiserStatusCompleted
		f.UpdatedOn = now
		return false, fmt.Errorf("fundraiser ended on %s: %w", f.EndDate.Format(time.RFC3339), ErrExpired)
	}
	if c.Amount <= 0 {
		return false, fmt.Errorf("donation amount must be positive: %w", ErrValidation)
	}
	f.Supporters = append(f.Supporters, *c)
	f.CurrentAmount += c.Amount
	f.UpdatedOn = now
	if f.CurrentAmount >= f.GoalAmount {
		f.Status = FundraiserStatusCompleted
		return true, nil
	}
	return false, nil
}

// ExpireIfPast flips an active fundraiser whose end date has passed to
// completed. Returns true if a transition happened.
func (f *Fundraiser) ExpireIfPast(now time.Time) bool {
	if f.Status != FundraiserStatusActive || !now.After(f.EndDate) {
		return false
	}
	f.Status = FundraiserStatusCompleted
	f.UpdatedOn = now
	return true
}
