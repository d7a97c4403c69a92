package service

import (
	"fmt"

	"growthlink-backend/internal/domain"
)

// Authorization policies, one per guarded operation. Each takes the resolved
// caller (and the record where ownership matters) and returns nil or
// domain.ErrUnauthorized. Handlers and services never branch on role inline.

func canCreateFundraiser(caller domain.Principal) error {
	if caller.Role != domain.RoleBusiness {
		return fmt.Errorf("only business users can create fundraisers: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canManageFundraiser(caller domain.Principal, f *domain.Fundraiser) error {
	if caller.Role != domain.RoleBusiness || caller.ID != f.OwnerID {
		return fmt.Errorf("only the owner can modify this fundraiser: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canSupportFundraiser(caller domain.Principal) error {
	if caller.Role != domain.RoleSupporter {
		return fmt.Errorf("only supporters can donate to fundraisers: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canViewDonationHistory(caller domain.Principal) error {
	if caller.Role != domain.RoleSupporter {
		return fmt.Errorf("only supporters have a donation history: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canSendCollaboration(caller domain.Principal) error {
	if caller.Role != domain.RoleBusiness {
		return fmt.Errorf("only business users can send collaboration requests: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canViewCollaboration(caller domain.Principal, c *domain.Collaboration) error {
	if !c.IsParticipant(caller.ID) {
		return fmt.Errorf("only participants can view this collaboration: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canRespondCollaboration(caller domain.Principal, c *domain.Collaboration) error {
	if caller.ID != c.ReceiverID {
		return fmt.Errorf("only the receiver can respond to this request: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canCompleteCollaboration(caller domain.Principal, c *domain.Collaboration) error {
	if !c.IsParticipant(caller.ID) {
		return fmt.Errorf("only participants can complete this collaboration: %w", domain.ErrUnauthorized)
	}
	return nil
}

func canCancelCollaboration(caller domain.Principal, c *domain.Collaboration) error {
	if caller.ID != c.SenderID {
		return fmt.Errorf("only the sender can cancel this request: %w", domain.ErrUnauthorized)
	}
	return nil
}
