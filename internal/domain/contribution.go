package domain

import "time"

// Contribution is a single supporter donation against one fundraiser. It is
// created only by a successful support transition and never mutated after.
// One canonical store holds all contributions; the fundraiser's supporter
// sequence and the supporter's donation history are two views of it.
type Contribution struct {
	ID           string    `json:"id"`
	FundraiserID string    `json:"fundraiser_id"`
	SupporterID  string    `json:"supporter_id"`
	Amount       int64     `json:"amount"`
	Message      string    `json:"message,omitempty"`
	DonatedOn    time.Time `json:"donated_on"`
}

// DonationRecord is a supporter-side history entry: a contribution joined at
// read time with a snapshot of the fundraiser it funded. The join is not
// stored, so entries stay valid when the fundraiser's status changes later.
type DonationRecord struct {
	Contribution
	FundraiserTitle  string           `json:"fundraiser_title"`
	BusinessName     string           `json:"business_name"`
	FundraiserStatus FundraiserStatus `json:"fundraiser_status"`
}
