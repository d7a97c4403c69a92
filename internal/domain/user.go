package domain

import "time"

type Role string

const (
	RoleBusiness  Role = "BUSINESS"
	RoleSupporter Role = "SUPPORTER"
)

// Principal is the authenticated actor resolved per request by the identity
// layer. The core never authenticates, it only authorizes against this.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedOn time.Time `json:"created_on"`

	// Business profile fields, empty for supporters.
	BusinessName string `json:"business_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// BusinessFilter narrows business discovery listings. Empty fields apply no
// constraint. Search and the location fields match as case-insensitive
// substrings, BusinessType is an exact match.
type BusinessFilter struct {
	Search       string
	BusinessType string
	City         string
	State        string
}
