package entity

import "github.com/google/uuid"

// Identity is the authenticated caller of a request, taken from the access token.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	Role    Role
	TokenID string
}

func (i Identity) IsCustomer() bool {
	return i.Role == RoleCustomer
}

func (i Identity) IsProvider() bool {
	return i.Role == RoleProvider
}
