package entity

// Role is the account type of a user. It is fixed at registration.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}
