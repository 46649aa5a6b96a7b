// Package models defines the wire-level data model of the quotation API.
// Field tags follow the backend's snake_case JSON contract.
package models

// Account roles as reported by the backend.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is a tenant-level login identity (titular). It is distinct from
// User, which is a sales advisor managed within an account.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// AccountCreate is the payload for self-registration.
type AccountCreate struct {
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

// AccountUpdate is the payload for the admin-only account update.
type AccountUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
}
