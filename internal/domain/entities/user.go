package entities

import (
	"strings"
	"time"
)

// UserRole controls access to the admin dashboards.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

// User is a storefront account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash and never leaves the server: it is excluded
// from JSON so neither admin list responses nor the client library ever see it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u User) ResourceID() string { return u.ID }

func (u User) AssetID() string { return "" }

// Validate checks required fields in a fixed order and returns the first
// violation.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return missingField("name")
	}
	if strings.TrimSpace(u.Email) == "" {
		return missingField("email")
	}
	if u.Role != UserRoleAdmin && u.Role != UserRoleCustomer {
		return invalidField("role", "must be admin or customer")
	}
	return nil
}
