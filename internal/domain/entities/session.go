package entities

import "time"

// Session is an authenticated admin session kept in Redis, keyed by its
// bearer token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
