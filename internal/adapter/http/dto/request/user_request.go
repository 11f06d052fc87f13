package request

import "locotraq/internal/domain/entities"

// UserCreateRequest is the admin payload for creating an account.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (r UserCreateRequest) ToEntity() entities.User {
	return entities.User{
		Name:  r.Name,
		Email: r.Email,
		Role:  entities.UserRole(r.Role),
	}
}

// UserUpdateRequest is the admin payload for updating account details.
type UserUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r UserUpdateRequest) ToEntity() entities.User {
	return entities.User{
		Name:  r.Name,
		Email: r.Email,
		Role:  entities.UserRole(r.Role),
	}
}

// UserStatusRequest is the partial body of an active/role toggle; at least
// one field must be set.
type UserStatusRequest struct {
	Active *bool   `json:"active"`
	Role   *string `json:"role"`
}

// LoginRequest is the credentials login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
