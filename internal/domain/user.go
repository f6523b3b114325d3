package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin        = 1
	RoleCompanyOwner = 2
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name" validate:"required,min=2"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"password,omitempty" validate:"required"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CompanyID    *string   `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	UserRole  int
	CompanyID *string
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}

// CanManageCompany indica se o usuário pode alterar os dados da empresa
func (c *Claims) CanManageCompany(companyID string) bool {
	if c.IsAdmin() {
		return true
	}
	return c.CompanyID != nil && *c.CompanyID == companyID
}

type UpdateUserRequest struct {
	ID        int     `json:"-"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	CompanyID *string `json:"company_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
