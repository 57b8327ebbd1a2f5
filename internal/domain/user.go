package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin    = 1
	RoleManager  = 2
	RoleEmployee = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"roleId"`
	CompanyID    *string    `json:"companyId"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"roleId"`
	CompanyID *string `json:"companyId"`
	Deleted   *bool   `json:"deleted"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserCompanyID *string
	jwt.RegisteredClaims
}

// CanManage indica se o usuário pode alterar escalas, funcionários e vendas.
func (c *Claims) CanManage() bool {
	return c != nil && (c.UserRoleID == RoleAdmin || c.UserRoleID == RoleManager)
}

// CanAccessCompany restringe gerentes e funcionários à própria empresa.
// Administradores acessam todas.
func (c *Claims) CanAccessCompany(companyID string) bool {
	if c == nil {
		return false
	}
	if c.UserRoleID == RoleAdmin {
		return true
	}
	return c.UserCompanyID != nil && *c.UserCompanyID == companyID
}
