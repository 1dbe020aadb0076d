package entities

import "gearguard/pkg/types"

type UserRole string

const (
	RoleManager    UserRole = "Manager"
	RoleTechnician UserRole = "Technician"
	RoleEmployee   UserRole = "Employee"
)

// User is a login identity. The role is cosmetic: it travels in the token
// and the profile response but never gates an operation.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`

	types.BaseEntity
}
