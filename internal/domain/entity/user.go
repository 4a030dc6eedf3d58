package entity

import "time"

// Roles de usuario.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User representa un usuario de la aplicación (dueño o personal de bodega).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string // "owner" | "staff"
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
