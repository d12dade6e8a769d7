package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin = "admin"
	RoleChef  = "chef"
)

// User usuario autenticable de la cocina.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | chef
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
