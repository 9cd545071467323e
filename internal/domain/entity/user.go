package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleOperador   = "OPERADOR"
)

// User usuario del sistema.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Actor construye el snapshot de identidad para auditoría.
func (u *User) Actor() ActorRef {
	if u == nil {
		return AnonymousActor()
	}
	return ActorRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
