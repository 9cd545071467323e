package repository

import "github.com/labmetricas/labstock-api/internal/domain/entity"

// UserRepository puerto de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetActiveByID(id string) (*entity.User, error)
	GetActiveByEmail(email string) (*entity.User, error)
}
