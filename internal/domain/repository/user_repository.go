package repository

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// UserRepository define el puerto de usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
