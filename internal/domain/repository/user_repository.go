package repository

import "github.com/jhoicas/invorya-movil/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios (backend de desarrollo).
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
