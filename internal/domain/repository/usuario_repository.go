package repository

import "github.com/lycoris/control-stock/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByNombre(nombre string) (*entity.Usuario, error)
}
