package repository

import "github.com/lycoris/control-stock/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
// La baja es siempre lógica: Desactivar marca activo=false y nunca borra filas.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	List(incluirInactivas bool) ([]*entity.Categoria, error)
	Desactivar(id string) error
}
