package repository

import (
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain/entity"
)

// FiltroProductos es el predicado único que componen todas las consultas de
// listado: el filtro de activos vive aquí y no repetido en cada call site.
type FiltroProductos struct {
	CategoriaID       string // vacío = todas las categorías
	Texto             string // búsqueda por nombre o código
	IncluirInactivos  bool
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetByID resuelve también filas inactivas (consultas históricas de movimientos).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List(filtro FiltroProductos) ([]*entity.Producto, error)
	Desactivar(id string) error
	// ListCodigosActivos devuelve los códigos no vacíos de productos activos
	// (insumo de la autoasignación de código).
	ListCodigosActivos() ([]string, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para el
	// read-modify-write de StockActual dentro de una transacción.
	GetForUpdate(id string) (*entity.Producto, error)
	// UpdateStock fija StockActual; solo debe invocarse desde el motor de
	// inventario, dentro de la misma transacción que inserta el movimiento.
	UpdateStock(id string, stock decimal.Decimal) error
}
