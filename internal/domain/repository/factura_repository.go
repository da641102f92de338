package repository

import "github.com/lycoris/control-stock/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para Factura.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	// List devuelve facturas más recientes primero; estado vacío = todas.
	List(estado string) ([]*entity.Factura, error)
}
