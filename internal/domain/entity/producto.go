package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario.
// StockActual es denormalizado: siempre debe igualar el neto de sus movimientos;
// solo el motor de inventario (RegistrarMovimiento) puede modificarlo.
type Producto struct {
	ID                string
	Nombre            string
	Codigo            string // código único opcional; vacío = sin código
	Descripcion       string
	CategoriaID       string
	UnidadMedida      string // unidad, kg, litro, etc.
	EsPesable         bool   // true si los movimientos registran además un peso
	RequiereFotoPeso  bool   // true si el producto exige foto de la balanza
	PesoUnitario      decimal.Decimal // peso unitario en kg (productos unitarios)
	StockActual       decimal.Decimal
	StockMinimo       decimal.Decimal // umbral de reposición
	Activo            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
