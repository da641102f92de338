package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearCategoriaRequest entrada para crear una categoría.
type CrearCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion"`
	Color       string `json:"color"`
	Imagen      string `json:"imagen"`
}

// ActualizarCategoriaRequest entrada para actualizar una categoría (patch parcial).
// Activo permite reactivar una categoría dada de baja.
type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
	Color       *string `json:"color"`
	Imagen      *string `json:"imagen"`
	Activo      *bool   `json:"activo"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Color       string    `json:"color"`
	Imagen      string    `json:"imagen"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CrearProductoRequest entrada para crear un producto.
// Codigo vacío dispara la autoasignación (SugerirCodigo).
type CrearProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required,min=1,max=200"`
	Codigo           string          `json:"codigo"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      string          `json:"categoria_id" validate:"required"`
	UnidadMedida     string          `json:"unidad_medida"`
	EsPesable        bool            `json:"es_pesable"`
	RequiereFotoPeso bool            `json:"requiere_foto_peso"`
	PesoUnitario     decimal.Decimal `json:"peso_unitario"`
	StockMinimo      decimal.Decimal `json:"stock_minimo"`
}

// ActualizarProductoRequest entrada para actualizar un producto.
// StockActual no es editable: solo cambia vía movimientos. Activo permite
// reactivar un producto dado de baja.
type ActualizarProductoRequest struct {
	Nombre           *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Codigo           *string          `json:"codigo"`
	Descripcion      *string          `json:"descripcion"`
	CategoriaID      *string          `json:"categoria_id"`
	UnidadMedida     *string          `json:"unidad_medida"`
	EsPesable        *bool            `json:"es_pesable"`
	RequiereFotoPeso *bool            `json:"requiere_foto_peso"`
	PesoUnitario     *decimal.Decimal `json:"peso_unitario"`
	StockMinimo      *decimal.Decimal `json:"stock_minimo"`
	Activo           *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Codigo           string          `json:"codigo"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      string          `json:"categoria_id"`
	UnidadMedida     string          `json:"unidad_medida"`
	EsPesable        bool            `json:"es_pesable"`
	RequiereFotoPeso bool            `json:"requiere_foto_peso"`
	PesoUnitario     decimal.Decimal `json:"peso_unitario"`
	StockActual      decimal.Decimal `json:"stock_actual"`
	StockMinimo      decimal.Decimal `json:"stock_minimo"`
	Activo           bool            `json:"activo"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
