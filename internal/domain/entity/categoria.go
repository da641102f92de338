package entity

import "time"

// Categoria agrupa productos del catálogo. La baja es lógica (Activo=false)
// para no dejar huérfanos los movimientos y facturas que la referencian.
type Categoria struct {
	ID          string
	Nombre      string // único
	Descripcion string
	Color       string // color del botón en la UI, ej. "#2196F3"
	Imagen      string // ruta o URL de la imagen
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
