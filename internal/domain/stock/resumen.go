package stock

import (
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/domain/entity"
)

// Resumen agrega el estado del stock del catálogo.
// Los cubos son mutuamente excluyentes: un producto en cero cuenta como
// SinStock, no como BajoStock; el umbral de mínimo es inclusivo.
type Resumen struct {
	Total     int
	BajoStock int // 0 < stock_actual <= stock_minimo
	SinStock  int // stock_actual <= 0
}

// Resumir calcula el resumen sobre una lista de productos (servicio de dominio,
// sin estado ni persistencia).
func Resumir(productos []*entity.Producto) Resumen {
	r := Resumen{Total: len(productos)}
	for _, p := range productos {
		switch {
		case p.StockActual.LessThanOrEqual(decimal.Zero):
			r.SinStock++
		case p.StockActual.LessThanOrEqual(p.StockMinimo):
			r.BajoStock++
		}
	}
	return r
}
