package dto

import "github.com/shopspring/decimal"

// ResumenStockResponse contadores del tablero de stock.
type ResumenStockResponse struct {
	Total     int `json:"total"`
	BajoStock int `json:"bajo_stock"`
	SinStock  int `json:"sin_stock"`
}

// PesoNetoResponse peso neto acumulado de un producto pesable.
type PesoNetoResponse struct {
	ProductoID string          `json:"producto_id"`
	PesoNetoKg decimal.Decimal `json:"peso_neto_kg"`
}
