package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrReferenced        = errors.New("el recurso tiene registros asociados")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
)
