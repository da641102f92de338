package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolOperario = "operario"
)

// Usuario es el actor que registra movimientos y valida facturas.
type Usuario struct {
	ID           string
	Nombre       string // único
	PasswordHash string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
}
