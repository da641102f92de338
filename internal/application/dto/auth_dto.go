package dto

// RegistroRequest entrada para crear un usuario.
type RegistroRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (nunca incluye el hash).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// LoginResponse token emitido más los datos del usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
