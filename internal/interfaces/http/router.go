package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/auth"
	"github.com/lycoris/control-stock/internal/application/catalogo"
	"github.com/lycoris/control-stock/internal/application/inventario"
	"github.com/lycoris/control-stock/internal/application/reportes"
	"github.com/lycoris/control-stock/internal/application/validacion"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoriaUC  *catalogo.CategoriaUseCase
	ProductoUC   *catalogo.ProductoUseCase
	InventarioUC *inventario.UseCase
	ValidacionUC *validacion.UseCase
	ReportesUC   *reportes.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categorías
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Crear)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Put("/:id", categoriaHandler.Actualizar)
	categorias.Delete("/:id", categoriaHandler.Desactivar)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	movimientoHandler := NewMovimientoHandler(deps.InventarioUC, deps.ReportesUC)
	stockHandler := NewStockHandler(deps.ReportesUC)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	// Antes de :id para que la ruta literal no se trague como parámetro.
	productos.Get("/sugerir-codigo", productoHandler.SugerirCodigo)
	productos.Get("/:id", productoHandler.ObtenerPorID)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Desactivar)
	productos.Get("/:id/historial", movimientoHandler.Historial)
	productos.Get("/:id/peso-neto", stockHandler.PesoNeto)

	// Movimientos de stock
	movimientos := protected.Group("/movimientos")
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Get("/pendientes", movimientoHandler.Pendientes)

	// Validación de entradas y facturas
	validacionHandler := NewValidacionHandler(deps.ValidacionUC, deps.ReportesUC)
	protected.Post("/validaciones", validacionHandler.Validar)
	facturas := protected.Group("/facturas")
	facturas.Get("/", validacionHandler.ListarFacturas)
	facturas.Get("/:id/movimientos", validacionHandler.MovimientosDeFactura)

	// Tablero de stock
	protected.Get("/stock/resumen", stockHandler.Resumen)
}
