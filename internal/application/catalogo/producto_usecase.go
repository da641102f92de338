package catalogo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
	"github.com/lycoris/control-stock/internal/domain/stock"
)

// unidadPorDefecto unidad de medida cuando no se indica una.
const unidadPorDefecto = "unidad"

// ProductoUseCase CRUD de productos con baja lógica y autoasignación de código.
// StockActual no se toca aquí: solo cambia vía el motor de inventario.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Crear crea un producto. Nombre y categoría son obligatorios; un código vacío
// se autoasigna con SugerirCodigo. El stock inicial siempre es cero.
func (uc *ProductoUseCase) Crear(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.CategoriaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo.IsNegative() || in.PesoUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	codigo := in.Codigo
	if codigo == "" {
		codigo, err = uc.SugerirCodigo()
		if err != nil {
			return nil, err
		}
	} else if existente, _ := uc.repo.GetByCodigo(codigo); existente != nil {
		return nil, domain.ErrDuplicate
	}
	unidad := in.UnidadMedida
	if unidad == "" {
		unidad = unidadPorDefecto
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		Codigo:           codigo,
		Descripcion:      in.Descripcion,
		CategoriaID:      in.CategoriaID,
		UnidadMedida:     unidad,
		EsPesable:        in.EsPesable,
		RequiereFotoPeso: in.RequiereFotoPeso,
		PesoUnitario:     in.PesoUnitario,
		StockActual:      decimal.Zero,
		StockMinimo:      in.StockMinimo,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ObtenerPorID resuelve un producto por ID, incluso inactivo (consultas
// históricas de movimientos).
func (uc *ProductoUseCase) ObtenerPorID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Actualizar aplica un patch parcial. Ni StockActual ni los timestamps de
// creación son editables.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Codigo != nil && *in.Codigo != producto.Codigo {
		if *in.Codigo != "" {
			if otro, _ := uc.repo.GetByCodigo(*in.Codigo); otro != nil && otro.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		producto.Codigo = *in.Codigo
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		categoria, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrNotFound
		}
		producto.CategoriaID = *in.CategoriaID
	}
	if in.UnidadMedida != nil {
		producto.UnidadMedida = *in.UnidadMedida
	}
	if in.EsPesable != nil {
		producto.EsPesable = *in.EsPesable
	}
	if in.RequiereFotoPeso != nil {
		producto.RequiereFotoPeso = *in.RequiereFotoPeso
	}
	if in.PesoUnitario != nil {
		if in.PesoUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.PesoUnitario = *in.PesoUnitario
	}
	if in.StockMinimo != nil {
		if in.StockMinimo.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.StockMinimo = *in.StockMinimo
	}
	// La baja es reversible: el patch puede reactivar el producto.
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Listar devuelve productos filtrados por categoría y texto; por defecto solo
// los activos.
func (uc *ProductoUseCase) Listar(filtro repository.FiltroProductos) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Desactivar aplica la baja lógica. Igual que con las categorías, nunca se
// borra la fila: el historial de movimientos la referencia.
func (uc *ProductoUseCase) Desactivar(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

// SugerirCodigo propone el siguiente código numérico libre entre los productos
// activos. Es orientativo: el usuario puede sobrescribirlo antes de guardar.
func (uc *ProductoUseCase) SugerirCodigo() (string, error) {
	codigos, err := uc.repo.ListCodigosActivos()
	if err != nil {
		return "", err
	}
	return stock.SugerirCodigo(codigos), nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Codigo:           p.Codigo,
		Descripcion:      p.Descripcion,
		CategoriaID:      p.CategoriaID,
		UnidadMedida:     p.UnidadMedida,
		EsPesable:        p.EsPesable,
		RequiereFotoPeso: p.RequiereFotoPeso,
		PesoUnitario:     p.PesoUnitario,
		StockActual:      p.StockActual,
		StockMinimo:      p.StockMinimo,
		Activo:           p.Activo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
