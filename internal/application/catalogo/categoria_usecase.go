package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// colorPorDefecto es el color del botón de categoría cuando no se indica uno.
const colorPorDefecto = "#2196F3"

// CategoriaUseCase CRUD de categorías con baja lógica.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Crear crea una categoría. El nombre es obligatorio y único.
func (uc *CategoriaUseCase) Crear(in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.repo.GetByNombre(in.Nombre)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	color := in.Color
	if color == "" {
		color = colorPorDefecto
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Color:       color,
		Imagen:      in.Imagen,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Actualizar aplica un patch parcial sobre la categoría.
func (uc *CategoriaUseCase) Actualizar(id string, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		otra, _ := uc.repo.GetByNombre(*in.Nombre)
		if otra != nil && otra.ID != id {
			return nil, domain.ErrDuplicate
		}
		categoria.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		categoria.Descripcion = *in.Descripcion
	}
	if in.Color != nil {
		categoria.Color = *in.Color
	}
	if in.Imagen != nil {
		categoria.Imagen = *in.Imagen
	}
	// La baja es reversible: el patch puede reactivar la categoría.
	if in.Activo != nil {
		categoria.Activo = *in.Activo
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Listar devuelve las categorías; por defecto solo las activas.
func (uc *CategoriaUseCase) Listar(incluirInactivas bool) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(incluirInactivas)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Desactivar aplica la baja lógica (activo=false). Nunca borra la fila: los
// movimientos y facturas históricos deben seguir resolviendo la categoría.
func (uc *CategoriaUseCase) Desactivar(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Color:       c.Color,
		Imagen:      c.Imagen,
		Activo:      c.Activo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
