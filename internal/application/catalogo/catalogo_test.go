package catalogo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lycoris/control-stock/internal/application/catalogo"
	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

func nuevoMemCategoriaRepo() *memCategoriaRepo {
	return &memCategoriaRepo{categorias: make(map[string]*entity.Categoria)}
}

func (r *memCategoriaRepo) Create(c *entity.Categoria) error {
	for _, otra := range r.categorias {
		if otra.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	copia := *c
	r.categorias[c.ID] = &copia
	return nil
}

func (r *memCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *memCategoriaRepo) GetByNombre(nombre string) (*entity.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nombre == nombre {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memCategoriaRepo) Update(c *entity.Categoria) error {
	if _, ok := r.categorias[c.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *c
	r.categorias[c.ID] = &copia
	return nil
}

func (r *memCategoriaRepo) List(incluirInactivas bool) ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range r.categorias {
		if !incluirInactivas && !c.Activo {
			continue
		}
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memCategoriaRepo) Desactivar(id string) error {
	c, ok := r.categorias[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Activo = false
	return nil
}

type memProductoRepo struct {
	productos map[string]*entity.Producto
}

func nuevoMemProductoRepo() *memProductoRepo {
	return &memProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (r *memProductoRepo) Create(p *entity.Producto) error {
	if p.Codigo != "" {
		for _, otro := range r.productos {
			if otro.Codigo == p.Codigo {
				return domain.ErrDuplicate
			}
		}
	}
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *memProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *memProductoRepo) Update(p *entity.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *memProductoRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *memProductoRepo) List(filtro repository.FiltroProductos) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if !filtro.IncluirInactivos && !p.Activo {
			continue
		}
		if filtro.CategoriaID != "" && p.CategoriaID != filtro.CategoriaID {
			continue
		}
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memProductoRepo) Desactivar(id string) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	return nil
}

func (r *memProductoRepo) ListCodigosActivos() ([]string, error) {
	var codigos []string
	for _, p := range r.productos {
		if p.Activo && p.Codigo != "" {
			codigos = append(codigos, p.Codigo)
		}
	}
	return codigos, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func armarCatalogo(t *testing.T) (*catalogo.CategoriaUseCase, *catalogo.ProductoUseCase, string) {
	t.Helper()
	categoriaRepo := nuevoMemCategoriaRepo()
	productoRepo := nuevoMemProductoRepo()
	categoriaUC := catalogo.NewCategoriaUseCase(categoriaRepo)
	productoUC := catalogo.NewProductoUseCase(productoRepo, categoriaRepo)

	cat, err := categoriaUC.Crear(dto.CrearCategoriaRequest{Nombre: "Lácteos"})
	require.NoError(t, err)
	return categoriaUC, productoUC, cat.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoria_Crear_AplicaDefaults(t *testing.T) {
	uc := catalogo.NewCategoriaUseCase(nuevoMemCategoriaRepo())

	cat, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, "#2196F3", cat.Color, "sin color debe aplicarse el default")
	assert.True(t, cat.Activo)
	assert.NotEmpty(t, cat.ID)
}

func TestCategoria_Crear_NombreDuplicado(t *testing.T) {
	uc := catalogo.NewCategoriaUseCase(nuevoMemCategoriaRepo())

	_, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)
	_, err = uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoria_Crear_SinNombre(t *testing.T) {
	uc := catalogo.NewCategoriaUseCase(nuevoMemCategoriaRepo())
	_, err := uc.Crear(dto.CrearCategoriaRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoria_Actualizar_PatchParcial(t *testing.T) {
	uc := catalogo.NewCategoriaUseCase(nuevoMemCategoriaRepo())
	cat, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas", Descripcion: "frías"})
	require.NoError(t, err)

	out, err := uc.Actualizar(cat.ID, dto.ActualizarCategoriaRequest{Color: strPtr("#FF0000")})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", out.Color)
	assert.Equal(t, "Bebidas", out.Nombre, "los campos no enviados no cambian")
	assert.Equal(t, "frías", out.Descripcion)
}

func TestCategoria_Desactivar_EsBajaLogica(t *testing.T) {
	repo := nuevoMemCategoriaRepo()
	uc := catalogo.NewCategoriaUseCase(repo)
	cat, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(cat.ID))

	visibles, err := uc.Listar(false)
	require.NoError(t, err)
	assert.Empty(t, visibles, "la categoría desactivada sale del listado por defecto")

	todas, err := uc.Listar(true)
	require.NoError(t, err)
	assert.Len(t, todas, 1, "la fila sigue existiendo, solo inactiva")
	assert.False(t, todas[0].Activo)

	assert.ErrorIs(t, uc.Desactivar("no-existe"), domain.ErrNotFound)
}

// La baja es reversible: un patch con activo=true vuelve a mostrar la categoría.
func TestCategoria_Reactivar(t *testing.T) {
	uc := catalogo.NewCategoriaUseCase(nuevoMemCategoriaRepo())
	cat, err := uc.Crear(dto.CrearCategoriaRequest{Nombre: "Bebidas"})
	require.NoError(t, err)
	require.NoError(t, uc.Desactivar(cat.ID))

	out, err := uc.Actualizar(cat.ID, dto.ActualizarCategoriaRequest{Activo: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, out.Activo)

	visibles, err := uc.Listar(false)
	require.NoError(t, err)
	assert.Len(t, visibles, 1, "la categoría reactivada vuelve al listado por defecto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducto_Crear_AutoasignaCodigo(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)

	p1, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", CategoriaID: categoriaID})
	require.NoError(t, err)
	assert.Equal(t, "0001", p1.Codigo, "el primer código autoasignado es 0001")
	assert.Equal(t, "unidad", p1.UnidadMedida)
	assert.True(t, p1.StockActual.IsZero(), "el stock inicial siempre es cero")

	p2, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Yogur", CategoriaID: categoriaID})
	require.NoError(t, err)
	assert.Equal(t, "0002", p2.Codigo)
}

func TestProducto_Crear_CodigoExplicitoDuplicado(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)

	_, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", Codigo: "L-01", CategoriaID: categoriaID})
	require.NoError(t, err)
	_, err = productoUC.Crear(dto.CrearProductoRequest{Nombre: "Yogur", Codigo: "L-01", CategoriaID: categoriaID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProducto_Crear_CategoriaInexistente(t *testing.T) {
	_, productoUC, _ := armarCatalogo(t)
	_, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", CategoriaID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducto_Crear_Validaciones(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)

	_, err := productoUC.Crear(dto.CrearProductoRequest{CategoriaID: categoriaID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, err = productoUC.Crear(dto.CrearProductoRequest{
		Nombre:      "Leche",
		CategoriaID: categoriaID,
		StockMinimo: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mínimo negativo")
}

func TestProducto_Actualizar_NoTocaStock(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)
	p, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", CategoriaID: categoriaID})
	require.NoError(t, err)

	out, err := productoUC.Actualizar(p.ID, dto.ActualizarProductoRequest{Nombre: strPtr("Leche entera")})
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", out.Nombre)
	assert.True(t, out.StockActual.IsZero())
	assert.Equal(t, p.Codigo, out.Codigo)
}

func TestProducto_Actualizar_CodigoDuplicado(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)
	p1, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", Codigo: "A-1", CategoriaID: categoriaID})
	require.NoError(t, err)
	_, err = productoUC.Crear(dto.CrearProductoRequest{Nombre: "Yogur", Codigo: "A-2", CategoriaID: categoriaID})
	require.NoError(t, err)

	_, err = productoUC.Actualizar(p1.ID, dto.ActualizarProductoRequest{Codigo: strPtr("A-2")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProducto_Desactivar_SigueResolviendoPorID(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)
	p, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", CategoriaID: categoriaID})
	require.NoError(t, err)

	require.NoError(t, productoUC.Desactivar(p.ID))

	visibles, err := productoUC.Listar(repository.FiltroProductos{})
	require.NoError(t, err)
	assert.Empty(t, visibles)

	// Las consultas históricas por ID siguen funcionando.
	out, err := productoUC.ObtenerPorID(p.ID)
	require.NoError(t, err)
	assert.False(t, out.Activo)
}

// La baja es reversible: un patch con activo=true devuelve el producto al
// listado activo, con su stock intacto.
func TestProducto_Reactivar(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)
	p, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", CategoriaID: categoriaID})
	require.NoError(t, err)
	require.NoError(t, productoUC.Desactivar(p.ID))

	out, err := productoUC.Actualizar(p.ID, dto.ActualizarProductoRequest{Activo: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, out.Activo)

	visibles, err := productoUC.Listar(repository.FiltroProductos{})
	require.NoError(t, err)
	require.Len(t, visibles, 1, "el producto reactivado vuelve al listado por defecto")
	assert.Equal(t, p.ID, visibles[0].ID)
}

func TestProducto_SugerirCodigo_IgnoraInactivos(t *testing.T) {
	_, productoUC, categoriaID := armarCatalogo(t)
	p, err := productoUC.Crear(dto.CrearProductoRequest{Nombre: "Leche", Codigo: "0009", CategoriaID: categoriaID})
	require.NoError(t, err)

	codigo, err := productoUC.SugerirCodigo()
	require.NoError(t, err)
	assert.Equal(t, "0010", codigo)

	require.NoError(t, productoUC.Desactivar(p.ID))
	codigo, err = productoUC.SugerirCodigo()
	require.NoError(t, err)
	assert.Equal(t, "0001", codigo, "los códigos de inactivos quedan libres")
}
