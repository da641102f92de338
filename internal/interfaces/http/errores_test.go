package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain"
)

func appConError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fallo", func(c *fiber.Ctx) error {
		return respuestaError(c, err)
	})
	return app
}

func lanzar(t *testing.T, app *fiber.App) (int, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fallo", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespuestaError_MapeoDeSentinelas(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
	}
	for _, c := range casos {
		t.Run(c.code, func(t *testing.T) {
			status, body := lanzar(t, appConError(c.err))
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.code, body.Code)
		})
	}

	// Los sentinelas envueltos también se reconocen.
	status, body := lanzar(t, appConError(fmt.Errorf("registrar: %w", domain.ErrInsufficientStock)))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

// Un fallo de almacenamiento envuelto nunca filtra el detalle del driver al
// cliente: el cuerpo lleva solo un mensaje genérico.
func TestRespuestaError_FalloInterno_NoFiltraDetalle(t *testing.T) {
	interno := fmt.Errorf("insert movimiento: %w",
		errors.New(`ERROR: duplicate key value violates unique constraint "movimientos_pkey" (SQLSTATE 23505)`))

	status, body := lanzar(t, appConError(interno))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")
	assert.NotContains(t, body.Message, "insert movimiento")
}
