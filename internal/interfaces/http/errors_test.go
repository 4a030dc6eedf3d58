package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain"
)

// appForError monta una ruta que siempre responde con el mapeo del error dado.
func appForError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return ledgerError(c, err)
	})
	return app
}

func responseFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := appForError(err)
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLedgerError_CantidadInvalida(t *testing.T) {
	status, body := responseFor(t, domain.ErrInvalidQuantity)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUANTITY", body.Code)
}

func TestLedgerError_ClienteFaltante(t *testing.T) {
	status, body := responseFor(t, domain.ErrMissingCounterparty)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_COUNTERPARTY", body.Code)
}

func TestLedgerError_NoEncontrado(t *testing.T) {
	status, body := responseFor(t, domain.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestLedgerError_UnidadYaEntregada(t *testing.T) {
	status, body := responseFor(t, domain.ErrUnitAlreadyOut)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "UNIT_ALREADY_OUT", body.Code)
}

// El error de stock insuficiente lleva la cantidad disponible en el cuerpo.
func TestLedgerError_StockInsuficiente_IncluyeDisponible(t *testing.T) {
	status, body := responseFor(t, &domain.InsufficientStockError{Available: 7})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Available)
	assert.Equal(t, int64(7), *body.Available)
}

// Un error no clasificado del store responde 503: el cliente sabe que puede
// reintentar porque la transacción revirtió.
func TestLedgerError_ErrorDesconocido_Retorna503(t *testing.T) {
	status, body := responseFor(t, errors.New("connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Code)
}
