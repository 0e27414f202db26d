package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
	"github.com/jhoicas/stock-allocation-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stock-allocation-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-allocation-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "stock-allocation-test"
)

// buildTestApp arma la app completa sobre almacenamiento en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	storage := memory.NewStorage()
	engine := allocation.NewAllocationUseCase(storage, allocation.Config{}, nil)
	storeUC := usecase.NewStoreUseCase(storage.StoreRepository(), storage)
	reportUC := usecase.NewReportUseCase(storage.StoreRepository(), storage.MovementRepository())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StoreUC:   storeUC,
		ReportUC:  reportUC,
		Engine:    engine,
		JWTSecret: testJWTSecret,
	})
	return app
}

func authToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta decodificada.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	resp.Body.Close()
	return resp, decoded
}

// createStore crea una bodega vía API y devuelve su id.
func createStore(t *testing.T, app *fiber.App, name string, capacityTotal int) int64 {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/stores/", map[string]any{
		"name":           name,
		"capacity_total": capacityTotal,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return int64(body["id"].(float64))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

// Sin token las rutas del API devuelven 401.
func TestAPI_SinTokenNoAutorizado(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas y salidas
// ──────────────────────────────────────────────────────────────────────────────

// Un batch con un ítem válido y uno inválido responde éxito parcial.
func TestAPI_EntriesExitoParcial(t *testing.T) {
	app := buildTestApp(t)
	storeID := createStore(t, app, "central", 10)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stock/entries", map[string]any{
		"entries": []map[string]any{
			{"product_id": "P1", "quantity": 4, "store_id": storeID},
			{"product_id": "P2", "quantity": -1, "store_id": storeID},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := body["results"].([]any)
	require.Len(t, results, 2)

	first := results[0].(map[string]any)
	assert.Nil(t, first["error"])
	movements := first["movements"].([]any)
	require.Len(t, movements, 1)
	assert.Equal(t, "entrada", movements[0].(map[string]any)["state"])

	second := results[1].(map[string]any)
	errBody := second["error"].(map[string]any)
	assert.Equal(t, "INVALID_QUANTITY", errBody["code"])
}

// Una salida mayor al neto disponible reporta INSUFFICIENT_STOCK con el faltante.
func TestAPI_ExitsStockInsuficiente(t *testing.T) {
	app := buildTestApp(t)
	storeID := createStore(t, app, "central", 10)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stock/entries", map[string]any{
		"entries": []map[string]any{{"product_id": "P1", "quantity": 4, "store_id": storeID}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stock/exits", map[string]any{
		"exits": []map[string]any{{"product_id": "P1", "quantity": 10}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := body["results"].([]any)
	require.Len(t, results, 1)
	errBody := results[0].(map[string]any)["error"].(map[string]any)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])
	assert.Contains(t, errBody["message"], "faltan 6")
}

// El neto por producto refleja entradas, derrames y salidas.
func TestAPI_ProductStock(t *testing.T) {
	app := buildTestApp(t)
	storeA := createStore(t, app, "A", 10)
	createStore(t, app, "B", 10)

	// 8 + 5 a la bodega A: derrama 3 a B
	resp, _ := doJSON(t, app, http.MethodPost, "/api/stock/entries", map[string]any{
		"entries": []map[string]any{
			{"product_id": "P1", "quantity": 8, "store_id": storeA},
			{"product_id": "P1", "quantity": 5, "store_id": storeA},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/stock/products/P1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "P1", body["product_id"])
	assert.Equal(t, "13", fmt.Sprintf("%v", body["total_net"]))
	stores := body["stores"].([]any)
	require.Len(t, stores, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar una bodega con existencias devuelve 409 STORE_NOT_EMPTY.
func TestAPI_DeleteBodegaConStock(t *testing.T) {
	app := buildTestApp(t)
	storeID := createStore(t, app, "central", 10)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stock/entries", map[string]any{
		"entries": []map[string]any{{"product_id": "P1", "quantity": 4, "store_id": storeID}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/stores/%d", storeID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "STORE_NOT_EMPTY", body["code"])
}

// Eliminar una bodega vacía devuelve 204 y luego el GET es 404.
func TestAPI_DeleteBodegaVacia(t *testing.T) {
	app := buildTestApp(t)
	storeID := createStore(t, app, "central", 10)

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/stores/%d", storeID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/stores/%d", storeID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "STORE_NOT_FOUND", body["code"])
}

// Entrada hacia una bodega inexistente se reporta por ítem.
func TestAPI_EntryBodegaInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stock/entries", map[string]any{
		"entries": []map[string]any{{"product_id": "P1", "quantity": 4, "store_id": 99}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	results := body["results"].([]any)
	errBody := results[0].(map[string]any)["error"].(map[string]any)
	assert.Equal(t, "STORE_NOT_FOUND", errBody["code"])
}
