package router_test

// End-to-end tests over the real router with a throwaway SQLite database and
// a fake Mercado Pago API. No external services required.

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/victorjanco1992/despensa-app/internal/config"
	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/middleware"
	"github.com/victorjanco1992/despensa-app/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// fakeMercadoPago serves a canned /v1/payments/search response.
func fakeMercadoPago(t *testing.T, payments []map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payments/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"results": payments})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupServer(t *testing.T, mpBaseURL, mpToken string) *httptest.Server {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	cfg := &config.Config{
		Port:           0,
		Env:            "test",
		MPAccessToken:  mpToken,
		MPAPIBaseURL:   mpBaseURL,
		SyncWindowDays: 30,
		AdminPassword:  "1234",
	}

	probe := middleware.NewReadinessProbe()
	probe.Set(middleware.StateReady)

	engine := router.New(cfg, db, nil, probe)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	srv := setupServer(t, "http://unused", "")

	resp := do(t, srv, http.MethodPost, "/api/login", jsonBody(t, map[string]string{"password": "incorrecta"}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPost, "/api/login", jsonBody(t, map[string]string{"password": "1234"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Success bool   `json:"success"`
		Mensaje string `json:"mensaje"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Login exitoso", body.Mensaje)
}

func TestCuentaCorriente_CicloCompleto(t *testing.T) {
	srv := setupServer(t, "http://unused", "")

	// Catalog product
	resp := do(t, srv, http.MethodPost, "/api/productos", jsonBody(t, map[string]any{
		"nombre": "Leche entera 1L", "precio": 100, "unidad": "unidad",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var producto struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &producto)

	// Customer
	resp = do(t, srv, http.MethodPost, "/api/clientes", jsonBody(t, map[string]any{
		"nombre": "María González", "dni": "28456789",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &cliente)

	// Catalog item on the tab freezes the current price
	resp = do(t, srv, http.MethodPost, "/api/cuentas", jsonBody(t, map[string]any{
		"cliente_id": cliente.ID, "producto_id": producto.ID, "cantidad": 2,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Plus an off-catalog line
	resp = do(t, srv, http.MethodPost, "/api/cuentas/producto-suelto", jsonBody(t, map[string]any{
		"cliente_id": cliente.ID, "nombre": "Pan del día", "precio": 500, "cantidad": 1,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Catalog price goes up; existing lines keep the frozen price
	resp = do(t, srv, http.MethodPut, "/api/productos/"+producto.ID, jsonBody(t, map[string]any{
		"nombre": "Leche entera 1L", "precio": 120, "unidad": "unidad",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/api/cuentas/"+cliente.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// decimal fields marshal as JSON strings
	var items []struct {
		PrecioUnitario string `json:"precio_unitario"`
		Subtotal       string `json:"subtotal"`
		EsSuelto       bool   `json:"es_suelto"`
	}
	decodeJSON(t, resp, &items)
	require.Len(t, items, 2)
	for _, item := range items {
		if !item.EsSuelto {
			assert.Equal(t, "100", item.PrecioUnitario)
		}
	}

	// Explicit refresh re-freezes catalog lines only
	resp = do(t, srv, http.MethodPut, "/api/cuentas/"+cliente.ID+"/actualizar-precios", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var refresco struct {
		Cambios int64 `json:"cambios"`
	}
	decodeJSON(t, resp, &refresco)
	assert.Equal(t, int64(1), refresco.Cambios)

	resp = do(t, srv, http.MethodGet, "/api/cuentas/"+cliente.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &items)
	for _, item := range items {
		if !item.EsSuelto {
			assert.Equal(t, "120", item.PrecioUnitario)
			assert.Equal(t, "240", item.Subtotal)
		} else {
			assert.Equal(t, "500", item.PrecioUnitario)
		}
	}

	// Settle the whole tab
	resp = do(t, srv, http.MethodDelete, "/api/cuentas/"+cliente.ID+"/cancelar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cancelacion struct {
		ItemsEliminados int64 `json:"itemsEliminados"`
	}
	decodeJSON(t, resp, &cancelacion)
	assert.Equal(t, int64(2), cancelacion.ItemsEliminados)
}

func TestClientes_DNIDuplicado(t *testing.T) {
	srv := setupServer(t, "http://unused", "")

	resp := do(t, srv, http.MethodPost, "/api/clientes", jsonBody(t, map[string]any{
		"nombre": "María González", "dni": "28456789",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodPost, "/api/clientes", jsonBody(t, map[string]any{
		"nombre": "Otra María", "dni": "28456789",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "El DNI ya existe", body.Error)
}

func TestSincronizar_SinToken(t *testing.T) {
	srv := setupServer(t, "http://unused", config.TokenPlaceholder)

	resp := do(t, srv, http.MethodGet, "/api/transferencias/sincronizar", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Token de Mercado Pago no configurado", body.Error)
}

func TestSincronizar_ImportaDeMercadoPago(t *testing.T) {
	mp := fakeMercadoPago(t, []map[string]any{
		{
			"id":                 111222333,
			"transaction_amount": 1500.50,
			"date_created":       "2026-08-15T10:30:00Z",
			"payment_type_id":    "bank_transfer",
			"payer":              map[string]any{"first_name": "Juan", "last_name": "Pérez"},
		},
	})
	srv := setupServer(t, mp.URL, "APP_USR-test-token-123")

	resp := do(t, srv, http.MethodGet, "/api/transferencias/sincronizar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sync struct {
		Success bool `json:"success"`
		Total   int  `json:"total"`
		Nuevas  int  `json:"nuevas"`
	}
	decodeJSON(t, resp, &sync)
	assert.True(t, sync.Success)
	assert.Equal(t, 1, sync.Nuevas)

	// Re-running is idempotent thanks to the mp_id unique index.
	resp = do(t, srv, http.MethodGet, "/api/transferencias/sincronizar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &sync)
	assert.Zero(t, sync.Nuevas)

	resp = do(t, srv, http.MethodGet, "/api/transferencias?search=Juan", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var lista struct {
		Transferencias []struct {
			Nombre string `json:"nombre"`
			Fuente string `json:"fuente"`
		} `json:"transferencias"`
		Total int64 `json:"total"`
	}
	decodeJSON(t, resp, &lista)
	require.Equal(t, int64(1), lista.Total)
	assert.Equal(t, "Juan Pérez", lista.Transferencias[0].Nombre)
	assert.Equal(t, "Transferencia", lista.Transferencias[0].Fuente)
}

func TestVerificarConfig_TokenEnmascarado(t *testing.T) {
	srv := setupServer(t, "http://unused", "APP_USR-1234567890abcdef")

	resp := do(t, srv, http.MethodGet, "/api/transferencias/verificar-config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		TokenConfigurado bool   `json:"tokenConfigurado"`
		LongitudToken    int    `json:"longitudToken"`
		InicioToken      string `json:"inicioToken"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.TokenConfigurado)
	assert.Equal(t, len("APP_USR-1234567890abcdef"), body.LongitudToken)
	assert.Equal(t, "APP_USR-1234567"+"...", body.InicioToken)
}

func TestReadiness_BloqueaHastaMigrar(t *testing.T) {
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	cfg := &config.Config{Env: "test", AdminPassword: "1234"}
	probe := middleware.NewReadinessProbe()

	srv := httptest.NewServer(router.New(cfg, db, nil, probe))
	t.Cleanup(srv.Close)

	resp := do(t, srv, http.MethodGet, "/api/productos", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	// /health answers regardless of readiness.
	resp = do(t, srv, http.MethodGet, "/health", nil)
	assert.NotEqual(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	probe.Set(middleware.StateReady)
	resp = do(t, srv, http.MethodGet, "/api/productos", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestListaCompras_Flujo(t *testing.T) {
	srv := setupServer(t, "http://unused", "")

	resp := do(t, srv, http.MethodPost, "/api/productos", jsonBody(t, map[string]any{
		"nombre": "Arroz largo fino 1kg", "precio": 1550, "unidad": "unidad",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var producto struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &producto)

	// Same product twice merges into one pending row
	for i := 0; i < 2; i++ {
		resp = do(t, srv, http.MethodPost, "/api/lista-compras", jsonBody(t, map[string]any{
			"producto_id": producto.ID, "cantidad": 1,
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	// A free-text item always inserts
	resp = do(t, srv, http.MethodPost, "/api/lista-compras", jsonBody(t, map[string]any{
		"nombre_temporal": "Velas de cumpleaños", "cantidad": 1,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/api/lista-compras", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []struct {
		ID       string `json:"id"`
		Cantidad string `json:"cantidad"`
	}
	decodeJSON(t, resp, &items)
	require.Len(t, items, 2)

	resp = do(t, srv, http.MethodPut, "/api/lista-compras/comprar-todos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, "/api/lista-compras/comprados", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var limpieza struct {
		Afectados int64 `json:"afectados"`
	}
	decodeJSON(t, resp, &limpieza)
	assert.Equal(t, int64(2), limpieza.Afectados)
}
