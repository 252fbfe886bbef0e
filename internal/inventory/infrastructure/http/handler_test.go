package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-playground/order-demo/internal/inventory/application"
	"github.com/dev-playground/order-demo/internal/inventory/domain"
	invhttp "github.com/dev-playground/order-demo/internal/inventory/infrastructure/http"
	"github.com/dev-playground/order-demo/internal/inventory/infrastructure/memory"
)

func newServer(t *testing.T, seed map[string]int) *httptest.Server {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	svc := application.NewService(memory.New(seed))
	srv := httptest.NewServer(invhttp.NewHandler(log, svc).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetStock(t *testing.T) {
	srv := newServer(t, map[string]int{"FOO-7": 50})

	resp, err := http.Get(srv.URL + "/inventory/FOO-7")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stock domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stock))
	assert.Equal(t, domain.Stock{SKU: "FOO-7", Available: 50}, stock)
}

func TestGetStockUnknownSKU(t *testing.T) {
	srv := newServer(t, map[string]int{"FOO-7": 50})

	resp, err := http.Get(srv.URL + "/inventory/never-heard-of-it")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "unknown SKU is not an error")

	var stock domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stock))
	assert.Equal(t, domain.Stock{SKU: "never-heard-of-it", Available: 0}, stock)
}

func TestRestock(t *testing.T) {
	srv := newServer(t, nil)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/inventory/ABC-1", strings.NewReader(`{"available":25}`))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/inventory/ABC-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	var stock domain.Stock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stock))
	assert.Equal(t, 25, stock.Available)
}

func TestRestockBadBody(t *testing.T) {
	srv := newServer(t, nil)

	for _, body := range []string{`not json`, `{"available":-1}`} {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/inventory/ABC-1", strings.NewReader(body))
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}
