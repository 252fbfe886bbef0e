package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invdomain "github.com/dev-playground/order-demo/internal/inventory/domain"
	"github.com/dev-playground/order-demo/internal/order/application"
	"github.com/dev-playground/order-demo/internal/order/domain"
	orderhttp "github.com/dev-playground/order-demo/internal/order/infrastructure/http"
	"github.com/dev-playground/order-demo/internal/order/infrastructure/memory"
)

type stubInventory struct {
	stock map[string]int
}

func (s *stubInventory) GetStock(_ context.Context, sku string) (invdomain.Stock, error) {
	return invdomain.Stock{SKU: sku, Available: s.stock[sku]}, nil
}

type recordingPublisher struct {
	published []domain.Order
}

func (p *recordingPublisher) PublishOrderAccepted(_ context.Context, o domain.Order) error {
	p.published = append(p.published, o)
	return nil
}

func newServer(t *testing.T, stock map[string]int) (*httptest.Server, *recordingPublisher) {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	pub := &recordingPublisher{}
	svc := application.NewService(log, memory.New(), &stubInventory{stock: stock}, pub)
	srv := httptest.NewServer(orderhttp.NewHandler(log, svc).Routes())
	t.Cleanup(srv.Close)
	return srv, pub
}

func postOrder(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestCreateOrderAccepted(t *testing.T) {
	srv, pub := newServer(t, map[string]int{"ABC-1": 100})

	resp := postOrder(t, srv, `{"sku":"ABC-1","quantity":10}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var o domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "ABC-1", o.SKU)
	assert.Equal(t, 10, o.Quantity)
	assert.Equal(t, domain.StatusPending, o.Status)

	require.Len(t, pub.published, 1)
	assert.Equal(t, o, pub.published[0])
}

func TestCreateOrderRejected(t *testing.T) {
	srv, pub := newServer(t, map[string]int{"XYZ-9": 0})

	resp := postOrder(t, srv, `{"sku":"XYZ-9","quantity":1}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode,
		"rejection is a business outcome, not a transport error")

	var o domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.Equal(t, domain.StatusRejectedNoStock, o.Status)
	assert.Empty(t, pub.published)
}

func TestCreateOrderMalformedBody(t *testing.T) {
	srv, pub := newServer(t, nil)

	resp := postOrder(t, srv, `{"sku":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, pub.published)
}

func TestGetOrderRoundTrip(t *testing.T) {
	srv, _ := newServer(t, map[string]int{"ABC-1": 100})

	resp := postOrder(t, srv, `{"sku":"ABC-1","quantity":1}`)
	var created domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/orders/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created, got)
}

func TestGetOrderUnknownID(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/orders/nonexistent-id")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body, "absent order answers with an empty payload")
}
