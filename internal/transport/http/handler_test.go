package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/find_candidates"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_clients"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_equivalents"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_products"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/establish_equivalence"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_client"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_product"
	"github.com/light-bringer/equiv-service/internal/pkg/clock"
	"github.com/light-bringer/equiv-service/tests/testutil"
)

func newTestServer(store *testutil.FakeStore) *httptest.Server {
	outbox := testutil.NewFakeOutbox()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	handler := NewHandler(
		register_client.NewInteractor(store.Clients(), outbox, clk),
		register_product.NewInteractor(store.Clients(), store.Products(), outbox, clk),
		establish_equivalence.NewInteractor(store.Clients(), store.Products(), store.Equivalences(), outbox, clk),
		list_equivalents.NewQuery(store.Clients(), store.Products(), store.ReadModel()),
		find_candidates.NewQuery(store.Clients(), store.Products(), store.ReadModel()),
		list_clients.NewQuery(store.ReadModel()),
		list_products.NewQuery(store.Clients(), store.ReadModel()),
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return httptest.NewServer(mux)
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeBody(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestHandler_RegisterClient(t *testing.T) {
	store := testutil.NewFakeStore()
	server := newTestServer(store)
	defer server.Close()

	t.Run("creates client", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/clients", `{"code":"C001","name":"Client A"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("blank code is a bad request", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/clients", `{"code":"  ","name":"Client A"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/clients", `{not json`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_RegisterProduct(t *testing.T) {
	store := testutil.NewFakeStore()
	store.SeedClient("C001", "Client A")
	server := newTestServer(store)
	defer server.Close()

	t.Run("creates product", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/products", `{"client_code":"C001","product_name":"Widget"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown client is not found", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/products", `{"client_code":"C999","product_name":"Widget"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("blank name is a bad request", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/products", `{"client_code":"C001","product_name":" "}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_EstablishEquivalence(t *testing.T) {
	store := testutil.NewFakeStore()
	a := store.SeedClient("C001", "Client A")
	b := store.SeedClient("C002", "Client B")
	store.SeedProduct(a.ID(), "Widget")
	store.SeedProduct(b.ID(), "Widget")
	store.SeedProduct(a.ID(), "Gadget")
	server := newTestServer(store)
	defer server.Close()

	body := `{"client_code_a":"C001","product_name_a":"Widget","client_code_b":"C002","product_name_b":"Widget"}`

	t.Run("first call creates the pair", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/equivalences", body)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result EstablishEquivalenceResponse
		require.NoError(t, decodeBody(resp, &result))
		assert.False(t, result.AlreadyExists)
		assert.Less(t, result.ProductIDA, result.ProductIDB)
	})

	t.Run("second call reports already exists with 200", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/equivalences", body)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result EstablishEquivalenceResponse
		require.NoError(t, decodeBody(resp, &result))
		assert.True(t, result.AlreadyExists)
	})

	t.Run("same client is a conflict", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/equivalences",
			`{"client_code_a":"C001","product_name_a":"Widget","client_code_b":"C001","product_name_b":"Gadget"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("unknown client B is not found", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/equivalences",
			`{"client_code_a":"C001","product_name_a":"Widget","client_code_b":"C999","product_name_b":"Widget"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_Queries(t *testing.T) {
	store := testutil.NewFakeStore()
	a := store.SeedClient("C001", "Client A")
	b := store.SeedClient("C002", "Client B")
	pa := store.SeedProduct(a.ID(), "Widget")
	pb := store.SeedProduct(b.ID(), "Widget")
	store.SeedPair(pa.ID(), pb.ID())
	server := newTestServer(store)
	defer server.Close()

	t.Run("lists clients", func(t *testing.T) {
		resp := get(t, server.URL+"/api/v1/clients")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Clients []ClientResponse `json:"clients"`
		}
		require.NoError(t, decodeBody(resp, &result))
		require.Len(t, result.Clients, 2)
		assert.Equal(t, "C001", result.Clients[0].Code)
	})

	t.Run("lists products filtered by client", func(t *testing.T) {
		resp := get(t, server.URL+"/api/v1/products?client_code=C002")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Products []ProductResponse `json:"products"`
		}
		require.NoError(t, decodeBody(resp, &result))
		require.Len(t, result.Products, 1)
		assert.Equal(t, pb.ID(), result.Products[0].ProductID)
	})

	t.Run("lists equivalents", func(t *testing.T) {
		resp := get(t, server.URL+"/api/v1/equivalences?client_code=C001&product_name=Widget")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Equivalents []ProductResponse `json:"equivalents"`
		}
		require.NoError(t, decodeBody(resp, &result))
		require.Len(t, result.Equivalents, 1)
		assert.Equal(t, pb.ID(), result.Equivalents[0].ProductID)
	})

	t.Run("lists candidates", func(t *testing.T) {
		resp := get(t, server.URL+"/api/v1/candidates?client_code=C001&product_name=Widget")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Candidates []ProductResponse `json:"candidates"`
		}
		require.NoError(t, decodeBody(resp, &result))
		require.Len(t, result.Candidates, 1)
		assert.Equal(t, pb.ID(), result.Candidates[0].ProductID)
	})

	t.Run("unknown inputs answer empty lists not errors", func(t *testing.T) {
		resp := get(t, server.URL+"/api/v1/equivalences?client_code=C999&product_name=Widget")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Equivalents []ProductResponse `json:"equivalents"`
		}
		require.NoError(t, decodeBody(resp, &result))
		assert.Empty(t, result.Equivalents)
	})

	t.Run("rejects unsupported methods", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/candidates", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
