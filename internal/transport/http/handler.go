package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/light-bringer/equiv-service/internal/app/equivalence/contracts"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/domain"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/find_candidates"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_clients"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_equivalents"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/queries/list_products"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/establish_equivalence"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_client"
	"github.com/light-bringer/equiv-service/internal/app/equivalence/usecases/register_product"
)

// Handler serves the JSON API over the equivalence use cases and queries.
type Handler struct {
	registerClient       *register_client.Interactor
	registerProduct      *register_product.Interactor
	establishEquivalence *establish_equivalence.Interactor
	listEquivalents      *list_equivalents.Query
	findCandidates       *find_candidates.Query
	listClients          *list_clients.Query
	listProducts         *list_products.Query
}

// NewHandler creates a new API handler.
func NewHandler(
	registerClient *register_client.Interactor,
	registerProduct *register_product.Interactor,
	establishEquivalence *establish_equivalence.Interactor,
	listEquivalents *list_equivalents.Query,
	findCandidates *find_candidates.Query,
	listClients *list_clients.Query,
	listProducts *list_products.Query,
) *Handler {
	return &Handler{
		registerClient:       registerClient,
		registerProduct:      registerProduct,
		establishEquivalence: establishEquivalence,
		listEquivalents:      listEquivalents,
		findCandidates:       findCandidates,
		listClients:          listClients,
		listProducts:         listProducts,
	}
}

// RegisterRoutes attaches all API routes to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/clients", h.handleClients)
	mux.HandleFunc("/api/v1/products", h.handleProducts)
	mux.HandleFunc("/api/v1/equivalences", h.handleEquivalences)
	mux.HandleFunc("/api/v1/candidates", h.handleCandidates)
}

// ClientResponse represents a client in the HTTP response.
type ClientResponse struct {
	ClientID  int64  `json:"client_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ProductResponse represents a product in the HTTP response.
type ProductResponse struct {
	ProductID int64  `json:"product_id"`
	ClientID  int64  `json:"client_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// RegisterClientRequest is the POST /api/v1/clients body.
type RegisterClientRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegisterProductRequest is the POST /api/v1/products body.
type RegisterProductRequest struct {
	ClientCode  string `json:"client_code"`
	ProductName string `json:"product_name"`
}

// EstablishEquivalenceRequest is the POST /api/v1/equivalences body.
type EstablishEquivalenceRequest struct {
	ClientCodeA  string `json:"client_code_a"`
	ProductNameA string `json:"product_name_a"`
	ClientCodeB  string `json:"client_code_b"`
	ProductNameB string `json:"product_name_b"`
}

// EstablishEquivalenceResponse reports the canonical pair and whether it
// already existed.
type EstablishEquivalenceResponse struct {
	ProductIDA    int64 `json:"product_id_a"`
	ProductIDB    int64 `json:"product_id_b"`
	AlreadyExists bool  `json:"already_exists"`
}

func (h *Handler) handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients, err := h.listClients.Execute(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]ClientResponse, 0, len(clients))
		for _, c := range clients {
			out = append(out, ClientResponse{
				ClientID:  c.ClientID,
				Code:      c.Code,
				Name:      c.Name,
				CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"clients": out})

	case http.MethodPost:
		var req RegisterClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		id, err := h.registerClient.Execute(r.Context(), &register_client.Request{
			Code: req.Code,
			Name: req.Name,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"client_id": id})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		products, err := h.listProducts.Execute(r.Context(), &list_products.Request{
			ClientCode: r.URL.Query().Get("client_code"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"products": productResponses(products)})

	case http.MethodPost:
		var req RegisterProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		id, err := h.registerProduct.Execute(r.Context(), &register_product.Request{
			ClientCode:  req.ClientCode,
			ProductName: req.ProductName,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int64{"product_id": id})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleEquivalences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		equivalents, err := h.listEquivalents.Execute(r.Context(), &list_equivalents.Request{
			ClientCode:  query.Get("client_code"),
			ProductName: query.Get("product_name"),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"equivalents": productResponses(equivalents)})

	case http.MethodPost:
		var req EstablishEquivalenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		result, err := h.establishEquivalence.Execute(r.Context(), &establish_equivalence.Request{
			ClientCodeA:  req.ClientCodeA,
			ProductNameA: req.ProductNameA,
			ClientCodeB:  req.ClientCodeB,
			ProductNameB: req.ProductNameB,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		// "Already exists" is a success-shaped idempotent outcome, not an
		// error, so it still answers 200.
		status := http.StatusCreated
		if result.AlreadyExists {
			status = http.StatusOK
		}
		writeJSON(w, status, EstablishEquivalenceResponse{
			ProductIDA:    result.ProductIDA,
			ProductIDB:    result.ProductIDB,
			AlreadyExists: result.AlreadyExists,
		})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	candidates, err := h.findCandidates.Execute(r.Context(), &find_candidates.Request{
		ClientCode:  query.Get("client_code"),
		ProductName: query.Get("product_name"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"candidates": productResponses(candidates)})
}

func productResponses(products []*contracts.ProductDTO) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ProductID: p.ProductID,
			ClientID:  p.ClientID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps domain errors to HTTP statuses: blank input 400, failed
// lookups 404, same-client attempts 409, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingClientCode),
		errors.Is(err, domain.ErrMissingClientName),
		errors.Is(err, domain.ErrMissingProductName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrSameClient):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
