package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	app "github.com/izzys-bakery/business-api/internal/app"
	"github.com/izzys-bakery/business-api/internal/app/domain/business"
	"github.com/izzys-bakery/business-api/internal/app/domain/order"
	"github.com/izzys-bakery/business-api/internal/app/domain/pastry"
	"github.com/izzys-bakery/business-api/internal/app/metrics"
	"github.com/izzys-bakery/business-api/internal/app/services/businesses"
	"github.com/izzys-bakery/business-api/internal/app/services/orders"
	"github.com/izzys-bakery/business-api/internal/app/storage"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app *app.Application
}

// NewHandler returns a mux exposing the REST API.
func NewHandler(application *app.Application) http.Handler {
	h := &handler{app: application}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/test", h.connectivity)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/business/signup", h.businessSignup)
	mux.HandleFunc("/api/business", h.businessList)
	mux.HandleFunc("/api/business/", h.businessResources)
	mux.HandleFunc("/api/pastries", h.pastries)
	mux.HandleFunc("/api/orders", h.orders)
	return mux
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": app.Name, "status": "ok"})
}

// connectivity reports store health. It never fails the request; problems
// show up in the body, not the status code.
func (h *handler) connectivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.app.System.Check(r.Context()))
}

func (h *handler) businessSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var payload business.Business
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.app.Businesses.Signup(r.Context(), payload)
	if err != nil {
		if errors.Is(err, businesses.ErrEmailTaken) {
			metrics.RecordSignup("conflict")
			writeError(w, http.StatusBadRequest, err)
			return
		}
		metrics.RecordSignup("error")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordSignup("created")
	writeJSON(w, http.StatusOK, map[string]any{"id": created.ID, "approved": created.Approved})
}

func (h *handler) businessList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	onlyPending := boolQuery(r, "only_pending", false)
	list, err := h.app.Businesses.List(r.Context(), onlyPending)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []business.Business{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) businessResources(w http.ResponseWriter, r *http.Request) {
	trimmed := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/business"), "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "approve" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPatch {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	businessID := parts[0]

	var payload struct {
		Approved bool `json:"approved"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.app.Businesses.SetApproved(r.Context(), businessID, payload.Approved)
	if err != nil {
		writeError(w, statusFromError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": updated.ID, "approved": updated.Approved})
}

func (h *handler) pastries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		// Active defaults to true when the payload omits it.
		var payload struct {
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Price       float64 `json:"price"`
			Active      *bool   `json:"active"`
		}
		if err := decodeJSON(r.Body, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p := pastry.Pastry{
			Name:        payload.Name,
			Description: payload.Description,
			Price:       payload.Price,
			Active:      payload.Active == nil || *payload.Active,
		}
		if err := p.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		created, err := h.app.Pastries.Create(r.Context(), p)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": created.ID})

	case http.MethodGet:
		activeOnly := boolQuery(r, "active_only", true)
		list, err := h.app.Pastries.List(r.Context(), activeOnly)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if list == nil {
			list = []pastry.Pastry{}
		}
		writeJSON(w, http.StatusOK, list)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) orders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var payload order.Order
		if err := decodeJSON(r.Body, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := payload.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		created, err := h.app.Orders.Create(r.Context(), payload)
		if err != nil {
			status := statusFromError(err)
			if status >= http.StatusInternalServerError {
				metrics.RecordOrder("error")
			} else {
				metrics.RecordOrder("rejected")
			}
			writeError(w, status, err)
			return
		}
		metrics.RecordOrder("created")
		writeJSON(w, http.StatusOK, map[string]any{"id": created.ID})

	case http.MethodGet:
		list, err := h.app.Orders.List(r.Context(), r.URL.Query().Get("business_id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if list == nil {
			list = []order.Order{}
		}
		writeJSON(w, http.StatusOK, list)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// statusFromError maps taxonomy sentinels to HTTP statuses. Anything
// unrecognised is a store failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, orders.ErrBusinessNotApproved):
		return http.StatusForbidden
	case errors.Is(err, orders.ErrInvalidPastry):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func boolQuery(r *http.Request, name string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	switch raw {
	case "":
		return def
	case "1", "t", "true", "yes":
		return true
	default:
		return false
	}
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
