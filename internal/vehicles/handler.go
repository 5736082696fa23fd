package vehicles

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/platform/httpx"
	"github.com/veiculos-api/veiculos-api/internal/shared"
)

type vehicleService interface {
	Create(ctx context.Context, in VehicleInput) (Vehicle, error)
	Get(ctx context.Context, id int64) (Vehicle, error)
	List(ctx context.Context, page int) ([]Vehicle, error)
	Update(ctx context.Context, id int64, in VehicleInput) (Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// Handler wires HTTP endpoints for vehicle management.
type Handler struct {
	logger  *slog.Logger
	service vehicleService
	authmw  auth.Middleware
}

// NewHandler constructs a vehicles HTTP handler.
func NewHandler(logger *slog.Logger, service vehicleService, authmw auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authmw: authmw}
}

// MountRoutes registers HTTP routes. Every route needs a valid token;
// deletion is additionally restricted to the Adm role.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/veiculos", func(r chi.Router) {
		r.Use(h.authmw.Require(auth.PolicyAuthenticated))
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id:[0-9]+}", h.get)
		r.Put("/{id:[0-9]+}", h.update)
		r.Group(func(r chi.Router) {
			r.Use(h.authmw.Require(auth.PolicyAdm))
			r.Delete("/{id:[0-9]+}", h.delete)
		})
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in VehicleInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid input", "request body is not valid JSON")
		return
	}
	v, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, "create vehicle", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, v)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context(), shared.PageFromRequest(r))
	if err != nil {
		h.respondError(w, "list vehicles", err)
		return
	}
	httpx.JSON(w, http.StatusOK, vehicles)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get vehicle", err)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	var in VehicleInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid input", "request body is not valid JSON")
		return
	}
	v, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.respondError(w, "update vehicle", err)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.vehicleID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "delete vehicle", err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) vehicleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "")
	case errors.Is(err, shared.ErrInvalidInput):
		httpx.Problem(w, http.StatusBadRequest, "invalid input", "name and brand are required and year must be 1900 or later")
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
	}
}
