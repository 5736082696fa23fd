package admins

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/platform/httpx"
	"github.com/veiculos-api/veiculos-api/internal/shared"
)

type adminService interface {
	Create(ctx context.Context, in CreateAdministratorInput) (Administrator, error)
	Get(ctx context.Context, id int64) (Administrator, error)
	List(ctx context.Context, page int) ([]Administrator, error)
}

// Handler wires HTTP endpoints for administrator management.
type Handler struct {
	logger    *slog.Logger
	service   adminService
	authmw    auth.Middleware
	validator *validator.Validate
}

// NewHandler constructs an administrators HTTP handler.
func NewHandler(logger *slog.Logger, service adminService, authmw auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, authmw: authmw, validator: validator.New()}
}

// MountRoutes registers HTTP routes. The whole collection is Adm-only.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/administradores", func(r chi.Router) {
		r.Use(h.authmw.Require(auth.PolicyAdm))
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id:[0-9]+}", h.get)
	})
}

type createRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid input", "request body is not valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid input", "email, password and role are required")
		return
	}
	adm, err := h.service.Create(r.Context(), CreateAdministratorInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			httpx.Problem(w, http.StatusBadRequest, "invalid input", "email and password are required and role must be Adm or Editor")
			return
		}
		h.logger.Error("create administrator", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
		return
	}
	httpx.JSON(w, http.StatusCreated, adm)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.List(r.Context(), shared.PageFromRequest(r))
	if err != nil {
		h.logger.Error("list administrators", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
		return
	}
	httpx.JSON(w, http.StatusOK, admins)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "")
		return
	}
	adm, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "")
			return
		}
		h.logger.Error("get administrator", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
		return
	}
	httpx.JSON(w, http.StatusOK, adm)
}
