package admins_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/veiculos-api/veiculos-api/internal/admins"
	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/shared"
)

var handlerSecret = []byte("admins-handler-test-key")

type memoryAdminRepo struct {
	records []admins.Administrator
	nextID  int64
}

func (r *memoryAdminRepo) Create(ctx context.Context, email, password string, role auth.Role) (admins.Administrator, error) {
	r.nextID++
	adm := admins.Administrator{ID: r.nextID, Email: email, Role: role}
	r.records = append(r.records, adm)
	return adm, nil
}

func (r *memoryAdminRepo) Get(ctx context.Context, id int64) (admins.Administrator, error) {
	for _, adm := range r.records {
		if adm.ID == id {
			return adm, nil
		}
	}
	return admins.Administrator{}, shared.ErrNotFound
}

func (r *memoryAdminRepo) List(ctx context.Context, limit, offset int) ([]admins.Administrator, error) {
	if offset >= len(r.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.records) {
		end = len(r.records)
	}
	return r.records[offset:end], nil
}

func newRouter(t *testing.T, repo admins.RepositoryPort) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authmw := auth.Middleware{Verifier: auth.NewTokenVerifier(handlerSecret)}
	handler := admins.NewHandler(logger, admins.NewService(repo, nil), authmw)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func tokenFor(t *testing.T, role auth.Role) string {
	t.Helper()
	issuer := auth.NewTokenIssuer(handlerSecret, auth.DefaultTokenTTL)
	token, err := issuer.Issue(auth.Administrator{Email: "adm@teste.com", Role: role})
	require.NoError(t, err)
	return token
}

func doRequest(router chi.Router, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestCreateAdministratorEndpoint(t *testing.T) {
	router := newRouter(t, &memoryAdminRepo{})
	token := tokenFor(t, auth.RoleAdm)

	res := doRequest(router, http.MethodPost, "/administradores", token,
		`{"email":"novo@teste.com","password":"secret","role":"editor"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var created struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "novo@teste.com", created.Email)
	require.Equal(t, "Editor", created.Role)
	require.NotContains(t, res.Body.String(), "password")
}

func TestCreateAdministratorRequiresAllFields(t *testing.T) {
	repo := &memoryAdminRepo{}
	router := newRouter(t, repo)
	token := tokenFor(t, auth.RoleAdm)

	for _, body := range []string{
		`{"email":"","password":"secret","role":"Adm"}`,
		`{"email":"novo@teste.com","password":"","role":"Adm"}`,
		`{"email":"novo@teste.com","password":"secret","role":""}`,
		`{"password":"secret","role":"Adm"}`,
	} {
		res := doRequest(router, http.MethodPost, "/administradores", token, body)
		require.Equal(t, http.StatusBadRequest, res.Code, "body %s", body)
	}
	require.Empty(t, repo.records, "no record is written for a rejected body")
}

func TestCreateAdministratorInvalidRole(t *testing.T) {
	router := newRouter(t, &memoryAdminRepo{})
	token := tokenFor(t, auth.RoleAdm)

	res := doRequest(router, http.MethodPost, "/administradores", token,
		`{"email":"novo@teste.com","password":"secret","role":"root"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestAdministratorRoutesRequireAdm(t *testing.T) {
	router := newRouter(t, &memoryAdminRepo{})
	editorToken := tokenFor(t, auth.RoleEditor)

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/administradores"},
		{http.MethodGet, "/administradores"},
		{http.MethodGet, "/administradores/1"},
	} {
		res := doRequest(router, tc.method, tc.target, editorToken, "")
		require.Equal(t, http.StatusUnauthorized, res.Code, "%s %s with editor token", tc.method, tc.target)

		res = doRequest(router, tc.method, tc.target, "", "")
		require.Equal(t, http.StatusUnauthorized, res.Code, "%s %s without token", tc.method, tc.target)
	}
}

func TestGetAdministratorEndpoint(t *testing.T) {
	repo := &memoryAdminRepo{}
	router := newRouter(t, repo)
	token := tokenFor(t, auth.RoleAdm)

	doRequest(router, http.MethodPost, "/administradores", token,
		`{"email":"novo@teste.com","password":"secret","role":"Adm"}`)

	res := doRequest(router, http.MethodGet, "/administradores/1", token, "")
	require.Equal(t, http.StatusOK, res.Code)

	res = doRequest(router, http.MethodGet, "/administradores/99", token, "")
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestListAdministratorsEndpoint(t *testing.T) {
	repo := &memoryAdminRepo{}
	router := newRouter(t, repo)
	token := tokenFor(t, auth.RoleAdm)

	for i := 0; i < 12; i++ {
		res := doRequest(router, http.MethodPost, "/administradores", token,
			`{"email":"a@teste.com","password":"secret","role":"Adm"}`)
		require.Equal(t, http.StatusCreated, res.Code)
	}

	res := doRequest(router, http.MethodGet, "/administradores?pagina=2", token, "")
	require.Equal(t, http.StatusOK, res.Code)
	var page []admins.Administrator
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &page))
	require.Len(t, page, 2)
	require.Equal(t, int64(11), page[0].ID)
}
