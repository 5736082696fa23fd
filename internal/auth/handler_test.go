package auth_test

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

	"github.com/veiculos-api/veiculos-api/internal/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRepo struct {
	admins []auth.Administrator
}

func (s *stubRepo) ListByEmail(ctx context.Context, email string) ([]auth.Administrator, error) {
	var out []auth.Administrator
	for _, adm := range s.admins {
		if adm.Email == email {
			out = append(out, adm)
		}
	}
	return out, nil
}

func (s *stubRepo) SeedAdministrator(ctx context.Context, adm auth.Administrator) (bool, error) {
	if len(s.admins) > 0 {
		return false, nil
	}
	adm.ID = 1
	s.admins = append(s.admins, adm)
	return true, nil
}

func newLoginRouter(t *testing.T, repo auth.Repository) chi.Router {
	t.Helper()
	service := auth.NewService(repo, auth.PlaintextScheme{}, nil)
	issuer := auth.NewTokenIssuer([]byte("handler-test-key"), auth.DefaultTokenTTL)
	handler := auth.NewHandler(testLogger(), service, issuer)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestLoginIssuesToken(t *testing.T) {
	router := newLoginRouter(t, &stubRepo{admins: []auth.Administrator{
		{ID: 1, Email: "adm@teste.com", Password: "123456", Role: auth.RoleAdm},
	}})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"adm@teste.com","password":"123456"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := auth.NewTokenVerifier([]byte("handler-test-key")).Verify(body.Token)
	require.NoError(t, err)
	require.Equal(t, "adm@teste.com", claims.Email)
	require.Equal(t, auth.RoleAdm, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newLoginRouter(t, &stubRepo{admins: []auth.Administrator{
		{ID: 1, Email: "adm@teste.com", Password: "123456", Role: auth.RoleAdm},
	}})

	bodies := []string{
		`{"email":"adm@teste.com","password":"wrong"}`,
		`{"email":"nobody@teste.com","password":"123456"}`,
		`{"email":"","password":""}`,
		`{}`,
		`not json`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusUnauthorized, res.Code, "body %s", body)
	}
}
