package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/catalog_service/internal/tokens"
)

var testSecret = []byte("test-jwt-secret")

func newGatedEcho(requiredRole string) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, JWT(testSecret), RequireRole(requiredRole))
	return e
}

func doRequest(t *testing.T, e *echo.Echo, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	e := newGatedEcho("employee")

	token, err := tokens.SignAccessToken(1, "alice", "employee", testSecret)
	require.NoError(t, err)

	rec := doRequest(t, e, token)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_ExactMatchOnly(t *testing.T) {
	// a manager token is not accepted where employee is required
	e := newGatedEcho("employee")

	token, err := tokens.SignAccessToken(1, "alice", "manager", testSecret)
	require.NoError(t, err)

	rec := doRequest(t, e, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_LowerRoleDenied(t *testing.T) {
	e := newGatedEcho("manager")

	token, err := tokens.SignAccessToken(1, "bob", "customer", testSecret)
	require.NoError(t, err)

	rec := doRequest(t, e, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MissingToken(t *testing.T) {
	e := newGatedEcho("employee")

	rec := doRequest(t, e, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireRole_GarbageToken(t *testing.T) {
	e := newGatedEcho("employee")

	rec := doRequest(t, e, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_WrongSecret(t *testing.T) {
	e := newGatedEcho("employee")

	token, err := tokens.SignAccessToken(1, "alice", "employee", []byte("other-secret"))
	require.NoError(t, err)

	rec := doRequest(t, e, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
