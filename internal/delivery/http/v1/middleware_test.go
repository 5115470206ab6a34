package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hrmanager/internal/services"
)

const (
	testIssuer   = "hrmanager-test"
	testTokenTTL = time.Hour
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func newTestRouter(tokens services.TokenService) *gin.Engine {
	handler := New(zerolog.Nop(), tokens, nil, nil, nil, nil)

	echoClaims := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee_id": c.GetString(employeeIDCtxKey),
			"email":       c.GetString(employeeEmailCtxKey),
			"is_admin":    c.GetBool(isAdminCtxKey),
		})
	}

	router := gin.New()
	router.GET("/protected", handler.HandleAuthMiddleware, echoClaims)
	router.GET("/admin", handler.HandleAdminMiddleware, echoClaims)
	return router
}

func issueTestToken(t *testing.T, isAdmin bool) string {
	t.Helper()

	tokens := services.NewTokenService(testIssuer, testSigningKey, testTokenTTL)
	token, _, err := tokens.Issue(services.IssueTokenParams{
		EmployeeID: "e1",
		Email:      "jane@example.com",
		IsAdmin:    isAdmin,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	rec := doRequest(router, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"authorization header required"}`, rec.Body.String())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	for _, header := range []string{"Bearer", "Basic abc", "Token xyz"} {
		rec := doRequest(router, "/protected", header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.JSONEq(t, `{"error":"invalid authorization header"}`, rec.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	rec := doRequest(router, "/protected", "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	expired := services.NewTokenService(testIssuer, testSigningKey, -time.Minute)
	token, _, err := expired.Issue(services.IssueTokenParams{
		EmployeeID: "e1",
		Email:      "jane@example.com",
	})
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
}

func TestAuthMiddleware_ValidTokenAttachesClaims(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	rec := doRequest(router, "/protected", "Bearer "+issueTestToken(t, true))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "e1", got["employee_id"])
	require.Equal(t, "jane@example.com", got["email"])
	require.Equal(t, true, got["is_admin"])
}

func TestAdminMiddleware_NonAdminForbidden(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	token := issueTestToken(t, false)

	// The same token passes the plain auth gate.
	rec := doRequest(router, "/protected", "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, "/admin", "Bearer "+token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"admin privileges required"}`, rec.Body.String())
}

func TestAdminMiddleware_AdminAllowed(t *testing.T) {
	router := newTestRouter(services.NewTokenService(testIssuer, testSigningKey, testTokenTTL))

	rec := doRequest(router, "/admin", "Bearer "+issueTestToken(t, true))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, true, got["is_admin"])
}
