package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/types"
	"github.com/mazikuben/construction-be/utils"
)

func setupRouter(t *testing.T, tokens *utils.TokenManager, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := NewAuthMiddleware(tokens)
	router.GET("/protected", auth.RequireRoles(roles...), func(c *gin.Context) {
		claims, found := ClaimsFrom(c)
		if !found {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router
}

func bearerFor(t *testing.T, tokens *utils.TokenManager, role string) string {
	t.Helper()
	token, err := tokens.Generate(&types.User{ID: "user-1", Username: "alice", Role: role})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return "Bearer " + token
}

func TestRequireRolesAllows(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	router := setupRouter(t, tokens, types.USER_ROLE_MANAGER)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, types.USER_ROLE_MANAGER))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRequireRolesWrongRole(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	router := setupRouter(t, tokens, types.USER_ROLE_MANAGER)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, types.USER_ROLE_WORKER))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRequireRolesMissingHeader(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	router := setupRouter(t, tokens, types.USER_ROLE_MANAGER)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRolesBadToken(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	router := setupRouter(t, tokens, types.USER_ROLE_MANAGER)

	for _, header := range []string{
		"Bearer garbage",
		"Basic abc123",
		"Bearer",
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestRequireRolesForgedToken(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	forger := utils.NewTokenManager("other-secret", time.Hour)
	router := setupRouter(t, tokens, types.USER_ROLE_MANAGER)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, forger, types.USER_ROLE_MANAGER))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRolesAnyAuthenticated(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	router := setupRouter(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, types.USER_ROLE_CLIENT))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
