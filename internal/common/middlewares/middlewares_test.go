package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/pkg/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	rec := doRequest(t, JWTMiddleware(), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	rec := doRequest(t, JWTMiddleware(), "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	rec := doRequest(t, JWTMiddleware(), "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := utils.GenerateJWTToken("u-1", "sita", "nurse", []string{"icu"}, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
		if !ok || claims.UserID != "u-1" || claims.Role != "nurse" {
			t.Errorf("claims not propagated: %+v", claims)
		}
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"nurse can write", "nurse", []string{"nurse", "admin", "super_admin"}, http.StatusOK},
		{"admin can write", "admin", []string{"nurse", "admin", "super_admin"}, http.StatusOK},
		{"viewer is read-only", "viewer", []string{"nurse", "admin", "super_admin"}, http.StatusForbidden},
		{"nurse cannot lock", "nurse", []string{"admin", "super_admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(string(ContextKeyClaims), &utils.Claims{UserID: "u-1", Role: tt.role})

			if err := RequireRole(tt.allowed...)(okHandler)(c); err != nil {
				t.Fatalf("middleware error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := RequireRole("admin")(okHandler)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
