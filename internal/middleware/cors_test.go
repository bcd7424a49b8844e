package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsDo(mw *CORSMiddleware, method, origin string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/pastries", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	mw.Handler(next).ServeHTTP(rec, req)
	return rec
}

func TestAllowAllEchoesOrigin(t *testing.T) {
	mw := NewCORSMiddleware([]string{"*"})

	rec := corsDo(mw, http.MethodGet, "https://shop.example")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestAllowAllWithoutOrigin(t *testing.T) {
	mw := NewCORSMiddleware([]string{"*"})

	rec := corsDo(mw, http.MethodGet, "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightShortCircuits(t *testing.T) {
	mw := NewCORSMiddleware([]string{"*"})

	rec := corsDo(mw, http.MethodOptions, "https://shop.example")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDisallowedOriginGetsNoHeaders(t *testing.T) {
	mw := NewCORSMiddleware([]string{"https://shop.example"})

	rec := corsDo(mw, http.MethodGet, "https://evil.example")
	assert.Equal(t, http.StatusOK, rec.Code, "request still reaches the handler")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAllowedOriginList(t *testing.T) {
	mw := NewCORSMiddleware([]string{"https://shop.example"})

	rec := corsDo(mw, http.MethodGet, "https://shop.example")
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
