package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"desi-beats/config"
	httpapi "desi-beats/menu-svc/internal/api/http"
	"desi-beats/menu-svc/internal/service"
	"desi-beats/menu-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenBackendsFallsBackToMemory(t *testing.T) {
	b := openBackends(context.Background(), config.Config{})
	defer b.close()

	if _, ok := b.repo.(*storage.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", b.repo)
	}
	if _, ok := b.sessions.(*storage.MemorySessionStore); !ok {
		t.Fatalf("expected memory sessions, got %T", b.sessions)
	}
	if b.publisher != nil || b.stats != nil {
		t.Fatalf("expected no publisher and no stats reader")
	}
}

func TestOpenBackendsUsesRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_HOST", mr.Host())
	t.Setenv("REDIS_PORT", mr.Port())

	b := openBackends(context.Background(), config.Config{RedisHost: mr.Host()})
	defer b.close()

	if _, ok := b.sessions.(*storage.RedisSessionStore); !ok {
		t.Fatalf("expected redis sessions, got %T", b.sessions)
	}
	if err := b.sessions.Create(context.Background(), "abc", time.Minute); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if !mr.Exists("session:admin:abc") {
		t.Fatalf("session key not written to redis")
	}
}

func newTestRouter() http.Handler {
	store := storage.NewMemoryStore()
	handler := httpapi.NewHandler(httpapi.Services{
		Categories: service.NewCategoryService(store),
		Orders:     service.NewOrderService(store, nil, nil),
		Auth:       service.NewAuthService(service.AdminCredentials{Username: "admin", Password: "admin"}, storage.NewMemorySessionStore(), time.Hour),
	})
	return httpapi.NewRouter(handler, httpapi.RouterConfig{AllowedOrigins: []string{"http://localhost:5000"}})
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["service"] != "menu-svc" {
		t.Fatalf("unexpected service field: %v", body["service"])
	}
}

func TestCORSAllowsConfiguredOriginWithCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "http://localhost:5000")
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5000" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials to be allowed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin must not be allowed, got %q", got)
	}
}

func TestStartServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- httpapi.StartServer(ctx, "127.0.0.1:0", newTestRouter()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
