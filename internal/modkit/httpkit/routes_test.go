package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	phttp "sensutv/internal/platform/net/http"
)

func TestMountUnder_RoutesAndMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	root := phttp.AdaptChi(mux)

	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "catalog")
			next.ServeHTTP(w, r)
		})
	}

	MountUnder(root, "/api", []func(http.Handler) http.Handler{mark}, func(sub Router) {
		sub.Get("/models", phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.OK(nil)
		}))
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/models", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("mounted route: %d", rr.Code)
	}
	if rr.Header().Get("X-Module") != "catalog" {
		t.Fatal("module middleware did not wrap the subrouter")
	}
}

func TestMountUnder_MiddlewareScopedToPrefix(t *testing.T) {
	mux := chi.NewRouter()
	root := phttp.AdaptChi(mux)

	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scoped", "yes")
			next.ServeHTTP(w, r)
		})
	}

	root.Get("/healthz", phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(nil)
	}))
	MountUnder(root, "/feed", []func(http.Handler) http.Handler{mark}, func(sub Router) {
		sub.Get("/", phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.OK(nil)
		}))
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Header().Get("X-Scoped") != "" {
		t.Fatal("prefix middleware leaked onto sibling route")
	}
}

func TestMountUnder_EmptyMiddlewareSlice(t *testing.T) {
	mux := chi.NewRouter()
	MountUnder(phttp.AdaptChi(mux), "/api", nil, func(sub Router) {
		sub.Get("/uploads", phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.OK(map[string]int{"count": 0})
		}))
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/uploads", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("route without middleware: %d", rr.Code)
	}
}
