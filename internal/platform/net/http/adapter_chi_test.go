package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func hit(r Router, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func tag(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func echo(body string) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_MiddlewareScoping(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(tag("X-Root"))
	r.Get("/", echo("home"))

	r.Group(func(gr Router) {
		if gr.Mux() == nil {
			t.Fatal("group Mux is nil")
		}
		gr.Use(tag("X-Feed"))
		gr.Get("/feed", echo("feed"))
	})

	r.Route("/api", func(sr Router) {
		sr.Use(tag("X-API"))
		sr.Get("/models", echo("models"))
	})

	rr := hit(r, stdhttp.MethodGet, "/")
	if rr.Body.String() != "home" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("GET / => %q headers=%v", rr.Body.String(), rr.Header())
	}

	rr = hit(r, stdhttp.MethodGet, "/feed")
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Feed") != "1" {
		t.Fatalf("group middleware scoping: %v", rr.Header())
	}

	rr = hit(r, stdhttp.MethodGet, "/api/models")
	if rr.Header().Get("X-API") != "1" || rr.Body.String() != "models" {
		t.Fatalf("route scoping: %q %v", rr.Body.String(), rr.Header())
	}
	// group middleware must not leak into the /api subtree
	if rr.Header().Get("X-Feed") != "" {
		t.Fatal("group middleware leaked into Route")
	}
}

func TestAdaptChi_VerbsAndHandle(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Post("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(201) })
	r.Put("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })
	r.Patch("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })
	r.Delete("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
	r.Head("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.Header().Set("X-H", "1") })
	r.Options("/m", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
	r.Handle("/std", echo("std"))

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{stdhttp.MethodPost, "/m", 201},
		{stdhttp.MethodPut, "/m", 200},
		{stdhttp.MethodPatch, "/m", 200},
		{stdhttp.MethodDelete, "/m", 204},
		{stdhttp.MethodHead, "/m", 200},
		{stdhttp.MethodOptions, "/m", 204},
		{stdhttp.MethodGet, "/std", 200},
	}
	for _, tc := range cases {
		if rr := hit(r, tc.method, tc.path); rr.Code != tc.want {
			t.Fatalf("%s %s => %d want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestAdaptChi_NestedRouteAndGroup(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Route("/api", func(sr Router) {
		if sr.Mux() == nil {
			t.Fatal("route Mux is nil")
		}
		sr.Route("/uploads", func(nr Router) {
			nr.Get("/", echo("uploads"))
		})
		sr.Group(func(gr Router) {
			gr.Get("/inner", echo("inner"))
		})
	})

	if rr := hit(r, stdhttp.MethodGet, "/api/uploads/"); rr.Body.String() != "uploads" {
		t.Fatalf("nested route: %q", rr.Body.String())
	}
	if rr := hit(r, stdhttp.MethodGet, "/api/inner"); rr.Body.String() != "inner" {
		t.Fatalf("nested group: %q", rr.Body.String())
	}
}
