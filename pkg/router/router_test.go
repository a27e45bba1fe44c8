package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/tienda/pkg/router"
)

func ok(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/api/usuarios/{id}", "usuarios.show", ok(http.StatusOK))

	url, err := r.URL("usuarios.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/api/usuarios/7" {
		t.Errorf("got %q, want /api/usuarios/7", url)
	}

	if _, err := r.URL("usuarios.show", nil); err == nil {
		t.Error("expected error for missing parameter")
	}
	if _, err := r.URL("does.not.exist", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixAndMethods(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	usuarios := api.Group("usuarios")
	usuarios.Post("/", "usuarios.store", ok(http.StatusCreated))
	usuarios.Put("/{id}", "usuarios.update", ok(http.StatusOK))
	usuarios.Delete("/{id}", "usuarios.destroy", ok(http.StatusOK))

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodPost, "/api/usuarios", http.StatusCreated},
		{http.MethodPut, "/api/usuarios/3", http.StatusOK},
		{http.MethodDelete, "/api/usuarios/3", http.StatusOK},
		{http.MethodGet, "/api/usuarios", http.StatusMethodNotAllowed},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.want {
			t.Errorf("%s %s: got %d, want %d", c.method, c.path, rec.Code, c.want)
		}
	}
}

func TestGroupMiddlewareOrder(t *testing.T) {
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", tag("outer"))
	api.Get("/ping", "ping", ok(http.StatusOK), tag("inner"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	got := rec.Header().Values("X-Order")
	if len(got) != 2 || got[0] != "outer" || got[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", got)
	}
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.Get("/", "root", ok(http.StatusOK))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(req.URL.Path)) //nolint:errcheck
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if rec.Body.String() != "/nope" {
		t.Errorf("body = %q, want the requested path", rec.Body.String())
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/", "root", ok(http.StatusOK))
	api := r.Group("/api")
	api.Post("/pedidos", "pedidos.store", ok(http.StatusCreated))
	api.Get("/internal", "", ok(http.StatusOK))

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("got %d named routes, want 2", len(infos))
	}

	byName := map[string]router.RouteInfo{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	if byName["pedidos.store"].Path != "/api/pedidos" {
		t.Errorf("pedidos.store path = %q", byName["pedidos.store"].Path)
	}
	if byName["pedidos.store"].Method != http.MethodPost {
		t.Errorf("pedidos.store method = %q", byName["pedidos.store"].Method)
	}
}
