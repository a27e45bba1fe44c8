package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/controllers"
	"github.com/shashiranjanraj/tienda/pkg/response"
	"github.com/shashiranjanraj/tienda/pkg/router"
)

const version = "1.0.0"

// RegisterAPI mounts every endpoint of the store API.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	usuarios := controllers.NewUsuarioController(db)
	pedidos := controllers.NewPedidoController(db)

	r.Get("/", "root", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]interface{}{
			"mensaje": "Tienda Online API",
			"version": version,
			"endpoints": map[string]string{
				"usuarios": "/api/usuarios",
				"pedidos":  "/api/pedidos",
			},
		})
	})

	api := r.Group("/api")

	u := api.Group("/usuarios")
	u.Post("/", "usuarios.store", usuarios.Store)
	u.Get("/", "usuarios.index", usuarios.Index)
	u.Get("/{id}", "usuarios.show", usuarios.Show)
	u.Put("/{id}", "usuarios.update", usuarios.Update)
	u.Delete("/{id}", "usuarios.destroy", usuarios.Destroy)
	u.Get("/{id}/pedidos", "usuarios.pedidos", usuarios.Pedidos)

	p := api.Group("/pedidos")
	p.Post("/", "pedidos.store", pedidos.Store)
	p.Get("/", "pedidos.index", pedidos.Index)
	p.Get("/{id}", "pedidos.show", pedidos.Show)
	p.Put("/{id}", "pedidos.update", pedidos.Update)
	p.Delete("/{id}", "pedidos.destroy", pedidos.Destroy)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.JSON(w, http.StatusNotFound, map[string]string{
			"error": "Route not found",
			"ruta":  req.URL.Path,
		})
	})
}
