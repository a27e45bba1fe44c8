package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/app/services"
	"github.com/shashiranjanraj/tienda/pkg/bind"
	"github.com/shashiranjanraj/tienda/pkg/httperr"
	"github.com/shashiranjanraj/tienda/pkg/logger"
	"github.com/shashiranjanraj/tienda/pkg/response"
)

// paramID parses the {id} route parameter. A non-numeric id can never
// match a row, so it is reported the same way as a missing one.
func paramID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// UsuarioController handles the /api/usuarios endpoints.
type UsuarioController struct {
	service *services.UsuarioService
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{service: services.NewUsuarioService(db)}
}

// Store creates a user. POST /api/usuarios
func (c *UsuarioController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.CrearUsuarioInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		httperr.Respond(w, r, httperr.BadRequest(err.Error()))
		return
	}
	if input.Nombre == "" || input.Email == "" || input.Contrasena == "" {
		httperr.Respond(w, r, httperr.MissingFields("nombre, email and contrasena are required"))
		return
	}
	if len(errs) > 0 {
		httperr.Respond(w, r, httperr.Validation(errs))
		return
	}

	usuario, err := c.service.Crear(input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Respond(w, r, httperr.Conflict("This email is already registered"))
			return
		}
		httperr.Respond(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("usuario created", "usuario_id", usuario.ID)
	response.Created(w, map[string]interface{}{
		"mensaje": "User created successfully",
		"usuario": usuario,
	})
}

// Index lists all users ordered by id. GET /api/usuarios
func (c *UsuarioController) Index(w http.ResponseWriter, r *http.Request) {
	usuarios, err := c.service.Todos()
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if usuarios == nil {
		usuarios = []models.Usuario{}
	}

	response.OK(w, map[string]interface{}{
		"total":    len(usuarios),
		"usuarios": usuarios,
	})
}

// Show returns one user. GET /api/usuarios/{id}
func (c *UsuarioController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("User not found"))
		return
	}

	usuario, err := c.service.PorID(id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}

	response.OK(w, map[string]interface{}{"usuario": usuario})
}

// Update partially updates a user. PUT /api/usuarios/{id}
func (c *UsuarioController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("User not found"))
		return
	}

	var input services.ActualizarUsuarioInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		httperr.Respond(w, r, httperr.BadRequest(err.Error()))
		return
	}
	if len(errs) > 0 {
		httperr.Respond(w, r, httperr.Validation(errs))
		return
	}

	usuario, err := c.service.Actualizar(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Respond(w, r, httperr.Conflict("This email is already registered"))
			return
		}
		httperr.Respond(w, r, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"mensaje": "User updated successfully",
		"usuario": usuario,
	})
}

// Destroy deletes a user and cascades to their orders. DELETE /api/usuarios/{id}
func (c *UsuarioController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("User not found"))
		return
	}

	if err := c.service.Eliminar(id); err != nil {
		httperr.Respond(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("usuario deleted", "usuario_id", id)
	response.Message(w, http.StatusOK, "User deleted successfully")
}

// Pedidos lists a user's orders, newest first. GET /api/usuarios/{id}/pedidos
func (c *UsuarioController) Pedidos(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("User not found"))
		return
	}

	resumen, pedidos, err := c.service.Pedidos(id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if pedidos == nil {
		pedidos = []models.Pedido{}
	}

	response.OK(w, map[string]interface{}{
		"usuario":       resumen,
		"total_pedidos": len(pedidos),
		"pedidos":       pedidos,
	})
}
