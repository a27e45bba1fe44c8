package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/app/services"
	"github.com/shashiranjanraj/tienda/pkg/bind"
	"github.com/shashiranjanraj/tienda/pkg/httperr"
	"github.com/shashiranjanraj/tienda/pkg/logger"
	"github.com/shashiranjanraj/tienda/pkg/response"
)

// PedidoController handles the /api/pedidos endpoints.
type PedidoController struct {
	service *services.PedidoService
}

func NewPedidoController(db *gorm.DB) *PedidoController {
	return &PedidoController{service: services.NewPedidoService(db)}
}

// Store creates an order inside a transaction. POST /api/pedidos
func (c *PedidoController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.CrearPedidoInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		httperr.Respond(w, r, httperr.BadRequest(err.Error()))
		return
	}
	if input.UsuarioID == 0 || input.Producto == "" {
		httperr.Respond(w, r, httperr.MissingFields("usuario_id and producto are required"))
		return
	}
	if len(errs) > 0 {
		httperr.Respond(w, r, httperr.Validation(errs))
		return
	}

	pedido, err := c.service.Crear(input)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("pedido created",
		"pedido_id", pedido.ID, "usuario_id", pedido.UsuarioID)
	response.Created(w, map[string]interface{}{
		"mensaje": "Order created successfully",
		"pedido":  pedido,
	})
}

// Index lists all orders, newest order date first. GET /api/pedidos
func (c *PedidoController) Index(w http.ResponseWriter, r *http.Request) {
	pedidos, err := c.service.Todos()
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}
	if pedidos == nil {
		pedidos = []models.Pedido{}
	}

	response.OK(w, map[string]interface{}{
		"total":   len(pedidos),
		"pedidos": pedidos,
	})
}

// Show returns one order with its owner summary. GET /api/pedidos/{id}
func (c *PedidoController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("Order not found"))
		return
	}

	pedido, err := c.service.PorID(id)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}

	response.OK(w, map[string]interface{}{"pedido": pedido})
}

// Update partially updates an order. PUT /api/pedidos/{id}
func (c *PedidoController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("Order not found"))
		return
	}

	var input services.ActualizarPedidoInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		httperr.Respond(w, r, httperr.BadRequest(err.Error()))
		return
	}
	if len(errs) > 0 {
		httperr.Respond(w, r, httperr.Validation(errs))
		return
	}

	pedido, err := c.service.Actualizar(id, input)
	if err != nil {
		httperr.Respond(w, r, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"mensaje": "Order updated successfully",
		"pedido":  pedido,
	})
}

// Destroy deletes an order. DELETE /api/pedidos/{id}
func (c *PedidoController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		httperr.Respond(w, r, httperr.NotFound("Order not found"))
		return
	}

	if err := c.service.Eliminar(id); err != nil {
		httperr.Respond(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("pedido deleted", "pedido_id", id)
	response.Message(w, http.StatusOK, "Order deleted successfully")
}
