package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/app/repositories"
	"github.com/shashiranjanraj/tienda/pkg/httperr"
)

// CrearPedidoInput is the request body for order creation. Cantidad
// defaults to 1 when absent.
type CrearPedidoInput struct {
	UsuarioID uint   `json:"usuario_id" validate:"required,gte=1"`
	Producto  string `json:"producto"   validate:"required,between=2,200"`
	Cantidad  *int   `json:"cantidad"   validate:"nullable,gte=1"`
}

// ActualizarPedidoInput is the request body for a partial order update.
type ActualizarPedidoInput struct {
	Producto *string `json:"producto" validate:"nullable,between=2,200"`
	Cantidad *int    `json:"cantidad" validate:"nullable,gte=1"`
}

// PedidoService implements the order operations.
type PedidoService struct {
	db       *gorm.DB
	pedidos  *repositories.PedidoRepository
	usuarios *repositories.UsuarioRepository
}

func NewPedidoService(db *gorm.DB) *PedidoService {
	return &PedidoService{
		db:       db,
		pedidos:  repositories.NewPedidoRepository(db),
		usuarios: repositories.NewUsuarioRepository(db),
	}
}

// Crear inserts a new order inside a single transaction: the referenced
// user must exist at insert time, so a user deleted concurrently between
// check and insert fails the whole operation and rolls back. On success
// the order is re-read with the owner summary attached.
func (s *PedidoService) Crear(input CrearPedidoInput) (models.Pedido, error) {
	cantidad := 1
	if input.Cantidad != nil {
		cantidad = *input.Cantidad
	}

	var created models.Pedido
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.usuarios.WithTx(tx).FindByID(input.UsuarioID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("The specified user does not exist")
			}
			return err
		}

		created = models.Pedido{
			UsuarioID:   input.UsuarioID,
			Producto:    input.Producto,
			Cantidad:    cantidad,
			FechaPedido: time.Now(),
		}
		return s.pedidos.WithTx(tx).Create(&created)
	})
	if err != nil {
		return models.Pedido{}, err
	}

	return s.pedidos.FindWithUsuario(created.ID)
}

// Todos returns every order, newest order date first, owners attached.
func (s *PedidoService) Todos() ([]models.Pedido, error) {
	return s.pedidos.AllWithUsuarios()
}

// PorID returns one order with its owner summary, or a 404 error.
func (s *PedidoService) PorID(id uint) (models.Pedido, error) {
	pedido, err := s.pedidos.FindWithUsuario(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pedido{}, httperr.NotFound("Order not found")
		}
		return models.Pedido{}, err
	}
	return pedido, nil
}

// Actualizar applies the supplied subset of {producto, cantidad} and
// returns the order re-read with its owner summary.
func (s *PedidoService) Actualizar(id uint, input ActualizarPedidoInput) (models.Pedido, error) {
	pedido, err := s.pedidos.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pedido{}, httperr.NotFound("Order not found")
		}
		return models.Pedido{}, err
	}

	columns := map[string]interface{}{}
	if input.Producto != nil {
		columns["producto"] = *input.Producto
	}
	if input.Cantidad != nil {
		columns["cantidad"] = *input.Cantidad
	}

	if len(columns) > 0 {
		if err := s.pedidos.UpdateColumns(&pedido, columns); err != nil {
			return models.Pedido{}, err
		}
	}

	return s.pedidos.FindWithUsuario(id)
}

// Eliminar removes the order.
func (s *PedidoService) Eliminar(id uint) error {
	if _, err := s.pedidos.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Order not found")
		}
		return err
	}
	return s.pedidos.Delete(id)
}
