package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/pkg/metrics"
)

// PedidoRepository handles database operations for Pedido. Owner
// summaries are attached with an explicit second read rather than an
// ORM-level eager load, so the document shape is visible right here.
type PedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) *PedidoRepository {
	return &PedidoRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *PedidoRepository) WithTx(tx *gorm.DB) *PedidoRepository {
	return &PedidoRepository{db: tx}
}

// FindByID looks up an order by primary key, without the owner attached.
func (r *PedidoRepository) FindByID(id uint) (models.Pedido, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var pedido models.Pedido
	err := r.db.First(&pedido, id).Error
	return pedido, err
}

// FindWithUsuario returns one order with its owner's summary attached.
func (r *PedidoRepository) FindWithUsuario(id uint) (models.Pedido, error) {
	pedido, err := r.FindByID(id)
	if err != nil {
		return models.Pedido{}, err
	}

	defer metrics.ObserveDBQuery("select", time.Now())

	var usuario models.Usuario
	if err := r.db.Select("id", "nombre", "email").First(&usuario, pedido.UsuarioID).Error; err != nil {
		return models.Pedido{}, err
	}

	resumen := usuario.Resumen()
	pedido.Usuario = &resumen
	return pedido, nil
}

// AllWithUsuarios returns every order, newest order date first, each with
// its owner's summary attached. Owners are fetched in a single second
// query and joined in memory.
func (r *PedidoRepository) AllWithUsuarios() ([]models.Pedido, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var pedidos []models.Pedido
	if err := r.db.Order("fecha_pedido DESC").Find(&pedidos).Error; err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return pedidos, nil
	}

	ids := make([]uint, 0, len(pedidos))
	seen := make(map[uint]bool, len(pedidos))
	for _, p := range pedidos {
		if !seen[p.UsuarioID] {
			seen[p.UsuarioID] = true
			ids = append(ids, p.UsuarioID)
		}
	}

	var usuarios []models.Usuario
	if err := r.db.Select("id", "nombre", "email").Where("id IN ?", ids).Find(&usuarios).Error; err != nil {
		return nil, err
	}

	resumenes := make(map[uint]models.UsuarioResumen, len(usuarios))
	for _, u := range usuarios {
		resumenes[u.ID] = u.Resumen()
	}

	for i := range pedidos {
		if resumen, ok := resumenes[pedidos[i].UsuarioID]; ok {
			attached := resumen
			pedidos[i].Usuario = &attached
		}
	}

	return pedidos, nil
}

// Create persists a new order record.
func (r *PedidoRepository) Create(pedido *models.Pedido) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(pedido).Error
}

// UpdateColumns applies a partial update to the given order row.
func (r *PedidoRepository) UpdateColumns(pedido *models.Pedido, columns map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Model(pedido).Updates(columns).Error
}

// Delete removes the order.
func (r *PedidoRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Pedido{}, id).Error
}
