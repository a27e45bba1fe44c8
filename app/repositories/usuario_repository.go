package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/pkg/metrics"
)

// UsuarioRepository handles database operations for Usuario.
type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *UsuarioRepository) WithTx(tx *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: tx}
}

// FindByID looks up a user by primary key.
func (r *UsuarioRepository) FindByID(id uint) (models.Usuario, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var usuario models.Usuario
	err := r.db.First(&usuario, id).Error
	return usuario, err
}

// All returns every user ordered by id ascending.
func (r *UsuarioRepository) All() ([]models.Usuario, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var usuarios []models.Usuario
	err := r.db.Order("id ASC").Find(&usuarios).Error
	return usuarios, err
}

// EmailTaken reports whether another user (excludeID excluded) already
// owns the email. The unique index on the column remains the final
// arbiter under concurrency; this read gives a clean 409 on the common
// path.
func (r *UsuarioRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	err := r.db.Model(&models.Usuario{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new user record.
func (r *UsuarioRepository) Create(usuario *models.Usuario) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(usuario).Error
}

// UpdateColumns applies a partial update to the given user row.
func (r *UsuarioRepository) UpdateColumns(usuario *models.Usuario, columns map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Model(usuario).Updates(columns).Error
}

// Delete removes the user and all of their orders in one transaction.
// The orders are deleted explicitly so the cascade holds even on engines
// where the schema-level foreign key is not enforced.
func (r *UsuarioRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", id).Delete(&models.Pedido{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Usuario{}, id).Error
	})
}

// PedidosOf returns the user's orders, newest order date first.
func (r *UsuarioRepository) PedidosOf(id uint) ([]models.Pedido, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var pedidos []models.Pedido
	err := r.db.Where("usuario_id = ?", id).Order("fecha_pedido DESC").Find(&pedidos).Error
	return pedidos, err
}
