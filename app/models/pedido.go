package models

import "time"

// Pedido is one order line belonging to a Usuario.
type Pedido struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UsuarioID   uint      `gorm:"not null;index" json:"usuario_id"`
	Producto    string    `gorm:"size:200;not null" json:"producto"`
	Cantidad    int       `gorm:"not null;default:1" json:"cantidad"`
	FechaPedido time.Time `gorm:"not null" json:"fecha_pedido"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Usuario is the owner summary, attached explicitly by the repository
	// after the order itself is read. Not a database column.
	Usuario *UsuarioResumen `gorm:"-" json:"usuario,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }
