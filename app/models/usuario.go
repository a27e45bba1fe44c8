package models

import (
	"time"

	"github.com/shashiranjanraj/tienda/pkg/hash"
)

// Usuario is a store customer. The password column only ever holds a
// bcrypt hash, and the json:"-" tag keeps it out of every serialized
// representation regardless of which handler produced the value.
type Usuario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nombre     string    `gorm:"size:100;not null" json:"nombre"`
	Email      string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Contrasena string    `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Pedidos []Pedido `gorm:"foreignKey:UsuarioID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

// CheckContrasena reports whether the candidate plaintext matches the
// stored hash.
func (u *Usuario) CheckContrasena(plain string) bool {
	return hash.Check(u.Contrasena, plain)
}

// UsuarioResumen is the minimal owner document attached to pedidos.
type UsuarioResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// Resumen returns the {id, nombre, email} summary of the user.
func (u *Usuario) Resumen() UsuarioResumen {
	return UsuarioResumen{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}
