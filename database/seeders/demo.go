package seeders

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/pkg/hash"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo inserts a handful of users and orders for local development.
// It is idempotent: rows are only created when the table is empty.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	contrasena, err := hash.Make("secret123")
	if err != nil {
		return err
	}

	usuarios := []models.Usuario{
		{Nombre: "Ana García", Email: "ana@example.com", Contrasena: contrasena},
		{Nombre: "Luis Pérez", Email: "luis@example.com", Contrasena: contrasena},
	}
	if err := db.Create(&usuarios).Error; err != nil {
		return err
	}

	pedidos := []models.Pedido{
		{UsuarioID: usuarios[0].ID, Producto: "Teclado mecánico", Cantidad: 1, FechaPedido: time.Now().Add(-48 * time.Hour)},
		{UsuarioID: usuarios[0].ID, Producto: "Monitor 27\"", Cantidad: 2, FechaPedido: time.Now().Add(-24 * time.Hour)},
		{UsuarioID: usuarios[1].ID, Producto: "Ratón inalámbrico", Cantidad: 1, FechaPedido: time.Now()},
	}
	return db.Create(&pedidos).Error
}
