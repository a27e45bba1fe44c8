package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/internal/server"
	"github.com/shashiranjanraj/tienda/pkg/database"
)

// newTestApp builds the full middleware + routing stack over a fresh
// in-memory SQLite database, one per test.
func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Sync(db, server.Models()...))

	return server.NewRouter(db).Handler(), db
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into a generic document.
func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	doc := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc),
			"response must be JSON, got: %s", rec.Body.String())
	}
	return rec, doc
}

// seedUsuario inserts a user directly and returns it.
func seedUsuario(t *testing.T, db *gorm.DB, nombre, email string) models.Usuario {
	t.Helper()

	usuario := models.Usuario{Nombre: nombre, Email: email, Contrasena: "$2a$10$seedseedseedseedseedse"}
	require.NoError(t, db.Create(&usuario).Error)
	return usuario
}

// seedPedido inserts an order directly and returns it.
func seedPedido(t *testing.T, db *gorm.DB, usuarioID uint, producto string, cantidad int, fecha time.Time) models.Pedido {
	t.Helper()

	pedido := models.Pedido{UsuarioID: usuarioID, Producto: producto, Cantidad: cantidad, FechaPedido: fecha}
	require.NoError(t, db.Create(&pedido).Error)
	return pedido
}
