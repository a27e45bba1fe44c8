package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tienda/app/models"
)

func TestCrearUsuario(t *testing.T) {
	h, db := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre":     "Ana García",
		"email":      "ana@example.com",
		"contrasena": "secret123",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	usuario := doc["usuario"].(map[string]interface{})
	assert.Equal(t, "Ana García", usuario["nombre"])
	assert.Equal(t, "ana@example.com", usuario["email"])
	assert.NotContains(t, usuario, "contrasena")
	assert.NotContains(t, rec.Body.String(), "secret123")

	// The stored value is a hash, never the plaintext.
	var stored models.Usuario
	require.NoError(t, db.First(&stored, uint(usuario["id"].(float64))).Error)
	assert.NotEqual(t, "secret123", stored.Contrasena)
	assert.True(t, stored.CheckContrasena("secret123"))
}

func TestCrearUsuarioCamposFaltantes(t *testing.T) {
	h, _ := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre": "Ana",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, doc["error"])
}

func TestCrearUsuarioValidacion(t *testing.T) {
	h, _ := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre":     "A", // too short
		"email":      "not-an-email",
		"contrasena": "123", // too short
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detalles := doc["detalles"].([]interface{})
	assert.Len(t, detalles, 3, "one message per offending field")
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	h, db := newTestApp(t)
	seedUsuario(t, db, "Ana García", "ana@example.com")

	rec, doc := doJSON(t, h, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre":     "Otra Persona",
		"email":      "ana@example.com",
		"contrasena": "different456",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, doc["error"])
}

func TestListarUsuarios(t *testing.T) {
	h, db := newTestApp(t)
	seedUsuario(t, db, "Ana García", "ana@example.com")
	seedUsuario(t, db, "Luis Pérez", "luis@example.com")

	rec, doc := doJSON(t, h, http.MethodGet, "/api/usuarios", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, doc["total"])

	usuarios := doc["usuarios"].([]interface{})
	require.Len(t, usuarios, 2)
	first := usuarios[0].(map[string]interface{})
	second := usuarios[1].(map[string]interface{})
	assert.Less(t, first["id"].(float64), second["id"].(float64), "ordered by id ascending")
	assert.NotContains(t, first, "contrasena")
}

func TestObtenerUsuarioPorID(t *testing.T) {
	h, db := newTestApp(t)
	usuario := seedUsuario(t, db, "Ana García", "ana@example.com")

	rec, doc := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/usuarios/%d", usuario.ID), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := doc["usuario"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", got["email"])
	assert.NotContains(t, got, "contrasena")
}

func TestObtenerUsuarioNoExiste(t *testing.T) {
	h, _ := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodGet, "/api/usuarios/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, doc["error"])
}

func TestActualizarUsuarioParcial(t *testing.T) {
	h, db := newTestApp(t)
	usuario := seedUsuario(t, db, "Ana García", "ana@example.com")

	rec, doc := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", usuario.ID),
		map[string]interface{}{"nombre": "Ana María García"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := doc["usuario"].(map[string]interface{})
	assert.Equal(t, "Ana María García", got["nombre"])
	assert.Equal(t, "ana@example.com", got["email"], "unsupplied fields unchanged")
	assert.NotContains(t, got, "contrasena", "update response must not leak the hash")
}

func TestActualizarUsuarioContrasenaSeRehashea(t *testing.T) {
	h, db := newTestApp(t)

	_, doc := doJSON(t, h, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre": "Ana García", "email": "ana@example.com", "contrasena": "secret123",
	})
	id := uint(doc["usuario"].(map[string]interface{})["id"].(float64))

	var before models.Usuario
	require.NoError(t, db.First(&before, id).Error)

	rec, _ := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", id),
		map[string]interface{}{"contrasena": "newsecret456"})
	require.Equal(t, http.StatusOK, rec.Code)

	var after models.Usuario
	require.NoError(t, db.First(&after, id).Error)
	assert.NotEqual(t, before.Contrasena, after.Contrasena)
	assert.True(t, after.CheckContrasena("newsecret456"))
	assert.False(t, after.CheckContrasena("secret123"))
}

func TestActualizarUsuarioEmailDuplicado(t *testing.T) {
	h, db := newTestApp(t)
	seedUsuario(t, db, "Ana García", "ana@example.com")
	otro := seedUsuario(t, db, "Luis Pérez", "luis@example.com")

	rec, _ := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", otro.ID),
		map[string]interface{}{"email": "ana@example.com"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestActualizarUsuarioNoExiste(t *testing.T) {
	h, _ := newTestApp(t)

	rec, _ := doJSON(t, h, http.MethodPut, "/api/usuarios/999",
		map[string]interface{}{"nombre": "Nadie"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEliminarUsuarioCascada(t *testing.T) {
	h, db := newTestApp(t)
	usuario := seedUsuario(t, db, "Ana García", "ana@example.com")
	now := time.Now()
	ids := []uint{
		seedPedido(t, db, usuario.ID, "Teclado", 1, now).ID,
		seedPedido(t, db, usuario.ID, "Monitor", 2, now).ID,
		seedPedido(t, db, usuario.ID, "Ratón", 1, now).ID,
	}

	rec, _ := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", usuario.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/usuarios/%d/pedidos", usuario.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "user is gone")

	var count int64
	require.NoError(t, db.Model(&models.Pedido{}).Where("usuario_id = ?", usuario.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count, "orders cascade-deleted")

	for _, id := range ids {
		rec, _ = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/pedidos/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestEliminarUsuarioNoExiste(t *testing.T) {
	h, _ := newTestApp(t)

	rec, _ := doJSON(t, h, http.MethodDelete, "/api/usuarios/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPedidosDeUsuario(t *testing.T) {
	h, db := newTestApp(t)
	usuario := seedUsuario(t, db, "Ana García", "ana@example.com")
	now := time.Now()
	seedPedido(t, db, usuario.ID, "Viejo", 1, now.Add(-48*time.Hour))
	seedPedido(t, db, usuario.ID, "Nuevo", 1, now)

	rec, doc := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/usuarios/%d/pedidos", usuario.ID), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, doc["total_pedidos"])

	resumen := doc["usuario"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", resumen["email"])
	assert.NotContains(t, resumen, "contrasena")

	pedidos := doc["pedidos"].([]interface{})
	require.Len(t, pedidos, 2)
	assert.Equal(t, "Nuevo", pedidos[0].(map[string]interface{})["producto"], "newest order date first")
	assert.Equal(t, "Viejo", pedidos[1].(map[string]interface{})["producto"])
}

func TestRootDescriptor(t *testing.T) {
	h, _ := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, doc["mensaje"])
	endpoints := doc["endpoints"].(map[string]interface{})
	assert.Equal(t, "/api/usuarios", endpoints["usuarios"])
	assert.Equal(t, "/api/pedidos", endpoints["pedidos"])
}

func TestRutaNoEncontrada(t *testing.T) {
	h, _ := newTestApp(t)

	rec, doc := doJSON(t, h, http.MethodGet, "/api/nada", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/api/nada", doc["ruta"], "unmatched path echoed back")
}
