package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tienda/app/models"
	"github.com/shashiranjanraj/tienda/pkg/hash"
)

func TestUsuarioJSONOmitsContrasena(t *testing.T) {
	u := models.Usuario{ID: 1, Nombre: "Ana García", Email: "ana@example.com", Contrasena: "$2a$10$hash"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "contrasena")
	assert.NotContains(t, string(raw), "$2a$10$hash")
	assert.True(t, strings.Contains(string(raw), `"nombre":"Ana García"`))
}

func TestUsuarioCheckContrasena(t *testing.T) {
	hashed, err := hash.Make("secret123")
	require.NoError(t, err)

	u := models.Usuario{Contrasena: hashed}
	assert.True(t, u.CheckContrasena("secret123"))
	assert.False(t, u.CheckContrasena("other"))
}

func TestUsuarioResumen(t *testing.T) {
	u := models.Usuario{ID: 3, Nombre: "Luis Pérez", Email: "luis@example.com", Contrasena: "irrelevant"}

	resumen := u.Resumen()
	assert.Equal(t, models.UsuarioResumen{ID: 3, Nombre: "Luis Pérez", Email: "luis@example.com"}, resumen)

	raw, err := json.Marshal(resumen)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "contrasena")
}
