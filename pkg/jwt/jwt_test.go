package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-allocation-api/pkg/jwt"
)

// Generar y validar un token devuelve el mismo UserID.
func TestJWT_GenerarYValidar(t *testing.T) {
	tok, err := jwt.Generate("secreto", "user-1", "issuer", 60)
	require.NoError(t, err)

	userID, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

// Secret vacío se rechaza en ambas direcciones.
func TestJWT_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "issuer", 60)
	assert.Error(t, err)

	_, err = jwt.Parse("", "cualquier-token")
	assert.Error(t, err)
}

// Un token firmado con otro secret no valida.
func TestJWT_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secreto-a", "user-1", "issuer", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto-b", tok)
	assert.Error(t, err)
}
