package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secreto = "secreto-de-prueba"

func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := Generate(secreto, "user-1", "tenant-1", "cliente", "Cliente Demo", "customer-1", "pedidos-api", 60)
	require.NoError(t, err)

	claims, err := Parse(secreto, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "cliente", claims.Role)
	assert.Equal(t, "Cliente Demo", claims.Name)
	assert.Equal(t, "customer-1", claims.CustomerID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParse_SecretoIncorrectoFalla(t *testing.T) {
	tok, err := Generate(secreto, "user-1", "tenant-1", "admin", "Admin", "", "pedidos-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpiradoFalla(t *testing.T) {
	tok, err := Generate(secreto, "user-1", "tenant-1", "admin", "Admin", "", "pedidos-api", -1)
	require.NoError(t, err)

	_, err = Parse(secreto, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretoVacioFalla(t *testing.T) {
	_, err := Generate("", "user-1", "tenant-1", "admin", "Admin", "", "pedidos-api", 60)
	assert.Error(t, err)
}
