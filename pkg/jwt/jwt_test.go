package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chipaflow-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("segredo", "maria", "admin", "chipaflow", 5)
	require.NoError(t, err)

	operator, role, err := jwt.Parse("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, "maria", operator)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("segredo", "maria", "admin", "chipaflow", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("segredo", "maria", "operador", "chipaflow", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("segredo", token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "maria", "admin", "chipaflow", 5)
	assert.Error(t, err)
	_, _, err = jwt.Parse("", "x")
	assert.Error(t, err)
}
