package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/autofix/consola-taller/pkg/jwt"
)

const secreto = "secreto-de-test"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secreto, 7, "ana", "admin", "autofix-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(secreto, tok)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "autofix-test", claims.Issuer)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secreto, 7, "ana", "admin", "autofix-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err, "la firma con otro secreto debe rechazarse")
}

func TestDecodeUnverified_LeeClaimsSinSecreto(t *testing.T) {
	// La consola no conoce el secreto del backend: decodifica sin verificar
	// solo para armar el menú por rol.
	tok, err := pkgjwt.Generate(secreto, 7, "ana", "mecanico", "autofix-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, "mecanico", claims.Role)
	assert.Equal(t, "ana", claims.Username)
}

func TestDecodeUnverified_TokenMalFormado(t *testing.T) {
	_, err := pkgjwt.DecodeUnverified("no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 7, "ana", "admin", "iss", 60)
	assert.Error(t, err)
}
