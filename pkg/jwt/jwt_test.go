package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerarYValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerarToken("admin@panel.local", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin@panel.local", claims.Correo)
}

func TestValidarTokenExpirado(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	token, err := GenerarToken("admin@panel.local", -time.Minute)
	require.NoError(t, err)

	_, err = ValidarToken(token)
	require.ErrorIs(t, err, ErrTokenExpirado)
}

func TestValidarTokenConOtroSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-a")
	token, err := GenerarToken("admin@panel.local", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secreto-b")
	_, err = ValidarToken(token)
	require.ErrorIs(t, err, ErrTokenInvalido)
}

func TestSecretoNoConfigurado(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerarToken("admin@panel.local", time.Hour)
	require.ErrorIs(t, err, ErrSecretoNoConfigurado)
}
