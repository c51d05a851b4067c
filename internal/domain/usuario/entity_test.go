package usuario

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNuevoUsuarioAsumeRolCliente(t *testing.T) {
	u, err := NuevoUsuario("Ana", "Gómez", "ana@correo.com", "", "", nil)
	require.NoError(t, err)
	require.Equal(t, []Rol{RolCliente}, u.Roles)
}

func TestNuevoUsuarioRechazaRolDesconocido(t *testing.T) {
	_, err := NuevoUsuario("Ana", "", "", "", "", []Rol{"Administrador"})
	require.ErrorIs(t, err, ErrRolInvalido)
}

func TestNombreParaMostrar(t *testing.T) {
	casos := []struct {
		nombre   string
		usuario  Usuario
		esperado string
	}{
		{"nombre y apellido", Usuario{Nombre: "Ana", Apellido: "Gómez"}, "Ana Gómez"},
		{"solo nombre", Usuario{Nombre: "Ana"}, "Ana"},
		{"solo apellido", Usuario{Apellido: "Gómez"}, "Gómez"},
		{"cae al correo", Usuario{Correo: "ana@correo.com"}, "ana@correo.com"},
		{"etiqueta fija", Usuario{}, NombreDesconocido},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			require.Equal(t, caso.esperado, caso.usuario.NombreParaMostrar())
		})
	}
}
