package factura

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOrdenarPorFechaDescendente(t *testing.T) {
	d1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	facturas := []*Listada{
		{Factura: Factura{ID: "B", Fecha: d2}},
		{Factura: Factura{ID: "X"}}, // sin fecha legible
		{Factura: Factura{ID: "C", Fecha: d3}},
		{Factura: Factura{ID: "A", Fecha: d1}},
	}

	OrdenarPorFecha(facturas)

	ids := []string{facturas[0].ID, facturas[1].ID, facturas[2].ID, facturas[3].ID}
	require.Equal(t, []string{"C", "B", "A", "X"}, ids)
}

func TestGenerarID(t *testing.T) {
	ahora := time.UnixMilli(1745350000000)
	require.Equal(t, "FAC-1745350000000", GenerarID(ahora))
}

func TestDetallesValidos(t *testing.T) {
	detalles := []NuevoDetalle{
		{ProductoID: "p-1", Cantidad: 3, PrecioUnitario: 150000, Subtotal: 450000},
		{ProductoID: "", Cantidad: 1, PrecioUnitario: 100},      // sin producto
		{ProductoID: "p-2", Cantidad: 0, PrecioUnitario: 100},   // cantidad no positiva
		{ProductoID: "p-3", Cantidad: 2, PrecioUnitario: 0},     // precio no positivo
		{ProductoID: "p-4", Cantidad: 1, PrecioUnitario: 50000, Subtotal: 50000},
	}

	validos := DetallesValidos(detalles)
	require.Len(t, validos, 2)
	require.Equal(t, "p-1", validos[0].ProductoID)
	require.Equal(t, "p-4", validos[1].ProductoID)
}

func TestNuevaValidar(t *testing.T) {
	base := func() *Nueva {
		return &Nueva{
			Estado:       EstadoPendiente,
			Fecha:        time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC),
			Total:        450000,
			ClienteID:    "u-1",
			VendedorID:   "u-2",
			MetodoPagoID: "MP-01",
			Detalles:     []NuevoDetalle{{ProductoID: "p-1", Cantidad: 3, PrecioUnitario: 150000}},
		}
	}

	require.NoError(t, base().Validar())

	sinDetalles := base()
	sinDetalles.Detalles = nil
	require.ErrorIs(t, sinDetalles.Validar(), ErrDatosFaltantes)

	sinValidos := base()
	sinValidos.Detalles = []NuevoDetalle{{ProductoID: "p-1", Cantidad: 0, PrecioUnitario: 150000}}
	require.ErrorIs(t, sinValidos.Validar(), ErrSinDetallesValidos)
}

func TestEstadoValido(t *testing.T) {
	require.True(t, EstadoValido(EstadoPendiente))
	require.True(t, EstadoValido(EstadoPagado))
	require.True(t, EstadoValido(EstadoCancelado))
	require.False(t, EstadoValido("Anulado"))
	require.False(t, EstadoValido(""))
}
