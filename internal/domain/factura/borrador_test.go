package factura

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func borradorCompleto() *Borrador {
	b := NuevoBorrador()
	b.Estado = EstadoPendiente
	b.Fecha = time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC)
	b.ClienteID = "u-cliente"
	b.VendedorID = "u-vendedor"
	b.MetodoPagoID = "MP-01"
	b.SeleccionarProducto(0, "p-1", "Nevera", 150000)
	b.CambiarCantidad(0, 3)
	return b
}

func TestSubtotalSeRecalculaAlEditar(t *testing.T) {
	b := NuevoBorrador()
	b.SeleccionarProducto(0, "p-1", "Nevera", 150000)

	b.CambiarCantidad(0, 3)
	require.Equal(t, float64(450000), b.Lineas[0].Subtotal)

	b.CambiarPrecioUnitario(0, 100000)
	require.Equal(t, float64(300000), b.Lineas[0].Subtotal)

	b.CambiarCantidad(0, 0)
	require.Equal(t, float64(0), b.Lineas[0].Subtotal)
}

func TestTotalEsLaSumaDeSubtotales(t *testing.T) {
	b := borradorCompleto()
	require.Equal(t, float64(450000), b.Total())

	b.AgregarLinea()
	b.SeleccionarProducto(1, "p-2", "Cafetera", 50000)
	require.Equal(t, float64(500000), b.Total())
}

func TestSeleccionarProductoCopiaNombreYPrecio(t *testing.T) {
	b := NuevoBorrador()
	b.SeleccionarProducto(0, "p-1", "Nevera", 2000000)

	require.Equal(t, "p-1", b.Lineas[0].ProductoID)
	require.Equal(t, "Nevera", b.Lineas[0].Producto)
	require.Equal(t, float64(2000000), b.Lineas[0].PrecioUnitario)
	// cantidad por defecto 1 → subtotal igual al precio
	require.Equal(t, float64(2000000), b.Lineas[0].Subtotal)
}

func TestValidarExigeEncabezadoCompleto(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*Borrador)
	}{
		{"sin estado", func(b *Borrador) { b.Estado = "" }},
		{"sin fecha", func(b *Borrador) { b.Fecha = time.Time{} }},
		{"sin cliente", func(b *Borrador) { b.ClienteID = "" }},
		{"sin vendedor", func(b *Borrador) { b.VendedorID = "" }},
		{"sin método de pago", func(b *Borrador) { b.MetodoPagoID = "" }},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			b := borradorCompleto()
			caso.mutar(b)
			require.ErrorIs(t, b.Validar(), ErrDatosFaltantes)
		})
	}
}

func TestValidarExigeAlMenosUnaLineaValida(t *testing.T) {
	b := borradorCompleto()
	// sin producto elegido la línea no cuenta aunque tenga cantidad y precio
	b.Lineas[0].ProductoID = ""
	require.ErrorIs(t, b.Validar(), ErrSinDetallesValidos)

	b = borradorCompleto()
	b.CambiarCantidad(0, 0)
	require.ErrorIs(t, b.Validar(), ErrSinDetallesValidos)

	b = borradorCompleto()
	b.CambiarPrecioUnitario(0, 0)
	require.ErrorIs(t, b.Validar(), ErrSinDetallesValidos)
}

func TestValidarRechazaEstadoDesconocido(t *testing.T) {
	b := borradorCompleto()
	b.Estado = "Facturado"
	require.ErrorIs(t, b.Validar(), ErrEstadoInvalido)
}

func TestASolicitudDescartaLineasIncompletas(t *testing.T) {
	b := borradorCompleto()
	b.AgregarLinea() // línea vacía a medio cargar

	n, err := b.ASolicitud()
	require.NoError(t, err)
	require.Len(t, n.Detalles, 1)
	require.Equal(t, "p-1", n.Detalles[0].ProductoID)
	require.Equal(t, float64(450000), n.Detalles[0].Subtotal)
	// el total conserva la suma calculada por el formulario
	require.Equal(t, float64(450000), n.Total)
}

func TestQuitarLinea(t *testing.T) {
	b := borradorCompleto()
	b.AgregarLinea()
	require.Len(t, b.Lineas, 2)

	b.QuitarLinea(1)
	require.Len(t, b.Lineas, 1)

	// índices fuera de rango no hacen nada
	b.QuitarLinea(5)
	b.QuitarLinea(-1)
	require.Len(t, b.Lineas, 1)
}

func TestCargarYReiniciar(t *testing.T) {
	mod := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	f := &Factura{
		ID:     "FAC-123",
		Estado: EstadoPagado,
		Fecha:  time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC),
		Total:  2000000,
		Detalles: []Detalle{{
			Cantidad:       1,
			PrecioUnitario: 2000000,
			Producto:       "nevera",
			Subtotal:       2000000,
		}},
		FechaModificacion: &mod,
	}

	b := NuevoBorrador()
	b.Cargar(f)
	require.Equal(t, ModoEditar, b.Modo)
	require.Equal(t, "FAC-123", b.ID)
	require.Len(t, b.Lineas, 1)
	require.Equal(t, "nevera", b.Lineas[0].Producto)

	b.Reiniciar()
	require.Equal(t, ModoCrear, b.Modo)
	require.Empty(t, b.ID)
	require.Len(t, b.Lineas, 1)
	require.Empty(t, b.Lineas[0].ProductoID)
}
