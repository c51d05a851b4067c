package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acgomezu/panel-comercio/internal/domain/factura"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

func TestFacturaRequestANueva(t *testing.T) {
	req := FacturaRequest{
		ID:           "FAC-1",
		Estado:       "Pendiente",
		Fecha:        "2024-03-15",
		Total:        500000,
		ClienteID:    "cli-1",
		VendedorID:   "ven-1",
		MetodoPagoID: "efectivo",
		Detalles: []DetalleRequest{
			{ProductoID: "prod-1", Cantidad: 3, PrecioUnitario: 150000, Producto: "Camisa", Subtotal: 450000},
		},
	}

	nueva, err := req.ANueva()
	require.NoError(t, err)
	require.Equal(t, "FAC-1", nueva.ID)
	require.Equal(t, factura.EstadoPendiente, nueva.Estado)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), nueva.Fecha)
	require.Len(t, nueva.Detalles, 1)
	require.Equal(t, "prod-1", nueva.Detalles[0].ProductoID)
	require.Equal(t, 450000.0, nueva.Detalles[0].Subtotal)
}

func TestFacturaRequestANuevaFechaInvalida(t *testing.T) {
	req := FacturaRequest{Fecha: "15/03/2024"}

	_, err := req.ANueva()
	require.Error(t, err)
}

func TestFacturaRequestANuevaSinFecha(t *testing.T) {
	req := FacturaRequest{Estado: "Pagado"}

	nueva, err := req.ANueva()
	require.NoError(t, err)
	require.True(t, nueva.Fecha.IsZero())
}

func TestFacturaUpdateRequestAActualizacion(t *testing.T) {
	estado := "Cancelado"
	fecha := "2024-06-01"
	req := FacturaUpdateRequest{
		Estado: &estado,
		Fecha:  &fecha,
	}

	cambios, err := req.AActualizacion()
	require.NoError(t, err)
	require.NotNil(t, cambios.Estado)
	require.Equal(t, factura.EstadoCancelado, *cambios.Estado)
	require.NotNil(t, cambios.Fecha)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *cambios.Fecha)
	require.Nil(t, cambios.Total)
	require.Nil(t, cambios.Detalles)
}

func TestFacturaUpdateRequestDetallesReemplazan(t *testing.T) {
	req := FacturaUpdateRequest{
		Detalles: []DetalleRequest{
			{ProductoID: "prod-2", Cantidad: 1, PrecioUnitario: 50000, Subtotal: 50000},
		},
	}

	cambios, err := req.AActualizacion()
	require.NoError(t, err)
	require.Len(t, cambios.Detalles, 1)
	require.Equal(t, "prod-2", cambios.Detalles[0].ProductoID)
}

func TestToFacturaResponse(t *testing.T) {
	modificada := time.Date(2024, 3, 16, 10, 30, 0, 0, time.UTC)
	listada := &factura.Listada{
		Factura: factura.Factura{
			ID:         "FAC-1",
			Estado:     factura.EstadoPagado,
			Fecha:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Total:      450000,
			Cliente:    docref.Nueva("usuarios", "cli-1"),
			Vendedor:   docref.Nueva("usuarios", "ven-1"),
			MetodoPago: docref.Nueva("Metodo_Pago", "efectivo"),
			Detalles: []factura.Detalle{
				{Cantidad: 3, IDProducto: docref.Nueva("productos", "prod-1"), PrecioUnitario: 150000, Producto: "Camisa", Subtotal: 450000},
			},
			FechaCreacion:     time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			FechaModificacion: &modificada,
		},
		ClienteNombre:    "Ana Gómez",
		VendedorNombre:   "Luis Pérez",
		MetodoPagoNombre: "Efectivo",
	}

	resp := ToFacturaResponse(listada)
	require.Equal(t, "FAC-1", resp.ID)
	require.Equal(t, "2024-03-15", resp.Fecha)
	require.Equal(t, "Ana Gómez", resp.ClienteNombre)
	require.Equal(t, "cli-1", resp.ClienteID)
	require.Equal(t, "2024-03-15T09:00:00Z", resp.FechaCreacion)
	require.Equal(t, "2024-03-16T10:30:00Z", resp.FechaModificacion)
	require.Len(t, resp.Detalles, 1)
	require.Equal(t, "prod-1", resp.Detalles[0].ProductoID)
}

func TestToFacturaResponseSinFechas(t *testing.T) {
	listada := &factura.Listada{
		Factura: factura.Factura{ID: "FAC-2", Estado: factura.EstadoPendiente},
	}

	resp := ToFacturaResponse(listada)
	require.Empty(t, resp.Fecha)
	require.Empty(t, resp.FechaCreacion)
	require.Empty(t, resp.FechaModificacion)
}

func TestDescuentoRequestFechas(t *testing.T) {
	req := DescuentoRequest{FechaInicio: "2024-01-01", FechaFinal: "2024-02-01"}

	inicio, final, err := req.Fechas()
	require.NoError(t, err)
	require.True(t, final.After(inicio))

	req.FechaFinal = "mañana"
	_, _, err = req.Fechas()
	require.Error(t, err)
}
