package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/acgomezu/panel-comercio/internal/domain/comision"
	"github.com/acgomezu/panel-comercio/internal/domain/descuento"
	"github.com/acgomezu/panel-comercio/internal/domain/factura"
	"github.com/acgomezu/panel-comercio/internal/domain/metodopago"
	"github.com/acgomezu/panel-comercio/internal/domain/producto"
	"github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"
	"github.com/acgomezu/panel-comercio/internal/domain/usuario"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// resolvedorFalso sirve documentos desde un mapa colección/id → documento
type resolvedorFalso struct {
	docs map[string]interface{}
}

func (r resolvedorFalso) resolver(_ context.Context, ref docref.Referencia, destino interface{}) error {
	if ref.EsVacia() || ref.Coleccion == "" {
		return docref.ErrReferenciaVacia
	}
	doc, ok := r.docs[ref.String()]
	if !ok {
		return errDocumentoNoEncontrado
	}

	crudo, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(crudo, destino)
}

func resolvedorDePrueba() resolvedorFalso {
	return resolvedorFalso{docs: map[string]interface{}{
		"usuarios/u-1":        usuario.Usuario{ID: "u-1", Nombre: "Ana", Apellido: "Gómez"},
		"usuarios/u-2":        usuario.Usuario{ID: "u-2", Correo: "vendedor@correo.com"},
		"tipo_producto/tp-1":  tipoproducto.TipoProducto{ID: "tp-1", Nombre: "Electrodoméstico"},
		"tipo_producto/tp-2":  tipoproducto.TipoProducto{ID: "tp-2"},
		"Metodo_Pago/MP-01":   metodopago.MetodoPago{ID: "MP-01", Metodo: "Efectivo"},
		"productos/p-1":       producto.Producto{ID: "p-1", Nombre: "Nevera", Precio: 2000000},
	}}
}

func TestDenormalizarProducto(t *testing.T) {
	res := resolvedorDePrueba()

	p := &producto.Producto{
		ID:        "p-9",
		Nombre:    "Nevera",
		Proveedor: docref.Nueva("usuarios", "u-1"),
		Tipo:      docref.Nueva("tipo_producto", "tp-1"),
	}

	listado := denormalizarProducto(context.Background(), res, p)
	require.Equal(t, "Ana Gómez", listado.ProveedorNombre)
	require.Equal(t, "Electrodoméstico", listado.TipoNombre)
}

func TestDenormalizarProductoConReferenciaCruda(t *testing.T) {
	res := resolvedorDePrueba()

	// referencia guardada como id crudo, sin colección
	p := &producto.Producto{
		ID:        "p-9",
		Proveedor: docref.Referencia{ID: "u-2"},
		Tipo:      docref.Referencia{ID: "tp-1"},
	}

	listado := denormalizarProducto(context.Background(), res, p)
	require.Equal(t, "vendedor@correo.com", listado.ProveedorNombre)
	require.Equal(t, "Electrodoméstico", listado.TipoNombre)
}

func TestDenormalizarProductoConReferenciasColgantes(t *testing.T) {
	res := resolvedorDePrueba()

	p := &producto.Producto{
		ID:        "p-9",
		Proveedor: docref.Nueva("usuarios", "u-borrado"),
		Tipo:      docref.Nueva("tipo_producto", "tp-borrado"),
	}

	listado := denormalizarProducto(context.Background(), res, p)
	require.Equal(t, producto.SinProveedor, listado.ProveedorNombre)
	require.Equal(t, producto.SinTipo, listado.TipoNombre)
}

func TestDenormalizarProductoSinReferencias(t *testing.T) {
	listado := denormalizarProducto(context.Background(), resolvedorDePrueba(), &producto.Producto{ID: "p-9"})
	require.Equal(t, producto.SinProveedor, listado.ProveedorNombre)
	require.Equal(t, producto.SinTipo, listado.TipoNombre)
}

func TestDenormalizarDescuento(t *testing.T) {
	res := resolvedorDePrueba()

	d := &descuento.Descuento{ID: "d-1", IDTipo: docref.Nueva("tipo_producto", "tp-1")}
	require.Equal(t, "Electrodoméstico", denormalizarDescuento(context.Background(), res, d).TipoNombre)

	// tipo resuelto pero sin nombre cargado
	d = &descuento.Descuento{ID: "d-2", IDTipo: docref.Nueva("tipo_producto", "tp-2")}
	require.Equal(t, tipoproducto.NombreDesconocido, denormalizarDescuento(context.Background(), res, d).TipoNombre)

	// referencia colgante
	d = &descuento.Descuento{ID: "d-3", IDTipo: docref.Nueva("tipo_producto", "tp-x")}
	require.Equal(t, descuento.TipoDesconocido, denormalizarDescuento(context.Background(), res, d).TipoNombre)
}

func TestDenormalizarComision(t *testing.T) {
	res := resolvedorDePrueba()

	c := &comision.Comision{ID: "c-1", Porcentaje: 0.1, IDMetodoPago: docref.Nueva("Metodo_Pago", "MP-01")}
	require.Equal(t, "Efectivo", denormalizarComision(context.Background(), res, c).MetodoPagoNombre)

	c = &comision.Comision{ID: "c-2", IDMetodoPago: docref.Nueva("Metodo_Pago", "MP-borrado")}
	require.Equal(t, SinMetodoPago, denormalizarComision(context.Background(), res, c).MetodoPagoNombre)
}

func TestDenormalizarFactura(t *testing.T) {
	res := resolvedorDePrueba()

	f := &factura.Factura{
		ID:         "FAC-1",
		Cliente:    docref.Nueva("usuarios", "u-1"),
		Vendedor:   docref.Nueva("usuarios", "u-2"),
		MetodoPago: docref.Nueva("Metodo_Pago", "MP-01"),
		Detalles: []factura.Detalle{
			{Cantidad: 1, Producto: "nevera", Subtotal: 2000000},
			// línea vieja sin copia del nombre: se completa desde el producto actual
			{Cantidad: 2, IDProducto: docref.Nueva("productos", "p-1"), Subtotal: 4000000},
		},
	}

	listada := denormalizarFactura(context.Background(), res, f)
	require.Equal(t, "Ana Gómez", listada.ClienteNombre)
	require.Equal(t, "vendedor@correo.com", listada.VendedorNombre)
	require.Equal(t, "Efectivo", listada.MetodoPagoNombre)
	// la copia existente no se refresca
	require.Equal(t, "nevera", listada.Detalles[0].Producto)
	require.Equal(t, "Nevera", listada.Detalles[1].Producto)
}

func TestDenormalizarFacturaConReferenciasColgantes(t *testing.T) {
	res := resolvedorDePrueba()

	f := &factura.Factura{
		ID:         "FAC-2",
		Cliente:    docref.Nueva("usuarios", "u-borrado"),
		Vendedor:   docref.Nueva("usuarios", "u-borrado"),
		MetodoPago: docref.Nueva("Metodo_Pago", "MP-borrado"),
		Detalles: []factura.Detalle{
			{Cantidad: 1, IDProducto: docref.Nueva("productos", "p-borrado")},
		},
	}

	listada := denormalizarFactura(context.Background(), res, f)
	require.Equal(t, factura.SinCliente, listada.ClienteNombre)
	require.Equal(t, factura.SinVendedor, listada.VendedorNombre)
	require.Equal(t, factura.SinMetodo, listada.MetodoPagoNombre)
	require.Equal(t, factura.ProductoDesconocido, listada.Detalles[0].Producto)
}

func TestDenormalizarFacturaSinReferencias(t *testing.T) {
	listada := denormalizarFactura(context.Background(), resolvedorDePrueba(), &factura.Factura{ID: "FAC-3"})
	require.Equal(t, factura.SinCliente, listada.ClienteNombre)
	require.Equal(t, factura.SinVendedor, listada.VendedorNombre)
	require.Equal(t, factura.SinMetodo, listada.MetodoPagoNombre)
}
