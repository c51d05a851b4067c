package factura

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Coleccion es el nombre de la colección de facturas
const Coleccion = "Factura"

// Etiquetas fijas cuando una referencia no puede resolverse
const (
	SinCliente          = "Sin cliente"
	SinVendedor         = "Sin vendedor"
	SinMetodo           = "Sin método"
	ProductoDesconocido = "Producto desconocido"
	ProductoSinNombre   = "Producto sin nombre"
)

var (
	// ErrDatosFaltantes es retornado cuando falta algún campo obligatorio del encabezado
	ErrDatosFaltantes = errors.New("faltan datos obligatorios para crear la factura")
	// ErrSinDetallesValidos es retornado cuando ninguna línea tiene producto,
	// cantidad y precio unitario válidos
	ErrSinDetallesValidos = errors.New("debe incluir al menos un producto válido")
	// ErrEstadoInvalido es retornado cuando el estado no pertenece al conjunto permitido
	ErrEstadoInvalido = errors.New("estado de factura inválido")
)

// Estado es el estado de cobro de una factura
type Estado string

const (
	EstadoPendiente Estado = "Pendiente"
	EstadoPagado    Estado = "Pagado"
	EstadoCancelado Estado = "Cancelado"
)

// EstadoValido indica si el estado pertenece al conjunto permitido
func EstadoValido(e Estado) bool {
	switch e {
	case EstadoPendiente, EstadoPagado, EstadoCancelado:
		return true
	}
	return false
}

// Detalle es una línea de factura. Producto es una copia del nombre tomada al
// momento de seleccionar el producto; nunca se refresca aunque el producto
// cambie después.
type Detalle struct {
	Cantidad       int               `json:"cantidad" bson:"Cantidad"`
	IDProducto     docref.Referencia `json:"idProducto" bson:"ID_Producto"`
	PrecioUnitario float64           `json:"precioUnitario" bson:"PrecioUnitario"`
	Producto       string            `json:"producto" bson:"Producto"`
	Subtotal       float64           `json:"subtotal" bson:"Subtotal"`
}

// Factura es el documento persistido. Total es el valor calculado por el
// cliente al enviar el formulario; no se revalida contra los detalles.
type Factura struct {
	ID                string            `json:"id" bson:"_id"`
	Estado            Estado            `json:"estado" bson:"Estado"`
	Fecha             time.Time         `json:"fecha" bson:"Fecha"`
	Total             float64           `json:"total" bson:"Total"`
	Cliente           docref.Referencia `json:"cliente" bson:"Cliente"`
	Vendedor          docref.Referencia `json:"vendedor" bson:"Vendedor"`
	MetodoPago        docref.Referencia `json:"metodoPago" bson:"MetodoPago"`
	Detalles          []Detalle         `json:"detalles" bson:"Detalles"`
	FechaCreacion     time.Time         `json:"fechaCreacion" bson:"FechaCreacion"`
	FechaModificacion *time.Time        `json:"fechaModificacion,omitempty" bson:"FechaModificacion,omitempty"`
}

// Listada es una factura con las referencias del encabezado resueltas a
// nombres visibles y los nombres de producto de las líneas completados.
type Listada struct {
	Factura
	ClienteNombre    string `json:"clienteNombre"`
	VendedorNombre   string `json:"vendedorNombre"`
	MetodoPagoNombre string `json:"metodoPagoNombre"`
}

// GenerarID construye el identificador por defecto a partir del instante dado
func GenerarID(ahora time.Time) string {
	return fmt.Sprintf("FAC-%d", ahora.UnixMilli())
}

// OrdenarPorFecha ordena las facturas de más reciente a más antigua. Las
// facturas sin fecha legible (fecha cero) quedan al final.
func OrdenarPorFecha(facturas []*Listada) {
	sort.SliceStable(facturas, func(i, j int) bool {
		return facturas[i].Fecha.After(facturas[j].Fecha)
	})
}

// NuevoDetalle es una línea tal como llega del formulario. Subtotal viene
// calculado por el cliente y se persiste como llega.
type NuevoDetalle struct {
	ProductoID     string
	Cantidad       int
	PrecioUnitario float64
	Producto       string
	Subtotal       float64
}

// EsValido indica si la línea puede persistirse: producto elegido, cantidad
// positiva y precio unitario positivo.
func (d NuevoDetalle) EsValido() bool {
	return d.ProductoID != "" && d.Cantidad > 0 && d.PrecioUnitario > 0
}

// DetallesValidos filtra las líneas que pasan el predicado de validez. Las
// líneas a medio cargar se descartan en silencio al enviar.
func DetallesValidos(detalles []NuevoDetalle) []NuevoDetalle {
	validos := make([]NuevoDetalle, 0, len(detalles))
	for _, d := range detalles {
		if d.EsValido() {
			validos = append(validos, d)
		}
	}
	return validos
}

// Nueva es la solicitud de creación de una factura
type Nueva struct {
	ID           string
	Estado       Estado
	Fecha        time.Time
	Total        float64
	ClienteID    string
	VendedorID   string
	MetodoPagoID string
	Detalles     []NuevoDetalle
}

// Validar verifica el encabezado y que exista al menos una línea válida
func (n *Nueva) Validar() error {
	if n.Estado == "" || n.Fecha.IsZero() || n.ClienteID == "" || n.VendedorID == "" || n.MetodoPagoID == "" || len(n.Detalles) == 0 {
		return ErrDatosFaltantes
	}
	if !EstadoValido(n.Estado) {
		return ErrEstadoInvalido
	}
	if len(DetallesValidos(n.Detalles)) == 0 {
		return ErrSinDetallesValidos
	}
	return nil
}

// Actualizacion es un parche parcial de la factura: los campos nulos no se
// tocan. Si se envían detalles se reemplaza la lista completa.
type Actualizacion struct {
	Estado       *Estado
	Fecha        *time.Time
	Total        *float64
	ClienteID    *string
	VendedorID   *string
	MetodoPagoID *string
	Detalles     []NuevoDetalle
}
