package factura

import "time"

// Modo es el modo del formulario de factura
type Modo int

const (
	ModoCrear Modo = iota
	ModoEditar
)

// LineaBorrador es una línea en edición. Producto y PrecioUnitario se copian
// del producto al seleccionarlo; Subtotal se recalcula en cada cambio de
// cantidad o precio.
type LineaBorrador struct {
	ProductoID     string
	Producto       string
	Cantidad       int
	PrecioUnitario float64
	Subtotal       float64
}

// Borrador es el estado del formulario de factura. Cada transición es una
// función pura sobre este struct; el borrador no toca la base hasta que la
// solicitud construida con ASolicitud se envía al repositorio.
type Borrador struct {
	Modo         Modo
	ID           string
	Estado       Estado
	Fecha        time.Time
	ClienteID    string
	VendedorID   string
	MetodoPagoID string
	Lineas       []LineaBorrador
}

// NuevoBorrador crea un borrador en modo crear con una línea vacía
func NuevoBorrador() *Borrador {
	return &Borrador{
		Modo:   ModoCrear,
		Lineas: []LineaBorrador{{Cantidad: 1}},
	}
}

// Cargar pasa el formulario a modo editar con los datos de la factura dada
func (b *Borrador) Cargar(f *Factura) {
	lineas := make([]LineaBorrador, 0, len(f.Detalles))
	for _, d := range f.Detalles {
		lineas = append(lineas, LineaBorrador{
			ProductoID:     d.IDProducto.ID,
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}

	b.Modo = ModoEditar
	b.ID = f.ID
	b.Estado = f.Estado
	b.Fecha = f.Fecha
	b.ClienteID = f.Cliente.ID
	b.VendedorID = f.Vendedor.ID
	b.MetodoPagoID = f.MetodoPago.ID
	b.Lineas = lineas
}

// Reiniciar vuelve el formulario a modo crear, vacío. Se invoca tras un envío
// exitoso o al cancelar la edición.
func (b *Borrador) Reiniciar() {
	*b = *NuevoBorrador()
}

// AgregarLinea añade una línea vacía al final
func (b *Borrador) AgregarLinea() {
	b.Lineas = append(b.Lineas, LineaBorrador{Cantidad: 1})
}

// QuitarLinea elimina la línea indicada; los índices fuera de rango se ignoran
func (b *Borrador) QuitarLinea(i int) {
	if i < 0 || i >= len(b.Lineas) {
		return
	}
	b.Lineas = append(b.Lineas[:i], b.Lineas[i+1:]...)
}

// SeleccionarProducto fija el producto de la línea copiando su nombre y
// precio actuales. Es una copia única: cambios posteriores del producto no
// actualizan la línea.
func (b *Borrador) SeleccionarProducto(i int, productoID, nombre string, precio float64) {
	if i < 0 || i >= len(b.Lineas) {
		return
	}
	b.Lineas[i].ProductoID = productoID
	b.Lineas[i].Producto = nombre
	b.Lineas[i].PrecioUnitario = precio
	b.recalcular(i)
}

// CambiarCantidad fija la cantidad de la línea y recalcula su subtotal
func (b *Borrador) CambiarCantidad(i, cantidad int) {
	if i < 0 || i >= len(b.Lineas) {
		return
	}
	b.Lineas[i].Cantidad = cantidad
	b.recalcular(i)
}

// CambiarPrecioUnitario fija el precio unitario de la línea y recalcula su subtotal
func (b *Borrador) CambiarPrecioUnitario(i int, precio float64) {
	if i < 0 || i >= len(b.Lineas) {
		return
	}
	b.Lineas[i].PrecioUnitario = precio
	b.recalcular(i)
}

func (b *Borrador) recalcular(i int) {
	b.Lineas[i].Subtotal = float64(b.Lineas[i].Cantidad) * b.Lineas[i].PrecioUnitario
}

// Total suma los subtotales de todas las líneas, incluidas las incompletas
func (b *Borrador) Total() float64 {
	var total float64
	for _, l := range b.Lineas {
		total += l.Subtotal
	}
	return total
}

// Validar aplica la validación de envío del formulario: encabezado completo y
// al menos una línea con producto, cantidad y precio válidos.
func (b *Borrador) Validar() error {
	return b.aSolicitud().Validar()
}

// ASolicitud arma la solicitud de creación o actualización con las líneas
// válidas; las líneas a medio cargar se descartan. Falla si la validación de
// envío no pasa.
func (b *Borrador) ASolicitud() (*Nueva, error) {
	n := b.aSolicitud()
	if err := n.Validar(); err != nil {
		return nil, err
	}
	n.Detalles = DetallesValidos(n.Detalles)
	return n, nil
}

func (b *Borrador) aSolicitud() *Nueva {
	detalles := make([]NuevoDetalle, 0, len(b.Lineas))
	for _, l := range b.Lineas {
		detalles = append(detalles, NuevoDetalle{
			ProductoID:     l.ProductoID,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Producto:       l.Producto,
			Subtotal:       l.Subtotal,
		})
	}

	return &Nueva{
		ID:           b.ID,
		Estado:       b.Estado,
		Fecha:        b.Fecha,
		Total:        b.Total(),
		ClienteID:    b.ClienteID,
		VendedorID:   b.VendedorID,
		MetodoPagoID: b.MetodoPagoID,
		Detalles:     detalles,
	}
}
