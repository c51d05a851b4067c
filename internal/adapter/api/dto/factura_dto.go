package dto

import (
	"time"

	"github.com/acgomezu/panel-comercio/internal/domain/factura"
)

// DetalleRequest es una línea de factura tal como llega del formulario. El
// subtotal viene calculado por el cliente.
type DetalleRequest struct {
	ProductoID     string  `json:"productoId"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Producto       string  `json:"producto"`
	Subtotal       float64 `json:"subtotal"`
}

// FacturaRequest son los datos del formulario de factura. El id es opcional;
// si falta se genera uno a partir del instante de creación. La fecha llega
// como calendario (AAAA-MM-DD).
type FacturaRequest struct {
	ID           string           `json:"id"`
	Estado       string           `json:"estado"`
	Fecha        string           `json:"fecha"`
	Total        float64          `json:"total"`
	ClienteID    string           `json:"clienteId"`
	VendedorID   string           `json:"vendedorId"`
	MetodoPagoID string           `json:"metodoPagoId"`
	Detalles     []DetalleRequest `json:"detalles"`
}

// FacturaUpdateRequest es el parche parcial de la factura. Si se envían
// detalles se reemplaza la lista completa; nulo los deja intactos.
type FacturaUpdateRequest struct {
	Estado       *string          `json:"estado"`
	Fecha        *string          `json:"fecha"`
	Total        *float64         `json:"total"`
	ClienteID    *string          `json:"clienteId"`
	VendedorID   *string          `json:"vendedorId"`
	MetodoPagoID *string          `json:"metodoPagoId"`
	Detalles     []DetalleRequest `json:"detalles"`
}

// DetalleResponse es una línea de factura en las respuestas
type DetalleResponse struct {
	ProductoID     string  `json:"productoId"`
	Producto       string  `json:"producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
}

// FacturaResponse es la representación de una factura con las referencias del
// encabezado resueltas a nombres visibles
type FacturaResponse struct {
	ID                string            `json:"id"`
	Estado            string            `json:"estado"`
	Fecha             string            `json:"fecha"`
	Total             float64           `json:"total"`
	ClienteID         string            `json:"clienteId,omitempty"`
	ClienteNombre     string            `json:"clienteNombre"`
	VendedorID        string            `json:"vendedorId,omitempty"`
	VendedorNombre    string            `json:"vendedorNombre"`
	MetodoPagoID      string            `json:"metodoPagoId,omitempty"`
	MetodoPagoNombre  string            `json:"metodoPagoNombre"`
	Detalles          []DetalleResponse `json:"detalles"`
	FechaCreacion     string            `json:"fechaCreacion"`
	FechaModificacion string            `json:"fechaModificacion,omitempty"`
}

// FacturaListResponse es la lista de facturas ordenada de la más reciente a
// la más antigua
type FacturaListResponse struct {
	Total    int               `json:"total"`
	Facturas []FacturaResponse `json:"facturas"`
}

// ANueva convierte el request en la solicitud de creación del dominio
func (r *FacturaRequest) ANueva() (*factura.Nueva, error) {
	var fecha time.Time
	if r.Fecha != "" {
		parseada, err := ParsearFecha(r.Fecha)
		if err != nil {
			return nil, err
		}
		fecha = parseada
	}
	return &factura.Nueva{
		ID:           r.ID,
		Estado:       factura.Estado(r.Estado),
		Fecha:        fecha,
		Total:        r.Total,
		ClienteID:    r.ClienteID,
		VendedorID:   r.VendedorID,
		MetodoPagoID: r.MetodoPagoID,
		Detalles:     aNuevosDetalles(r.Detalles),
	}, nil
}

// AActualizacion convierte el parche del request al parche del dominio
func (r *FacturaUpdateRequest) AActualizacion() (*factura.Actualizacion, error) {
	act := &factura.Actualizacion{
		Total:        r.Total,
		ClienteID:    r.ClienteID,
		VendedorID:   r.VendedorID,
		MetodoPagoID: r.MetodoPagoID,
	}
	if r.Estado != nil {
		estado := factura.Estado(*r.Estado)
		act.Estado = &estado
	}
	if r.Fecha != nil {
		fecha, err := ParsearFecha(*r.Fecha)
		if err != nil {
			return nil, err
		}
		act.Fecha = &fecha
	}
	if r.Detalles != nil {
		act.Detalles = aNuevosDetalles(r.Detalles)
	}
	return act, nil
}

func aNuevosDetalles(detalles []DetalleRequest) []factura.NuevoDetalle {
	convertidos := make([]factura.NuevoDetalle, 0, len(detalles))
	for _, d := range detalles {
		convertidos = append(convertidos, factura.NuevoDetalle{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Producto:       d.Producto,
			Subtotal:       d.Subtotal,
		})
	}
	return convertidos
}

// ToFacturaResponse convierte una factura listada a su respuesta
func ToFacturaResponse(l *factura.Listada) FacturaResponse {
	detalles := make([]DetalleResponse, 0, len(l.Detalles))
	for _, d := range l.Detalles {
		detalles = append(detalles, DetalleResponse{
			ProductoID:     d.IDProducto.ID,
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}

	respuesta := FacturaResponse{
		ID:               l.Factura.ID,
		Estado:           string(l.Estado),
		Total:            l.Total,
		ClienteID:        l.Cliente.ID,
		ClienteNombre:    l.ClienteNombre,
		VendedorID:       l.Vendedor.ID,
		VendedorNombre:   l.VendedorNombre,
		MetodoPagoID:     l.MetodoPago.ID,
		MetodoPagoNombre: l.MetodoPagoNombre,
		Detalles:         detalles,
	}
	if !l.Fecha.IsZero() {
		respuesta.Fecha = l.Fecha.Format(FormatoFecha)
	}
	if !l.FechaCreacion.IsZero() {
		respuesta.FechaCreacion = l.FechaCreacion.Format(time.RFC3339)
	}
	if l.FechaModificacion != nil {
		respuesta.FechaModificacion = l.FechaModificacion.Format(time.RFC3339)
	}
	return respuesta
}

// ToFacturaListResponse convierte la lista de facturas listadas
func ToFacturaListResponse(listadas []*factura.Listada) FacturaListResponse {
	respuestas := make([]FacturaResponse, 0, len(listadas))
	for _, l := range listadas {
		respuestas = append(respuestas, ToFacturaResponse(l))
	}
	return FacturaListResponse{
		Total:    len(respuestas),
		Facturas: respuestas,
	}
}
