package dto

import "github.com/acgomezu/panel-comercio/internal/domain/producto"

// ProductoRequest son los datos del formulario de producto. Proveedor y tipo
// se reciben como ids y se guardan como referencias.
type ProductoRequest struct {
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	ProveedorID string  `json:"proveedorId"`
	TipoID      string  `json:"tipoId"`
}

// ProductoUpdateRequest es el parche parcial del producto
type ProductoUpdateRequest struct {
	Nombre      *string  `json:"nombre"`
	Precio      *float64 `json:"precio"`
	ProveedorID *string  `json:"proveedorId"`
	TipoID      *string  `json:"tipoId"`
}

// ProductoResponse es la representación de un producto con los nombres de
// proveedor y tipo ya resueltos
type ProductoResponse struct {
	ID              string  `json:"id"`
	Nombre          string  `json:"nombre"`
	Precio          float64 `json:"precio"`
	ProveedorID     string  `json:"proveedorId,omitempty"`
	ProveedorNombre string  `json:"proveedorNombre"`
	TipoID          string  `json:"tipoId,omitempty"`
	TipoNombre      string  `json:"tipoNombre"`
}

// ProductoListResponse es la lista completa de productos
type ProductoListResponse struct {
	Total     int                `json:"total"`
	Productos []ProductoResponse `json:"productos"`
}

// ToProductoResponse convierte un listado de producto a su respuesta
func ToProductoResponse(l *producto.Listado) ProductoResponse {
	return ProductoResponse{
		ID:              l.Producto.ID,
		Nombre:          l.Producto.Nombre,
		Precio:          l.Producto.Precio,
		ProveedorID:     l.Producto.Proveedor.ID,
		ProveedorNombre: l.ProveedorNombre,
		TipoID:          l.Producto.Tipo.ID,
		TipoNombre:      l.TipoNombre,
	}
}

// ToProductoListResponse convierte la lista completa de productos
func ToProductoListResponse(listados []*producto.Listado) ProductoListResponse {
	respuestas := make([]ProductoResponse, 0, len(listados))
	for _, l := range listados {
		respuestas = append(respuestas, ToProductoResponse(l))
	}
	return ProductoListResponse{
		Total:     len(respuestas),
		Productos: respuestas,
	}
}
