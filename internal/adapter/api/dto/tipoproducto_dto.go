package dto

import "github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"

// TipoProductoRequest son los datos del formulario de tipo de producto. El id
// lo elige el operador.
type TipoProductoRequest struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// TipoProductoUpdateRequest es el parche parcial del tipo de producto
type TipoProductoUpdateRequest struct {
	Nombre *string `json:"nombre"`
}

// TipoProductoResponse es la representación de un tipo de producto
type TipoProductoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// TipoProductoListResponse es la lista completa de tipos de producto
type TipoProductoListResponse struct {
	Total int                    `json:"total"`
	Tipos []TipoProductoResponse `json:"tipos"`
}

// ToTipoProductoResponse convierte un tipo de producto a su respuesta
func ToTipoProductoResponse(t *tipoproducto.TipoProducto) TipoProductoResponse {
	return TipoProductoResponse{ID: t.ID, Nombre: t.Nombre}
}

// ToTipoProductoListResponse convierte la lista completa de tipos
func ToTipoProductoListResponse(tipos []*tipoproducto.TipoProducto) TipoProductoListResponse {
	respuestas := make([]TipoProductoResponse, 0, len(tipos))
	for _, t := range tipos {
		respuestas = append(respuestas, ToTipoProductoResponse(t))
	}
	return TipoProductoListResponse{
		Total: len(respuestas),
		Tipos: respuestas,
	}
}
