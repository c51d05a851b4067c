package dto

import "github.com/acgomezu/panel-comercio/internal/domain/comision"

// ComisionRequest son los datos del formulario de comisión. El id lo elige el
// operador y el porcentaje es una fracción (0.1 = 10%).
type ComisionRequest struct {
	ID           string  `json:"id"`
	Porcentaje   float64 `json:"porcentaje"`
	MetodoPagoID string  `json:"metodoPagoId"`
}

// ComisionUpdateRequest es el parche parcial de la comisión
type ComisionUpdateRequest struct {
	Porcentaje   *float64 `json:"porcentaje"`
	MetodoPagoID *string  `json:"metodoPagoId"`
}

// ComisionResponse es la representación de una comisión con la etiqueta del
// método de pago ya resuelta
type ComisionResponse struct {
	ID               string  `json:"id"`
	Porcentaje       float64 `json:"porcentaje"`
	MetodoPagoID     string  `json:"metodoPagoId,omitempty"`
	MetodoPagoNombre string  `json:"metodoPagoNombre"`
}

// ComisionListResponse es la lista completa de comisiones
type ComisionListResponse struct {
	Total      int                `json:"total"`
	Comisiones []ComisionResponse `json:"comisiones"`
}

// ToComisionResponse convierte un listado de comisión a su respuesta
func ToComisionResponse(l *comision.Listado) ComisionResponse {
	return ComisionResponse{
		ID:               l.Comision.ID,
		Porcentaje:       l.Comision.Porcentaje,
		MetodoPagoID:     l.Comision.IDMetodoPago.ID,
		MetodoPagoNombre: l.MetodoPagoNombre,
	}
}

// ToComisionListResponse convierte la lista completa de comisiones
func ToComisionListResponse(listados []*comision.Listado) ComisionListResponse {
	respuestas := make([]ComisionResponse, 0, len(listados))
	for _, l := range listados {
		respuestas = append(respuestas, ToComisionResponse(l))
	}
	return ComisionListResponse{
		Total:      len(respuestas),
		Comisiones: respuestas,
	}
}
