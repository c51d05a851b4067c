package dto

import "github.com/acgomezu/panel-comercio/internal/domain/metodopago"

// MetodoPagoRequest son los datos del formulario de método de pago. El id lo
// elige el operador.
type MetodoPagoRequest struct {
	ID     string `json:"id"`
	Metodo string `json:"metodo"`
}

// MetodoPagoUpdateRequest es el parche parcial del método de pago
type MetodoPagoUpdateRequest struct {
	Metodo *string `json:"metodo"`
}

// MetodoPagoResponse es la representación de un método de pago
type MetodoPagoResponse struct {
	ID     string `json:"id"`
	Metodo string `json:"metodo"`
}

// MetodoPagoListResponse es la lista completa de métodos de pago
type MetodoPagoListResponse struct {
	Total   int                  `json:"total"`
	Metodos []MetodoPagoResponse `json:"metodos"`
}

// ToMetodoPagoResponse convierte un método de pago a su respuesta
func ToMetodoPagoResponse(m *metodopago.MetodoPago) MetodoPagoResponse {
	return MetodoPagoResponse{ID: m.ID, Metodo: m.Metodo}
}

// ToMetodoPagoListResponse convierte la lista completa de métodos
func ToMetodoPagoListResponse(metodos []*metodopago.MetodoPago) MetodoPagoListResponse {
	respuestas := make([]MetodoPagoResponse, 0, len(metodos))
	for _, m := range metodos {
		respuestas = append(respuestas, ToMetodoPagoResponse(m))
	}
	return MetodoPagoListResponse{
		Total:   len(respuestas),
		Metodos: respuestas,
	}
}
