package dto

import (
	"fmt"
	"time"

	"github.com/acgomezu/panel-comercio/internal/domain/descuento"
)

// DescuentoRequest son los datos del formulario de descuento. Las fechas
// llegan como calendario (AAAA-MM-DD).
type DescuentoRequest struct {
	FechaInicio string  `json:"fechaInicio"`
	FechaFinal  string  `json:"fechaFinal"`
	Porcentaje  float64 `json:"porcentaje"`
	TipoID      string  `json:"tipoId"`
}

// DescuentoUpdateRequest es el parche parcial del descuento
type DescuentoUpdateRequest struct {
	FechaInicio *string  `json:"fechaInicio"`
	FechaFinal  *string  `json:"fechaFinal"`
	Porcentaje  *float64 `json:"porcentaje"`
	TipoID      *string  `json:"tipoId"`
}

// DescuentoResponse es la representación de un descuento con el nombre del
// tipo ya resuelto
type DescuentoResponse struct {
	ID          string  `json:"id"`
	FechaInicio string  `json:"fechaInicio"`
	FechaFinal  string  `json:"fechaFinal"`
	Porcentaje  float64 `json:"porcentaje"`
	TipoID      string  `json:"tipoId,omitempty"`
	TipoNombre  string  `json:"tipoNombre"`
}

// DescuentoListResponse es la lista completa de descuentos
type DescuentoListResponse struct {
	Total      int                 `json:"total"`
	Descuentos []DescuentoResponse `json:"descuentos"`
}

// Fechas interpreta las fechas de calendario del request
func (r *DescuentoRequest) Fechas() (time.Time, time.Time, error) {
	inicio, err := ParsearFecha(r.FechaInicio)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	final, err := ParsearFecha(r.FechaFinal)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, final, nil
}

// ParsearFecha interpreta una fecha de calendario (AAAA-MM-DD)
func ParsearFecha(valor string) (time.Time, error) {
	fecha, err := time.Parse(FormatoFecha, valor)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: se espera el formato %s", valor, FormatoFecha)
	}
	return fecha, nil
}

// ToDescuentoResponse convierte un listado de descuento a su respuesta
func ToDescuentoResponse(l *descuento.Listado) DescuentoResponse {
	return DescuentoResponse{
		ID:          l.Descuento.ID,
		FechaInicio: l.Descuento.FechaInicio.Format(FormatoFecha),
		FechaFinal:  l.Descuento.FechaFinal.Format(FormatoFecha),
		Porcentaje:  l.Descuento.Porcentaje,
		TipoID:      l.Descuento.IDTipo.ID,
		TipoNombre:  l.TipoNombre,
	}
}

// ToDescuentoListResponse convierte la lista completa de descuentos
func ToDescuentoListResponse(listados []*descuento.Listado) DescuentoListResponse {
	respuestas := make([]DescuentoResponse, 0, len(listados))
	for _, l := range listados {
		respuestas = append(respuestas, ToDescuentoResponse(l))
	}
	return DescuentoListResponse{
		Total:      len(respuestas),
		Descuentos: respuestas,
	}
}
