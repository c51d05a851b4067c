package descuento

import (
	"errors"
	"time"

	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Coleccion es el nombre de la colección de descuentos
const Coleccion = "Descuento"

// TipoDesconocido es la etiqueta usada cuando el tipo de producto no resuelve
const TipoDesconocido = "Desconocido"

var (
	// ErrDatosFaltantes es retornado cuando faltan campos obligatorios al crear
	ErrDatosFaltantes = errors.New("faltan datos para crear el descuento")
	// ErrRangoFechas es retornado cuando la fecha final precede a la inicial
	ErrRangoFechas = errors.New("la fecha final no puede ser anterior a la inicial")
)

// Descuento es un porcentaje de rebaja vigente entre dos fechas para todos
// los productos de un tipo. Las fechas se almacenan como instantes y se
// editan como fechas de calendario.
type Descuento struct {
	ID          string            `json:"id" bson:"_id"`
	FechaInicio time.Time         `json:"fechaInicio" bson:"FechaInicio"`
	FechaFinal  time.Time         `json:"fechaFinal" bson:"FechaFinal"`
	Porcentaje  float64           `json:"porcentaje" bson:"Porcentaje"`
	IDTipo      docref.Referencia `json:"idTipo" bson:"Id_Tipo"`
}

// NuevoDescuento crea un descuento con su referencia canónica al tipo
func NuevoDescuento(fechaInicio, fechaFinal time.Time, porcentaje float64, tipoID string) (*Descuento, error) {
	if fechaInicio.IsZero() || fechaFinal.IsZero() || tipoID == "" {
		return nil, ErrDatosFaltantes
	}
	if fechaFinal.Before(fechaInicio) {
		return nil, ErrRangoFechas
	}
	return &Descuento{
		FechaInicio: fechaInicio,
		FechaFinal:  fechaFinal,
		Porcentaje:  porcentaje,
		IDTipo:      docref.Nueva("tipo_producto", tipoID),
	}, nil
}

// Listado es un descuento con el nombre del tipo resuelto
type Listado struct {
	Descuento
	TipoNombre string `json:"tipoNombre"`
}

// Actualizacion es un parche parcial del descuento
type Actualizacion struct {
	FechaInicio *time.Time
	FechaFinal  *time.Time
	Porcentaje  *float64
	TipoID      *string
}
