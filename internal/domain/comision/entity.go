package comision

import (
	"errors"

	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Coleccion es el nombre de la colección de comisiones
const Coleccion = "Comision"

var (
	// ErrDatosFaltantes es retornado cuando faltan campos obligatorios al crear
	ErrDatosFaltantes = errors.New("faltan datos para crear la comisión")
)

// Comision es la tarifa cobrada por cobrar con un método de pago. El
// porcentaje se carga como fracción (0.1 = 10%) y no se valida contra rango.
type Comision struct {
	ID           string            `json:"id" bson:"_id"`
	Porcentaje   float64           `json:"porcentaje" bson:"Porcentaje"`
	IDMetodoPago docref.Referencia `json:"idMetodoPago" bson:"ID_MetodoPago"`
}

// NuevaComision crea una comisión con id elegido por el operador
func NuevaComision(id string, porcentaje float64, metodoPagoID string) (*Comision, error) {
	if id == "" || metodoPagoID == "" {
		return nil, ErrDatosFaltantes
	}
	return &Comision{
		ID:           id,
		Porcentaje:   porcentaje,
		IDMetodoPago: docref.Nueva("Metodo_Pago", metodoPagoID),
	}, nil
}

// Listado es una comisión con la etiqueta del método de pago resuelta
type Listado struct {
	Comision
	MetodoPagoNombre string `json:"metodoPagoNombre"`
}

// Actualizacion es un parche parcial de la comisión
type Actualizacion struct {
	Porcentaje   *float64
	MetodoPagoID *string
}
