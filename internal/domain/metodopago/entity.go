package metodopago

import "errors"

// Coleccion es el nombre de la colección de métodos de pago
const Coleccion = "Metodo_Pago"

// NombreDesconocido es la etiqueta usada cuando el método no puede resolverse
const NombreDesconocido = "Sin nombre"

var (
	// ErrDatosFaltantes es retornado cuando falta el id o la etiqueta al crear
	ErrDatosFaltantes = errors.New("faltan datos para crear el método de pago")
)

// MetodoPago es una entrada de la tabla de consulta id→etiqueta referenciada
// por comisiones y facturas.
type MetodoPago struct {
	ID     string `json:"id" bson:"_id"`
	Metodo string `json:"metodo" bson:"Metodo"`
}

// NuevoMetodoPago crea un método de pago con id elegido por el operador
func NuevoMetodoPago(id, metodo string) (*MetodoPago, error) {
	if id == "" || metodo == "" {
		return nil, ErrDatosFaltantes
	}
	return &MetodoPago{ID: id, Metodo: metodo}, nil
}

// Actualizacion es un parche parcial del método de pago
type Actualizacion struct {
	Metodo *string
}
