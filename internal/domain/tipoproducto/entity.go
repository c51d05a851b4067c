package tipoproducto

import "errors"

// Coleccion es el nombre de la colección de tipos de producto
const Coleccion = "tipo_producto"

// NombreDesconocido es la etiqueta usada cuando el tipo no puede resolverse
const NombreDesconocido = "Sin nombre"

var (
	// ErrDatosFaltantes es retornado cuando falta el id o el nombre al crear
	ErrDatosFaltantes = errors.New("faltan datos para crear el tipo de producto")
)

// TipoProducto es una entrada de la tabla de consulta id→nombre referenciada
// por productos y descuentos.
type TipoProducto struct {
	ID     string `json:"id" bson:"_id"`
	Nombre string `json:"nombre" bson:"nombre"`
}

// NuevoTipoProducto crea un tipo de producto con id elegido por el operador
func NuevoTipoProducto(id, nombre string) (*TipoProducto, error) {
	if id == "" || nombre == "" {
		return nil, ErrDatosFaltantes
	}
	return &TipoProducto{ID: id, Nombre: nombre}, nil
}

// Actualizacion es un parche parcial del tipo de producto
type Actualizacion struct {
	Nombre *string
}
