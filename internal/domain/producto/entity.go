package producto

import (
	"errors"

	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Coleccion es el nombre de la colección de productos
const Coleccion = "productos"

// Etiquetas fijas cuando una referencia no puede resolverse
const (
	SinProveedor = "Sin proveedor"
	SinTipo      = "Sin tipo"
)

var (
	// ErrDatosFaltantes es retornado cuando faltan campos obligatorios al crear
	ErrDatosFaltantes = errors.New("faltan datos para crear el producto")
)

// Producto es un artículo del catálogo. El proveedor es un usuario y el tipo
// una entrada de tipo_producto; ambas referencias pueden venir de la base
// como documento o como id crudo.
type Producto struct {
	ID        string            `json:"id" bson:"_id"`
	Nombre    string            `json:"nombre" bson:"nombre"`
	Precio    float64           `json:"precio" bson:"precio"`
	Proveedor docref.Referencia `json:"proveedor" bson:"proveedor"`
	Tipo      docref.Referencia `json:"tipo" bson:"tipo"`
}

// NuevoProducto crea un producto con sus referencias canónicas
func NuevoProducto(nombre string, precio float64, proveedorID, tipoID string) (*Producto, error) {
	if nombre == "" || proveedorID == "" || tipoID == "" {
		return nil, ErrDatosFaltantes
	}
	return &Producto{
		Nombre:    nombre,
		Precio:    precio,
		Proveedor: docref.Nueva("usuarios", proveedorID),
		Tipo:      docref.Nueva("tipo_producto", tipoID),
	}, nil
}

// Listado es un producto con sus referencias resueltas a nombres visibles
type Listado struct {
	Producto
	ProveedorNombre string `json:"proveedorNombre"`
	TipoNombre      string `json:"tipoNombre"`
}

// Actualizacion es un parche parcial: las referencias presentes se reenvuelven
// en una referencia fresca al aplicarse.
type Actualizacion struct {
	Nombre      *string
	Precio      *float64
	ProveedorID *string
	TipoID      *string
}
