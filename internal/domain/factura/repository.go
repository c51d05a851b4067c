package factura

import "context"

// Repository define las operaciones de persistencia de facturas
type Repository interface {
	// Listar devuelve todas las facturas denormalizadas, ordenadas por fecha
	// descendente; las facturas sin fecha legible quedan al final
	Listar(ctx context.Context) ([]*Listada, error)
	// BuscarPorID devuelve una factura con la misma denormalización que Listar
	BuscarPorID(ctx context.Context, id string) (*Listada, error)
	// Crear verifica cada referencia, resuelve las líneas y persiste la
	// factura con su fecha de creación; devuelve el id definitivo
	Crear(ctx context.Context, n *Nueva) (string, error)
	// Actualizar aplica un parche parcial verificando cada referencia enviada
	// y registra la fecha de modificación
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	// Eliminar verifica la existencia antes de borrar
	Eliminar(ctx context.Context, id string) error
}
