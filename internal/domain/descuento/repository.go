package descuento

import "context"

// Repository define las operaciones de persistencia de descuentos
type Repository interface {
	// Listar devuelve todos los descuentos con el tipo resuelto a nombre
	Listar(ctx context.Context) ([]*Listado, error)
	BuscarPorID(ctx context.Context, id string) (*Descuento, error)
	// Crear persiste un descuento nuevo con id generado y devuelve ese id
	Crear(ctx context.Context, d *Descuento) (string, error)
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	Eliminar(ctx context.Context, id string) error
}
