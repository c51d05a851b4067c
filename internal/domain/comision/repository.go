package comision

import "context"

// Repository define las operaciones de persistencia de comisiones
type Repository interface {
	// Listar devuelve todas las comisiones con el método de pago resuelto
	Listar(ctx context.Context) ([]*Listado, error)
	BuscarPorID(ctx context.Context, id string) (*Comision, error)
	// Crear persiste la comisión con su id elegido; falla si el id ya existe
	Crear(ctx context.Context, c *Comision) error
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	Eliminar(ctx context.Context, id string) error
}
