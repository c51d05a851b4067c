package producto

import "context"

// Repository define las operaciones de persistencia del catálogo
type Repository interface {
	// Listar devuelve todos los productos con proveedor y tipo resueltos a nombre
	Listar(ctx context.Context) ([]*Listado, error)
	BuscarPorID(ctx context.Context, id string) (*Producto, error)
	// Crear persiste un producto nuevo con id generado y devuelve ese id
	Crear(ctx context.Context, p *Producto) (string, error)
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	Eliminar(ctx context.Context, id string) error
}
