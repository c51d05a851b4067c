package tipoproducto

import "context"

// Repository define las operaciones de persistencia de tipos de producto
type Repository interface {
	Listar(ctx context.Context) ([]*TipoProducto, error)
	BuscarPorID(ctx context.Context, id string) (*TipoProducto, error)
	// Crear persiste el tipo con su id elegido; falla si el id ya existe
	Crear(ctx context.Context, t *TipoProducto) error
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	Eliminar(ctx context.Context, id string) error
}
