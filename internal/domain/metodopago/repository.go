package metodopago

import "context"

// Repository define las operaciones de persistencia de métodos de pago
type Repository interface {
	Listar(ctx context.Context) ([]*MetodoPago, error)
	BuscarPorID(ctx context.Context, id string) (*MetodoPago, error)
	// Crear persiste el método con su id elegido; falla si el id ya existe
	Crear(ctx context.Context, m *MetodoPago) error
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	Eliminar(ctx context.Context, id string) error
}
