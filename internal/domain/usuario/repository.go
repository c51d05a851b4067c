package usuario

import "context"

// Repository define las operaciones de persistencia de usuarios
type Repository interface {
	// Listar devuelve todos los usuarios en el orden de iteración de la colección
	Listar(ctx context.Context) ([]*Usuario, error)
	// BuscarPorID devuelve el usuario con el id indicado
	BuscarPorID(ctx context.Context, id string) (*Usuario, error)
	// Crear persiste un usuario nuevo con id generado y devuelve ese id
	Crear(ctx context.Context, u *Usuario) (string, error)
	// Actualizar aplica un parche parcial sobre el usuario indicado
	Actualizar(ctx context.Context, id string, cambios Actualizacion) error
	// Eliminar borra el usuario sin verificar referencias colgantes
	Eliminar(ctx context.Context, id string) error
}
