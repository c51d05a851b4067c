package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acgomezu/panel-comercio/internal/domain/usuario"
)

// Errores específicos del repositorio de usuarios
var (
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

// UsuarioRepository implementa usuario.Repository sobre la base documental
type UsuarioRepository struct {
	db *mongo.Database
}

// NewUsuarioRepository crea una nueva instancia de UsuarioRepository
func NewUsuarioRepository(db *mongo.Database) usuario.Repository {
	return &UsuarioRepository{db: db}
}

// Listar implementa usuario.Repository.Listar
func (r *UsuarioRepository) Listar(ctx context.Context) ([]*usuario.Usuario, error) {
	cursor, err := r.db.Collection(usuario.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener los usuarios: %w", err)
	}

	usuarios := make([]*usuario.Usuario, 0)
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("error al decodificar los usuarios: %w", err)
	}
	return usuarios, nil
}

// BuscarPorID implementa usuario.Repository.BuscarPorID
func (r *UsuarioRepository) BuscarPorID(ctx context.Context, id string) (*usuario.Usuario, error) {
	var u usuario.Usuario
	err := r.db.Collection(usuario.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}
	return &u, nil
}

// Crear implementa usuario.Repository.Crear
func (r *UsuarioRepository) Crear(ctx context.Context, u *usuario.Usuario) (string, error) {
	u.ID = uuid.NewString()

	if _, err := r.db.Collection(usuario.Coleccion).InsertOne(ctx, u); err != nil {
		return "", fmt.Errorf("error al crear usuario: %w", err)
	}
	return u.ID, nil
}

// Actualizar implementa usuario.Repository.Actualizar aplicando solo los
// campos presentes en el parche.
func (r *UsuarioRepository) Actualizar(ctx context.Context, id string, cambios usuario.Actualizacion) error {
	campos := bson.M{}
	if cambios.Nombre != nil {
		campos["Nombre"] = *cambios.Nombre
	}
	if cambios.Apellido != nil {
		campos["Apellido"] = *cambios.Apellido
	}
	if cambios.Correo != nil {
		campos["Correo"] = *cambios.Correo
	}
	if cambios.Celular != nil {
		campos["Celular"] = *cambios.Celular
	}
	if cambios.Direccion != nil {
		campos["Direccion"] = *cambios.Direccion
	}
	if cambios.Roles != nil {
		campos["Roles"] = cambios.Roles
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(usuario.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar usuario: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUsuarioNoEncontrado
	}
	return nil
}

// Eliminar implementa usuario.Repository.Eliminar. No hay verificación de
// referencias colgantes: productos o facturas que apunten al usuario quedan
// con la etiqueta fija al listarse.
func (r *UsuarioRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(usuario.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar usuario: %w", err)
	}
	return nil
}
