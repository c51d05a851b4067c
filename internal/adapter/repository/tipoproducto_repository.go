package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"
)

// Errores específicos del repositorio de tipos de producto
var (
	ErrTipoProductoNoEncontrado = errors.New("tipo de producto no encontrado")
	ErrTipoProductoYaExiste     = errors.New("el tipo de producto con este ID ya existe")
)

// TipoProductoRepository implementa tipoproducto.Repository sobre la base documental
type TipoProductoRepository struct {
	db *mongo.Database
}

// NewTipoProductoRepository crea una nueva instancia de TipoProductoRepository
func NewTipoProductoRepository(db *mongo.Database) tipoproducto.Repository {
	return &TipoProductoRepository{db: db}
}

// Listar implementa tipoproducto.Repository.Listar
func (r *TipoProductoRepository) Listar(ctx context.Context) ([]*tipoproducto.TipoProducto, error) {
	cursor, err := r.db.Collection(tipoproducto.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener tipos de producto: %w", err)
	}

	tipos := make([]*tipoproducto.TipoProducto, 0)
	if err := cursor.All(ctx, &tipos); err != nil {
		return nil, fmt.Errorf("error al decodificar tipos de producto: %w", err)
	}
	return tipos, nil
}

// BuscarPorID implementa tipoproducto.Repository.BuscarPorID
func (r *TipoProductoRepository) BuscarPorID(ctx context.Context, id string) (*tipoproducto.TipoProducto, error) {
	var t tipoproducto.TipoProducto
	err := r.db.Collection(tipoproducto.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTipoProductoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar tipo de producto: %w", err)
	}
	return &t, nil
}

// Crear implementa tipoproducto.Repository.Crear. La inserción con _id
// explícito es atómica: un id repetido produce el error de clave duplicada
// sin ventana entre verificación y escritura.
func (r *TipoProductoRepository) Crear(ctx context.Context, t *tipoproducto.TipoProducto) error {
	_, err := r.db.Collection(tipoproducto.Coleccion).InsertOne(ctx, t)
	if mongo.IsDuplicateKeyError(err) {
		return ErrTipoProductoYaExiste
	}
	if err != nil {
		return fmt.Errorf("error al crear el tipo de producto: %w", err)
	}
	return nil
}

// Actualizar implementa tipoproducto.Repository.Actualizar
func (r *TipoProductoRepository) Actualizar(ctx context.Context, id string, cambios tipoproducto.Actualizacion) error {
	campos := bson.M{}
	if cambios.Nombre != nil {
		campos["nombre"] = *cambios.Nombre
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(tipoproducto.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar el tipo de producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrTipoProductoNoEncontrado
	}
	return nil
}

// Eliminar implementa tipoproducto.Repository.Eliminar
func (r *TipoProductoRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(tipoproducto.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar el tipo de producto: %w", err)
	}
	return nil
}
