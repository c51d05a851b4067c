package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acgomezu/panel-comercio/internal/domain/metodopago"
)

// Errores específicos del repositorio de métodos de pago
var (
	ErrMetodoPagoNoEncontrado = errors.New("método de pago no encontrado")
	ErrMetodoPagoYaExiste     = errors.New("el método de pago con este ID ya existe")
)

// MetodoPagoRepository implementa metodopago.Repository sobre la base documental
type MetodoPagoRepository struct {
	db *mongo.Database
}

// NewMetodoPagoRepository crea una nueva instancia de MetodoPagoRepository
func NewMetodoPagoRepository(db *mongo.Database) metodopago.Repository {
	return &MetodoPagoRepository{db: db}
}

// Listar implementa metodopago.Repository.Listar
func (r *MetodoPagoRepository) Listar(ctx context.Context) ([]*metodopago.MetodoPago, error) {
	cursor, err := r.db.Collection(metodopago.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener los métodos de pago: %w", err)
	}

	metodos := make([]*metodopago.MetodoPago, 0)
	if err := cursor.All(ctx, &metodos); err != nil {
		return nil, fmt.Errorf("error al decodificar los métodos de pago: %w", err)
	}
	return metodos, nil
}

// BuscarPorID implementa metodopago.Repository.BuscarPorID
func (r *MetodoPagoRepository) BuscarPorID(ctx context.Context, id string) (*metodopago.MetodoPago, error) {
	var m metodopago.MetodoPago
	err := r.db.Collection(metodopago.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMetodoPagoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar método de pago: %w", err)
	}
	return &m, nil
}

// Crear implementa metodopago.Repository.Crear con inserción atómica por _id
func (r *MetodoPagoRepository) Crear(ctx context.Context, m *metodopago.MetodoPago) error {
	_, err := r.db.Collection(metodopago.Coleccion).InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrMetodoPagoYaExiste
	}
	if err != nil {
		return fmt.Errorf("error al crear el método de pago: %w", err)
	}
	return nil
}

// Actualizar implementa metodopago.Repository.Actualizar
func (r *MetodoPagoRepository) Actualizar(ctx context.Context, id string, cambios metodopago.Actualizacion) error {
	campos := bson.M{}
	if cambios.Metodo != nil {
		campos["Metodo"] = *cambios.Metodo
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(metodopago.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar el método de pago: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrMetodoPagoNoEncontrado
	}
	return nil
}

// Eliminar implementa metodopago.Repository.Eliminar
func (r *MetodoPagoRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(metodopago.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar el método de pago: %w", err)
	}
	return nil
}
