package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/acgomezu/panel-comercio/internal/domain/comision"
	"github.com/acgomezu/panel-comercio/internal/domain/metodopago"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Errores específicos del repositorio de comisiones
var (
	ErrComisionNoEncontrada = errors.New("comisión no encontrada")
	ErrComisionYaExiste     = errors.New("la comisión con este ID ya existe")
)

// SinMetodoPago es la etiqueta usada cuando el método de pago no resuelve
const SinMetodoPago = "Sin método"

// ComisionRepository implementa comision.Repository sobre la base documental
type ComisionRepository struct {
	db  *mongo.Database
	res resolvedor
}

// NewComisionRepository crea una nueva instancia de ComisionRepository
func NewComisionRepository(db *mongo.Database) comision.Repository {
	return &ComisionRepository{db: db, res: resolvedorMongo{db: db}}
}

// Listar implementa comision.Repository.Listar resolviendo el método de pago
// de cada comisión en paralelo.
func (r *ComisionRepository) Listar(ctx context.Context) ([]*comision.Listado, error) {
	cursor, err := r.db.Collection(comision.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener comisiones: %w", err)
	}

	var comisiones []*comision.Comision
	if err := cursor.All(ctx, &comisiones); err != nil {
		return nil, fmt.Errorf("error al decodificar comisiones: %w", err)
	}

	listados := make([]*comision.Listado, len(comisiones))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range comisiones {
		i, c := i, c
		g.Go(func() error {
			listados[i] = denormalizarComision(gctx, r.res, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listados, nil
}

// denormalizarComision resuelve la etiqueta del método de pago
func denormalizarComision(ctx context.Context, res resolvedor, c *comision.Comision) *comision.Listado {
	listado := &comision.Listado{
		Comision:         *c,
		MetodoPagoNombre: SinMetodoPago,
	}

	if !c.IDMetodoPago.EsVacia() {
		var m metodopago.MetodoPago
		if err := res.resolver(ctx, c.IDMetodoPago.ConColeccionPorDefecto(metodopago.Coleccion), &m); err == nil {
			if m.Metodo != "" {
				listado.MetodoPagoNombre = m.Metodo
			} else {
				listado.MetodoPagoNombre = metodopago.NombreDesconocido
			}
		}
	}

	return listado
}

// BuscarPorID implementa comision.Repository.BuscarPorID
func (r *ComisionRepository) BuscarPorID(ctx context.Context, id string) (*comision.Comision, error) {
	var c comision.Comision
	err := r.db.Collection(comision.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrComisionNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar comisión: %w", err)
	}
	return &c, nil
}

// Crear implementa comision.Repository.Crear con inserción atómica por _id
func (r *ComisionRepository) Crear(ctx context.Context, c *comision.Comision) error {
	_, err := r.db.Collection(comision.Coleccion).InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return ErrComisionYaExiste
	}
	if err != nil {
		return fmt.Errorf("error al crear la comisión: %w", err)
	}
	return nil
}

// Actualizar implementa comision.Repository.Actualizar
func (r *ComisionRepository) Actualizar(ctx context.Context, id string, cambios comision.Actualizacion) error {
	campos := bson.M{}
	if cambios.Porcentaje != nil {
		campos["Porcentaje"] = *cambios.Porcentaje
	}
	if cambios.MetodoPagoID != nil {
		campos["ID_MetodoPago"] = docref.Nueva(metodopago.Coleccion, *cambios.MetodoPagoID)
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(comision.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar la comisión: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrComisionNoEncontrada
	}
	return nil
}

// Eliminar implementa comision.Repository.Eliminar
func (r *ComisionRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(comision.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar la comisión: %w", err)
	}
	return nil
}
