package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/acgomezu/panel-comercio/internal/domain/descuento"
	"github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Errores específicos del repositorio de descuentos
var (
	ErrDescuentoNoEncontrado = errors.New("descuento no encontrado")
)

// DescuentoRepository implementa descuento.Repository sobre la base documental
type DescuentoRepository struct {
	db  *mongo.Database
	res resolvedor
}

// NewDescuentoRepository crea una nueva instancia de DescuentoRepository
func NewDescuentoRepository(db *mongo.Database) descuento.Repository {
	return &DescuentoRepository{db: db, res: resolvedorMongo{db: db}}
}

// Listar implementa descuento.Repository.Listar resolviendo el tipo de cada
// descuento en paralelo.
func (r *DescuentoRepository) Listar(ctx context.Context) ([]*descuento.Listado, error) {
	cursor, err := r.db.Collection(descuento.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener descuentos: %w", err)
	}

	var descuentos []*descuento.Descuento
	if err := cursor.All(ctx, &descuentos); err != nil {
		return nil, fmt.Errorf("error al decodificar descuentos: %w", err)
	}

	listados := make([]*descuento.Listado, len(descuentos))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range descuentos {
		i, d := i, d
		g.Go(func() error {
			listados[i] = denormalizarDescuento(gctx, r.res, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listados, nil
}

// denormalizarDescuento resuelve el tipo de producto a su nombre. El campo
// Id_Tipo puede venir como referencia o como id crudo según la ruta de
// escritura que lo generó; ambas formas resuelven igual.
func denormalizarDescuento(ctx context.Context, res resolvedor, d *descuento.Descuento) *descuento.Listado {
	listado := &descuento.Listado{
		Descuento:  *d,
		TipoNombre: descuento.TipoDesconocido,
	}

	if !d.IDTipo.EsVacia() {
		var t tipoproducto.TipoProducto
		if err := res.resolver(ctx, d.IDTipo.ConColeccionPorDefecto(tipoproducto.Coleccion), &t); err == nil {
			if t.Nombre != "" {
				listado.TipoNombre = t.Nombre
			} else {
				listado.TipoNombre = tipoproducto.NombreDesconocido
			}
		}
	}

	return listado
}

// BuscarPorID implementa descuento.Repository.BuscarPorID
func (r *DescuentoRepository) BuscarPorID(ctx context.Context, id string) (*descuento.Descuento, error) {
	var d descuento.Descuento
	err := r.db.Collection(descuento.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDescuentoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar descuento: %w", err)
	}
	return &d, nil
}

// Crear implementa descuento.Repository.Crear
func (r *DescuentoRepository) Crear(ctx context.Context, d *descuento.Descuento) (string, error) {
	d.ID = uuid.NewString()

	if _, err := r.db.Collection(descuento.Coleccion).InsertOne(ctx, d); err != nil {
		return "", fmt.Errorf("error al crear el descuento: %w", err)
	}
	return d.ID, nil
}

// Actualizar implementa descuento.Repository.Actualizar
func (r *DescuentoRepository) Actualizar(ctx context.Context, id string, cambios descuento.Actualizacion) error {
	campos := bson.M{}
	if cambios.FechaInicio != nil {
		campos["FechaInicio"] = *cambios.FechaInicio
	}
	if cambios.FechaFinal != nil {
		campos["FechaFinal"] = *cambios.FechaFinal
	}
	if cambios.Porcentaje != nil {
		campos["Porcentaje"] = *cambios.Porcentaje
	}
	if cambios.TipoID != nil {
		campos["Id_Tipo"] = docref.Nueva(tipoproducto.Coleccion, *cambios.TipoID)
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(descuento.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar el descuento: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrDescuentoNoEncontrado
	}
	return nil
}

// Eliminar implementa descuento.Repository.Eliminar
func (r *DescuentoRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(descuento.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar el descuento: %w", err)
	}
	return nil
}
