package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/acgomezu/panel-comercio/internal/domain/producto"
	"github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"
	"github.com/acgomezu/panel-comercio/internal/domain/usuario"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Errores específicos del repositorio de productos
var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
)

// ProductoRepository implementa producto.Repository sobre la base documental
type ProductoRepository struct {
	db  *mongo.Database
	res resolvedor
}

// NewProductoRepository crea una nueva instancia de ProductoRepository
func NewProductoRepository(db *mongo.Database) producto.Repository {
	return &ProductoRepository{db: db, res: resolvedorMongo{db: db}}
}

// Listar implementa producto.Repository.Listar. Las resoluciones de
// referencias de todos los productos se lanzan en paralelo y se esperan
// juntas; cada una escribe en una posición distinta del resultado.
func (r *ProductoRepository) Listar(ctx context.Context) ([]*producto.Listado, error) {
	cursor, err := r.db.Collection(producto.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener productos: %w", err)
	}

	var productos []*producto.Producto
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("error al decodificar productos: %w", err)
	}

	listados := make([]*producto.Listado, len(productos))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range productos {
		i, p := i, p
		g.Go(func() error {
			listados[i] = denormalizarProducto(gctx, r.res, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return listados, nil
}

// denormalizarProducto resuelve proveedor y tipo a nombres visibles. Las
// referencias que no resuelven dejan la etiqueta fija de cada campo.
func denormalizarProducto(ctx context.Context, res resolvedor, p *producto.Producto) *producto.Listado {
	listado := &producto.Listado{
		Producto:        *p,
		ProveedorNombre: producto.SinProveedor,
		TipoNombre:      producto.SinTipo,
	}

	if !p.Proveedor.EsVacia() {
		var u usuario.Usuario
		if err := res.resolver(ctx, p.Proveedor.ConColeccionPorDefecto(usuario.Coleccion), &u); err == nil {
			listado.ProveedorNombre = u.NombreParaMostrar()
		}
	}

	if !p.Tipo.EsVacia() {
		var t tipoproducto.TipoProducto
		if err := res.resolver(ctx, p.Tipo.ConColeccionPorDefecto(tipoproducto.Coleccion), &t); err == nil {
			if t.Nombre != "" {
				listado.TipoNombre = t.Nombre
			} else {
				listado.TipoNombre = tipoproducto.NombreDesconocido
			}
		}
	}

	return listado
}

// BuscarPorID implementa producto.Repository.BuscarPorID
func (r *ProductoRepository) BuscarPorID(ctx context.Context, id string) (*producto.Producto, error) {
	var p producto.Producto
	err := r.db.Collection(producto.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar producto: %w", err)
	}
	return &p, nil
}

// Crear implementa producto.Repository.Crear
func (r *ProductoRepository) Crear(ctx context.Context, p *producto.Producto) (string, error) {
	p.ID = uuid.NewString()

	if _, err := r.db.Collection(producto.Coleccion).InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("error al crear producto: %w", err)
	}
	return p.ID, nil
}

// Actualizar implementa producto.Repository.Actualizar. Toda referencia
// presente en el parche se reenvuelve en una referencia canónica fresca.
func (r *ProductoRepository) Actualizar(ctx context.Context, id string, cambios producto.Actualizacion) error {
	campos := bson.M{}
	if cambios.Nombre != nil {
		campos["nombre"] = *cambios.Nombre
	}
	if cambios.Precio != nil {
		campos["precio"] = *cambios.Precio
	}
	if cambios.ProveedorID != nil {
		campos["proveedor"] = docref.Nueva(usuario.Coleccion, *cambios.ProveedorID)
	}
	if cambios.TipoID != nil {
		campos["tipo"] = docref.Nueva(tipoproducto.Coleccion, *cambios.TipoID)
	}
	if len(campos) == 0 {
		return nil
	}

	res, err := r.db.Collection(producto.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos})
	if err != nil {
		return fmt.Errorf("error al actualizar producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// Eliminar implementa producto.Repository.Eliminar
func (r *ProductoRepository) Eliminar(ctx context.Context, id string) error {
	if _, err := r.db.Collection(producto.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar producto: %w", err)
	}
	return nil
}
