package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/acgomezu/panel-comercio/internal/domain/factura"
	"github.com/acgomezu/panel-comercio/internal/domain/metodopago"
	"github.com/acgomezu/panel-comercio/internal/domain/producto"
	"github.com/acgomezu/panel-comercio/internal/domain/usuario"
	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// Errores específicos del repositorio de facturas. Cada referencia del
// encabezado tiene su propio error para que el mensaje nombre qué falta.
var (
	ErrFacturaNoEncontrada = errors.New("la factura no existe")
	ErrFacturaYaExiste     = errors.New("ya existe una factura con este ID")
	ErrClienteNoExiste     = errors.New("el cliente seleccionado no existe")
	ErrVendedorNoExiste    = errors.New("el vendedor seleccionado no existe")
	ErrMetodoPagoNoExiste  = errors.New("el método de pago seleccionado no existe")
	ErrProductoNoExiste    = errors.New("el producto no existe")
)

// FacturaRepository implementa factura.Repository sobre la base documental
type FacturaRepository struct {
	db    *mongo.Database
	res   resolvedor
	ahora func() time.Time
}

// NewFacturaRepository crea una nueva instancia de FacturaRepository
func NewFacturaRepository(db *mongo.Database) factura.Repository {
	return &FacturaRepository{
		db:    db,
		res:   resolvedorMongo{db: db},
		ahora: time.Now,
	}
}

// Listar implementa factura.Repository.Listar. Cada factura se denormaliza en
// paralelo y el resultado se ordena por fecha descendente; las facturas sin
// fecha legible quedan al final.
func (r *FacturaRepository) Listar(ctx context.Context) ([]*factura.Listada, error) {
	cursor, err := r.db.Collection(factura.Coleccion).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error al obtener facturas: %w", err)
	}

	var facturas []*factura.Factura
	if err := cursor.All(ctx, &facturas); err != nil {
		return nil, fmt.Errorf("error al decodificar facturas: %w", err)
	}

	listadas := make([]*factura.Listada, len(facturas))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range facturas {
		i, f := i, f
		g.Go(func() error {
			listadas[i] = denormalizarFactura(gctx, r.res, f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	factura.OrdenarPorFecha(listadas)
	return listadas, nil
}

// BuscarPorID implementa factura.Repository.BuscarPorID con la misma
// denormalización que Listar.
func (r *FacturaRepository) BuscarPorID(ctx context.Context, id string) (*factura.Listada, error) {
	var f factura.Factura
	err := r.db.Collection(factura.Coleccion).FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrFacturaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar la factura: %w", err)
	}
	return denormalizarFactura(ctx, r.res, &f), nil
}

// denormalizarFactura resuelve las referencias del encabezado a nombres
// visibles y completa el nombre de producto de las líneas que no guardaron
// la copia al crearse.
func denormalizarFactura(ctx context.Context, res resolvedor, f *factura.Factura) *factura.Listada {
	listada := &factura.Listada{
		Factura:          *f,
		ClienteNombre:    factura.SinCliente,
		VendedorNombre:   factura.SinVendedor,
		MetodoPagoNombre: factura.SinMetodo,
	}

	if !f.Cliente.EsVacia() {
		var u usuario.Usuario
		if err := res.resolver(ctx, f.Cliente.ConColeccionPorDefecto(usuario.Coleccion), &u); err == nil {
			listada.ClienteNombre = u.NombreParaMostrar()
		}
	}

	if !f.Vendedor.EsVacia() {
		var u usuario.Usuario
		if err := res.resolver(ctx, f.Vendedor.ConColeccionPorDefecto(usuario.Coleccion), &u); err == nil {
			listada.VendedorNombre = u.NombreParaMostrar()
		}
	}

	if !f.MetodoPago.EsVacia() {
		var m metodopago.MetodoPago
		if err := res.resolver(ctx, f.MetodoPago.ConColeccionPorDefecto(metodopago.Coleccion), &m); err == nil {
			if m.Metodo != "" {
				listada.MetodoPagoNombre = m.Metodo
			} else {
				listada.MetodoPagoNombre = metodopago.NombreDesconocido
			}
		}
	}

	detalles := make([]factura.Detalle, len(f.Detalles))
	copy(detalles, f.Detalles)
	for i := range detalles {
		if detalles[i].Producto != "" || detalles[i].IDProducto.EsVacia() {
			continue
		}
		detalles[i].Producto = factura.ProductoDesconocido
		var p producto.Producto
		if err := res.resolver(ctx, detalles[i].IDProducto.ConColeccionPorDefecto(producto.Coleccion), &p); err == nil && p.Nombre != "" {
			detalles[i].Producto = p.Nombre
		}
	}
	listada.Detalles = detalles

	return listada
}

// Crear implementa factura.Repository.Crear. Las verificaciones de
// existencia del encabezado se lanzan juntas; la escritura final es una
// inserción atómica por _id, por lo que un id repetido produce el error de
// clave duplicada sin ventana entre verificación y escritura.
func (r *FacturaRepository) Crear(ctx context.Context, n *factura.Nueva) (string, error) {
	if err := n.Validar(); err != nil {
		return "", err
	}

	if err := r.verificarEncabezado(ctx, n.ClienteID, n.VendedorID, n.MetodoPagoID); err != nil {
		return "", err
	}

	detalles, err := r.resolverDetalles(ctx, factura.DetallesValidos(n.Detalles))
	if err != nil {
		return "", err
	}

	id := n.ID
	if id == "" {
		id = factura.GenerarID(r.ahora())
	}

	doc := factura.Factura{
		ID:            id,
		Estado:        n.Estado,
		Fecha:         n.Fecha,
		Total:         n.Total,
		Cliente:       docref.Nueva(usuario.Coleccion, n.ClienteID),
		Vendedor:      docref.Nueva(usuario.Coleccion, n.VendedorID),
		MetodoPago:    docref.Nueva(metodopago.Coleccion, n.MetodoPagoID),
		Detalles:      detalles,
		FechaCreacion: r.ahora(),
	}

	_, err = r.db.Collection(factura.Coleccion).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return "", ErrFacturaYaExiste
	}
	if err != nil {
		return "", fmt.Errorf("error al crear la factura: %w", err)
	}
	return id, nil
}

// Actualizar implementa factura.Repository.Actualizar. Solo los campos
// presentes en el parche se tocan; cada referencia enviada se verifica y se
// reenvuelve antes de aplicarse.
func (r *FacturaRepository) Actualizar(ctx context.Context, id string, cambios factura.Actualizacion) error {
	existe, err := existeDocumento(ctx, r.db, factura.Coleccion, id)
	if err != nil {
		return err
	}
	if !existe {
		return ErrFacturaNoEncontrada
	}

	campos := bson.M{"FechaModificacion": r.ahora()}

	if cambios.Estado != nil {
		if !factura.EstadoValido(*cambios.Estado) {
			return factura.ErrEstadoInvalido
		}
		campos["Estado"] = *cambios.Estado
	}
	if cambios.Fecha != nil {
		campos["Fecha"] = *cambios.Fecha
	}
	if cambios.Total != nil {
		campos["Total"] = *cambios.Total
	}

	if cambios.ClienteID != nil {
		if err := r.verificarReferencia(ctx, usuario.Coleccion, *cambios.ClienteID, ErrClienteNoExiste); err != nil {
			return err
		}
		campos["Cliente"] = docref.Nueva(usuario.Coleccion, *cambios.ClienteID)
	}
	if cambios.VendedorID != nil {
		if err := r.verificarReferencia(ctx, usuario.Coleccion, *cambios.VendedorID, ErrVendedorNoExiste); err != nil {
			return err
		}
		campos["Vendedor"] = docref.Nueva(usuario.Coleccion, *cambios.VendedorID)
	}
	if cambios.MetodoPagoID != nil {
		if err := r.verificarReferencia(ctx, metodopago.Coleccion, *cambios.MetodoPagoID, ErrMetodoPagoNoExiste); err != nil {
			return err
		}
		campos["MetodoPago"] = docref.Nueva(metodopago.Coleccion, *cambios.MetodoPagoID)
	}

	if cambios.Detalles != nil {
		validos := factura.DetallesValidos(cambios.Detalles)
		if len(validos) == 0 {
			return factura.ErrSinDetallesValidos
		}
		detalles, err := r.resolverDetalles(ctx, validos)
		if err != nil {
			return err
		}
		campos["Detalles"] = detalles
	}

	if _, err := r.db.Collection(factura.Coleccion).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": campos}); err != nil {
		return fmt.Errorf("error al actualizar la factura: %w", err)
	}
	return nil
}

// Eliminar implementa factura.Repository.Eliminar verificando la existencia
// antes de borrar para distinguir el caso ya-eliminado.
func (r *FacturaRepository) Eliminar(ctx context.Context, id string) error {
	existe, err := existeDocumento(ctx, r.db, factura.Coleccion, id)
	if err != nil {
		return err
	}
	if !existe {
		return ErrFacturaNoEncontrada
	}

	if _, err := r.db.Collection(factura.Coleccion).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("error al eliminar la factura: %w", err)
	}
	return nil
}

// verificarEncabezado comprueba en paralelo que cliente, vendedor y método de
// pago existan, nombrando en el error la referencia que falta.
func (r *FacturaRepository) verificarEncabezado(ctx context.Context, clienteID, vendedorID, metodoPagoID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.verificarReferencia(gctx, usuario.Coleccion, clienteID, ErrClienteNoExiste)
	})
	g.Go(func() error {
		return r.verificarReferencia(gctx, usuario.Coleccion, vendedorID, ErrVendedorNoExiste)
	})
	g.Go(func() error {
		return r.verificarReferencia(gctx, metodopago.Coleccion, metodoPagoID, ErrMetodoPagoNoExiste)
	})
	return g.Wait()
}

func (r *FacturaRepository) verificarReferencia(ctx context.Context, coleccion, id string, faltante error) error {
	existe, err := existeDocumento(ctx, r.db, coleccion, id)
	if err != nil {
		return err
	}
	if !existe {
		return faltante
	}
	return nil
}

// resolverDetalles verifica el producto de cada línea y completa la copia del
// nombre cuando el formulario no la trajo. El subtotal se persiste tal como
// lo calculó el cliente.
func (r *FacturaRepository) resolverDetalles(ctx context.Context, detalles []factura.NuevoDetalle) ([]factura.Detalle, error) {
	resueltos := make([]factura.Detalle, len(detalles))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range detalles {
		i, d := i, d
		g.Go(func() error {
			var p producto.Producto
			err := r.res.resolver(gctx, docref.Nueva(producto.Coleccion, d.ProductoID), &p)
			if errors.Is(err, errDocumentoNoEncontrado) {
				return fmt.Errorf("%w: %s", ErrProductoNoExiste, d.ProductoID)
			}
			if err != nil {
				return err
			}

			nombre := d.Producto
			if nombre == "" {
				nombre = p.Nombre
			}
			if nombre == "" {
				nombre = factura.ProductoSinNombre
			}

			resueltos[i] = factura.Detalle{
				Cantidad:       d.Cantidad,
				IDProducto:     docref.Nueva(producto.Coleccion, d.ProductoID),
				PrecioUnitario: d.PrecioUnitario,
				Producto:       nombre,
				Subtotal:       d.Subtotal,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resueltos, nil
}
