package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/acgomezu/panel-comercio/pkg/docref"
)

// errDocumentoNoEncontrado señala que la referencia apunta a un documento inexistente
var errDocumentoNoEncontrado = errors.New("documento no encontrado")

// resolvedor sigue una referencia hasta su documento. La denormalización de
// los listados depende solo de esta interfaz, lo que permite ejercitarla sin
// un servidor de documentos.
type resolvedor interface {
	resolver(ctx context.Context, ref docref.Referencia, destino interface{}) error
}

// resolvedorMongo resuelve referencias contra la base documental
type resolvedorMongo struct {
	db *mongo.Database
}

func (r resolvedorMongo) resolver(ctx context.Context, ref docref.Referencia, destino interface{}) error {
	if ref.EsVacia() || ref.Coleccion == "" {
		return docref.ErrReferenciaVacia
	}

	err := r.db.Collection(ref.Coleccion).FindOne(ctx, bson.M{"_id": ref.ID}).Decode(destino)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errDocumentoNoEncontrado
	}
	if err != nil {
		return fmt.Errorf("error al resolver la referencia %s: %w", ref, err)
	}
	return nil
}

// existeDocumento verifica la presencia de un documento por id
func existeDocumento(ctx context.Context, db *mongo.Database, coleccion, id string) (bool, error) {
	cantidad, err := db.Collection(coleccion).CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error al verificar existencia en %s: %w", coleccion, err)
	}
	return cantidad > 0, nil
}
