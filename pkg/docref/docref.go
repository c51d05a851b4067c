package docref

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	// ErrReferenciaVacia es retornado cuando se intenta resolver una referencia sin identificador
	ErrReferenciaVacia = errors.New("referencia vacía")
	// ErrFormatoInvalido es retornado cuando el valor almacenado no es ni un id ni una referencia
	ErrFormatoInvalido = errors.New("formato de referencia inválido")
)

// Referencia apunta a un documento de otra colección (colección + identificador).
//
// En la base algunos campos de referencia fueron escritos como documento
// {coleccion, id} y otros como un id crudo (string). Ambas formas se aceptan
// al leer; la forma canónica se obtiene una sola vez en el borde del adaptador
// con ConColeccionPorDefecto. Al escribir siempre se persiste el documento.
type Referencia struct {
	Coleccion string `json:"coleccion"`
	ID        string `json:"id"`
}

// Nueva crea una referencia canónica a un documento
func Nueva(coleccion, id string) Referencia {
	return Referencia{Coleccion: coleccion, ID: id}
}

// EsVacia indica si la referencia no apunta a ningún documento
func (r Referencia) EsVacia() bool {
	return r.ID == ""
}

// EsCruda indica si la referencia fue leída como id crudo, sin colección
func (r Referencia) EsCruda() bool {
	return r.ID != "" && r.Coleccion == ""
}

// ConColeccionPorDefecto normaliza una referencia cruda asignándole la
// colección indicada. Las referencias ya canónicas se devuelven sin cambios.
func (r Referencia) ConColeccionPorDefecto(coleccion string) Referencia {
	if r.EsCruda() {
		r.Coleccion = coleccion
	}
	return r
}

func (r Referencia) String() string {
	return fmt.Sprintf("%s/%s", r.Coleccion, r.ID)
}

// referenciaBSON es la forma persistida de una referencia. Se aceptan también
// las llaves $ref/$id de documentos migrados desde otros clientes.
type referenciaBSON struct {
	Coleccion string `bson:"coleccion,omitempty"`
	ID        string `bson:"id,omitempty"`
	Ref       string `bson:"$ref,omitempty"`
	RefID     string `bson:"$id,omitempty"`
}

// MarshalBSONValue implementa bson.ValueMarshaler
func (r Referencia) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(referenciaBSON{Coleccion: r.Coleccion, ID: r.ID})
}

// UnmarshalBSONValue implementa bson.ValueUnmarshaler aceptando las dos formas
// almacenadas: un string con el id crudo o un documento de referencia.
func (r *Referencia) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		*r = Referencia{}
		return nil
	case bsontype.String:
		*r = Referencia{ID: raw.StringValue()}
		return nil
	case bsontype.EmbeddedDocument:
		var doc referenciaBSON
		if err := raw.Unmarshal(&doc); err != nil {
			return err
		}
		ref := Referencia{Coleccion: doc.Coleccion, ID: doc.ID}
		if ref.ID == "" && doc.RefID != "" {
			ref = Referencia{Coleccion: doc.Ref, ID: doc.RefID}
		}
		*r = ref
		return nil
	default:
		return fmt.Errorf("%w: tipo bson %s", ErrFormatoInvalido, t)
	}
}
