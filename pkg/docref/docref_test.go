package docref

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type portador struct {
	Ref Referencia `bson:"ref"`
}

func TestUnmarshalDesdeDocumento(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"ref": bson.M{"coleccion": "usuarios", "id": "u-1"}})
	require.NoError(t, err)

	var p portador
	require.NoError(t, bson.Unmarshal(doc, &p))
	require.Equal(t, Referencia{Coleccion: "usuarios", ID: "u-1"}, p.Ref)
	require.False(t, p.Ref.EsCruda())
}

func TestUnmarshalDesdeIDCrudo(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"ref": "tp-estandar"})
	require.NoError(t, err)

	var p portador
	require.NoError(t, bson.Unmarshal(doc, &p))
	require.True(t, p.Ref.EsCruda())
	require.Equal(t, "tp-estandar", p.Ref.ID)

	normalizada := p.Ref.ConColeccionPorDefecto("tipo_producto")
	require.Equal(t, Referencia{Coleccion: "tipo_producto", ID: "tp-estandar"}, normalizada)
}

func TestUnmarshalDesdeDBRef(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"ref": bson.M{"$ref": "Metodo_Pago", "$id": "MP-01"}})
	require.NoError(t, err)

	var p portador
	require.NoError(t, bson.Unmarshal(doc, &p))
	require.Equal(t, Referencia{Coleccion: "Metodo_Pago", ID: "MP-01"}, p.Ref)
}

func TestUnmarshalNulo(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"ref": nil})
	require.NoError(t, err)

	var p portador
	require.NoError(t, bson.Unmarshal(doc, &p))
	require.True(t, p.Ref.EsVacia())
}

func TestMarshalEsCanonico(t *testing.T) {
	original := portador{Ref: Nueva("productos", "p-9")}
	doc, err := bson.Marshal(original)
	require.NoError(t, err)

	var crudo bson.M
	require.NoError(t, bson.Unmarshal(doc, &crudo))
	interno, ok := crudo["ref"].(bson.M)
	require.True(t, ok, "la referencia debe persistirse como documento")
	require.Equal(t, "productos", interno["coleccion"])
	require.Equal(t, "p-9", interno["id"])

	var leida portador
	require.NoError(t, bson.Unmarshal(doc, &leida))
	require.Equal(t, original.Ref, leida.Ref)
}

func TestConColeccionPorDefectoNoPisaCanonica(t *testing.T) {
	ref := Nueva("usuarios", "u-2").ConColeccionPorDefecto("productos")
	require.Equal(t, "usuarios", ref.Coleccion)
}
