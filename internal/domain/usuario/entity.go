package usuario

import (
	"errors"
	"strings"
)

// Coleccion es el nombre de la colección de usuarios en la base documental
const Coleccion = "usuarios"

// NombreDesconocido es la etiqueta usada cuando un usuario no tiene nombre ni correo
const NombreDesconocido = "Sin nombre"

var (
	// ErrRolInvalido es retornado cuando un rol no pertenece al conjunto permitido
	ErrRolInvalido = errors.New("rol inválido")
)

// Rol es uno de los roles que puede tener un usuario dentro del comercio
type Rol string

const (
	RolCliente   Rol = "Cliente"
	RolProveedor Rol = "Proveedor"
	RolVendedor  Rol = "Vendedor"
)

// RolValido indica si el rol pertenece al conjunto permitido
func RolValido(r Rol) bool {
	switch r {
	case RolCliente, RolProveedor, RolVendedor:
		return true
	}
	return false
}

// Usuario representa una persona registrada en el comercio. Un mismo usuario
// puede actuar como cliente, proveedor y vendedor a la vez según sus roles.
type Usuario struct {
	ID        string `json:"id" bson:"_id"`
	Nombre    string `json:"nombre" bson:"Nombre"`
	Apellido  string `json:"apellido" bson:"Apellido"`
	Correo    string `json:"correo" bson:"Correo"`
	Celular   string `json:"celular" bson:"Celular"`
	Direccion string `json:"direccion" bson:"Direccion"`
	Roles     []Rol  `json:"roles" bson:"Roles"`
}

// NuevoUsuario crea un usuario aplicando los valores por defecto del panel:
// los campos de texto faltantes quedan vacíos y sin roles se asume Cliente.
func NuevoUsuario(nombre, apellido, correo, celular, direccion string, roles []Rol) (*Usuario, error) {
	for _, r := range roles {
		if !RolValido(r) {
			return nil, ErrRolInvalido
		}
	}
	if len(roles) == 0 {
		roles = []Rol{RolCliente}
	}

	return &Usuario{
		Nombre:    nombre,
		Apellido:  apellido,
		Correo:    correo,
		Celular:   celular,
		Direccion: direccion,
		Roles:     roles,
	}, nil
}

// NombreParaMostrar arma el nombre visible del usuario: nombre y apellido,
// si ambos faltan el correo, y como último recurso la etiqueta fija.
func (u *Usuario) NombreParaMostrar() string {
	nombre := strings.TrimSpace(u.Nombre + " " + u.Apellido)
	if nombre != "" {
		return nombre
	}
	if u.Correo != "" {
		return u.Correo
	}
	return NombreDesconocido
}

// Actualizacion es un parche parcial: solo los campos no nulos se aplican
// sobre el documento existente.
type Actualizacion struct {
	Nombre    *string
	Apellido  *string
	Correo    *string
	Celular   *string
	Direccion *string
	Roles     []Rol
}
