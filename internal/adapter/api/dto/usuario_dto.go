package dto

import "github.com/acgomezu/panel-comercio/internal/domain/usuario"

// UsuarioRequest son los datos del formulario de usuario
type UsuarioRequest struct {
	Nombre    string   `json:"nombre"`
	Apellido  string   `json:"apellido"`
	Correo    string   `json:"correo"`
	Celular   string   `json:"celular"`
	Direccion string   `json:"direccion"`
	Roles     []string `json:"roles"`
}

// UsuarioUpdateRequest es el parche parcial del usuario: los campos ausentes
// no se tocan.
type UsuarioUpdateRequest struct {
	Nombre    *string  `json:"nombre"`
	Apellido  *string  `json:"apellido"`
	Correo    *string  `json:"correo"`
	Celular   *string  `json:"celular"`
	Direccion *string  `json:"direccion"`
	Roles     []string `json:"roles"`
}

// UsuarioResponse es la representación de un usuario en las respuestas
type UsuarioResponse struct {
	ID        string   `json:"id"`
	Nombre    string   `json:"nombre"`
	Apellido  string   `json:"apellido"`
	Correo    string   `json:"correo"`
	Celular   string   `json:"celular"`
	Direccion string   `json:"direccion"`
	Roles     []string `json:"roles"`
}

// UsuarioListResponse es la lista completa de usuarios
type UsuarioListResponse struct {
	Total    int               `json:"total"`
	Usuarios []UsuarioResponse `json:"usuarios"`
}

// RolesDominio convierte los roles del request al tipo de dominio
func (r *UsuarioRequest) RolesDominio() []usuario.Rol {
	return aRoles(r.Roles)
}

// RolesDominio convierte los roles del parche al tipo de dominio; nil se
// conserva como "no tocar".
func (r *UsuarioUpdateRequest) RolesDominio() []usuario.Rol {
	if r.Roles == nil {
		return nil
	}
	return aRoles(r.Roles)
}

func aRoles(roles []string) []usuario.Rol {
	convertidos := make([]usuario.Rol, 0, len(roles))
	for _, rol := range roles {
		convertidos = append(convertidos, usuario.Rol(rol))
	}
	return convertidos
}

// ToUsuarioResponse convierte un usuario de dominio a su respuesta
func ToUsuarioResponse(u *usuario.Usuario) UsuarioResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, rol := range u.Roles {
		roles = append(roles, string(rol))
	}

	return UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Correo:    u.Correo,
		Celular:   u.Celular,
		Direccion: u.Direccion,
		Roles:     roles,
	}
}

// ToUsuarioListResponse convierte la lista completa de usuarios
func ToUsuarioListResponse(usuarios []*usuario.Usuario) UsuarioListResponse {
	respuestas := make([]UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		respuestas = append(respuestas, ToUsuarioResponse(u))
	}
	return UsuarioListResponse{
		Total:    len(respuestas),
		Usuarios: respuestas,
	}
}
