package dto

// LoginRequest son las credenciales del administrador del panel
type LoginRequest struct {
	Correo string `json:"correo" binding:"required"`
	Clave  string `json:"clave" binding:"required"`
}

// LoginResponse devuelve el token emitido y su vigencia en segundos
type LoginResponse struct {
	Token    string `json:"token"`
	ExpiraEn int64  `json:"expiraEn"`
}
