package controller

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/pkg/jwt"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// duración de vigencia del token del administrador
const vigenciaToken = 24 * time.Hour

// AuthController gestiona el inicio de sesión del administrador del panel
type AuthController struct {
	logger logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(logger logger.Logger) *AuthController {
	return &AuthController{logger: logger}
}

// Login autentica al administrador del panel
// @Summary Iniciar sesión
// @Description Valida las credenciales del administrador y emite un token
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciales body dto.LoginRequest true "Credenciales del administrador"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	correoAdmin := os.Getenv("ADMIN_EMAIL")
	claveHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if correoAdmin == "" || claveHash == "" {
		c.logger.Error("credenciales del administrador no configuradas en el ambiente")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "autenticación no configurada", ""))
		return
	}

	if req.Correo != correoAdmin || bcrypt.CompareHashAndPassword([]byte(claveHash), []byte(req.Clave)) != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
		return
	}

	token, err := jwt.GenerarToken(req.Correo, vigenciaToken)
	if err != nil {
		c.logger.Error("error al generar el token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar el token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		ExpiraEn: int64(vigenciaToken.Seconds()),
	})
}
