package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	usuariodomain "github.com/acgomezu/panel-comercio/internal/domain/usuario"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// UsuarioController gestiona las peticiones relacionadas con usuarios
type UsuarioController struct {
	usuarioRepo usuariodomain.Repository
	logger      logger.Logger
}

// NewUsuarioController crea una nueva instancia de UsuarioController
func NewUsuarioController(usuarioRepo usuariodomain.Repository, logger logger.Logger) *UsuarioController {
	return &UsuarioController{
		usuarioRepo: usuarioRepo,
		logger:      logger,
	}
}

// Create crea un nuevo usuario
// @Summary Crear usuario
// @Description Crea un nuevo usuario con sus roles; sin roles queda como Cliente
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param usuario body dto.UsuarioRequest true "Datos del usuario"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [post]
func (c *UsuarioController) Create(ctx *gin.Context) {
	var req dto.UsuarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	u, err := usuariodomain.NuevoUsuario(req.Nombre, req.Apellido, req.Correo, req.Celular, req.Direccion, req.RolesDominio())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el usuario", err.Error()))
		return
	}

	id, err := c.usuarioRepo.Crear(ctx, u)
	if err != nil {
		c.logger.Error("error al guardar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el usuario", err.Error()))
		return
	}
	u.ID = id

	ctx.JSON(http.StatusCreated, dto.ToUsuarioResponse(u))
}

// Get retorna un usuario por su ID
// @Summary Buscar usuario
// @Description Retorna los datos de un usuario por su ID
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [get]
func (c *UsuarioController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	u, err := c.usuarioRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuario no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsuarioResponse(u))
}

// List retorna la lista de usuarios
// @Summary Listar usuarios
// @Description Retorna la lista completa de usuarios
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UsuarioListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [get]
func (c *UsuarioController) List(ctx *gin.Context) {
	usuarios, err := c.usuarioRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar los usuarios", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los usuarios", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsuarioListResponse(usuarios))
}

// Update actualiza un usuario
// @Summary Actualizar usuario
// @Description Aplica un parche parcial sobre el usuario; los campos ausentes no se tocan
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del usuario"
// @Param usuario body dto.UsuarioUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [put]
func (c *UsuarioController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UsuarioUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := usuariodomain.Actualizacion{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Correo:    req.Correo,
		Celular:   req.Celular,
		Direccion: req.Direccion,
		Roles:     req.RolesDominio(),
	}

	if err := c.usuarioRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuario no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el usuario", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("usuario actualizado", nil))
}

// Delete elimina un usuario
// @Summary Eliminar usuario
// @Description Elimina un usuario; la operación es idempotente
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del usuario"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [delete]
func (c *UsuarioController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.usuarioRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el usuario", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
