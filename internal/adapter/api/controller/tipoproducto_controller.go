package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	tipodomain "github.com/acgomezu/panel-comercio/internal/domain/tipoproducto"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// TipoProductoController gestiona las peticiones relacionadas con tipos de producto
type TipoProductoController struct {
	tipoRepo tipodomain.Repository
	logger   logger.Logger
}

// NewTipoProductoController crea una nueva instancia de TipoProductoController
func NewTipoProductoController(tipoRepo tipodomain.Repository, logger logger.Logger) *TipoProductoController {
	return &TipoProductoController{
		tipoRepo: tipoRepo,
		logger:   logger,
	}
}

// Create crea un nuevo tipo de producto
// @Summary Crear tipo de producto
// @Description Crea un tipo de producto con el id elegido por el operador
// @Tags tipos-producto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tipo body dto.TipoProductoRequest true "Datos del tipo de producto"
// @Success 201 {object} dto.TipoProductoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tipos-producto [post]
func (c *TipoProductoController) Create(ctx *gin.Context) {
	var req dto.TipoProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	t, err := tipodomain.NuevoTipoProducto(req.ID, req.Nombre)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el tipo de producto", err.Error()))
		return
	}

	if err := c.tipoRepo.Crear(ctx, t); err != nil {
		if errors.Is(err, repository.ErrTipoProductoYaExiste) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "el tipo de producto ya existe", err.Error()))
			return
		}
		c.logger.Error("error al guardar el tipo de producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el tipo de producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTipoProductoResponse(t))
}

// Get retorna un tipo de producto por su ID
// @Summary Buscar tipo de producto
// @Description Retorna los datos de un tipo de producto por su ID
// @Tags tipos-producto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del tipo de producto"
// @Success 200 {object} dto.TipoProductoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tipos-producto/{id} [get]
func (c *TipoProductoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	t, err := c.tipoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTipoProductoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "tipo de producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el tipo de producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el tipo de producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTipoProductoResponse(t))
}

// List retorna la lista de tipos de producto
// @Summary Listar tipos de producto
// @Description Retorna la lista completa de tipos de producto
// @Tags tipos-producto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.TipoProductoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tipos-producto [get]
func (c *TipoProductoController) List(ctx *gin.Context) {
	tipos, err := c.tipoRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar los tipos de producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los tipos de producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTipoProductoListResponse(tipos))
}

// Update actualiza un tipo de producto
// @Summary Actualizar tipo de producto
// @Description Aplica un parche parcial sobre el tipo de producto
// @Tags tipos-producto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del tipo de producto"
// @Param tipo body dto.TipoProductoUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tipos-producto/{id} [put]
func (c *TipoProductoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.TipoProductoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := tipodomain.Actualizacion{Nombre: req.Nombre}

	if err := c.tipoRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrTipoProductoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "tipo de producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el tipo de producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el tipo de producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("tipo de producto actualizado", nil))
}

// Delete elimina un tipo de producto
// @Summary Eliminar tipo de producto
// @Description Elimina un tipo de producto; la operación es idempotente
// @Tags tipos-producto
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del tipo de producto"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /tipos-producto/{id} [delete]
func (c *TipoProductoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.tipoRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar el tipo de producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el tipo de producto", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
