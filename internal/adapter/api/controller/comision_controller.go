package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	comisiondomain "github.com/acgomezu/panel-comercio/internal/domain/comision"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// ComisionController gestiona las peticiones relacionadas con comisiones
type ComisionController struct {
	comisionRepo comisiondomain.Repository
	logger       logger.Logger
}

// NewComisionController crea una nueva instancia de ComisionController
func NewComisionController(comisionRepo comisiondomain.Repository, logger logger.Logger) *ComisionController {
	return &ComisionController{
		comisionRepo: comisionRepo,
		logger:       logger,
	}
}

// Create crea una nueva comisión
// @Summary Crear comisión
// @Description Crea una comisión con el id elegido por el operador
// @Tags comisiones
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param comision body dto.ComisionRequest true "Datos de la comisión"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comisiones [post]
func (c *ComisionController) Create(ctx *gin.Context) {
	var req dto.ComisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	com, err := comisiondomain.NuevaComision(req.ID, req.Porcentaje, req.MetodoPagoID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear la comisión", err.Error()))
		return
	}

	if err := c.comisionRepo.Crear(ctx, com); err != nil {
		if errors.Is(err, repository.ErrComisionYaExiste) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "la comisión ya existe", err.Error()))
			return
		}
		c.logger.Error("error al guardar la comisión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar la comisión", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("comisión creada", gin.H{"id": com.ID}))
}

// Get retorna una comisión por su ID
// @Summary Buscar comisión
// @Description Retorna los datos crudos de una comisión por su ID
// @Tags comisiones
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la comisión"
// @Success 200 {object} comision.Comision
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comisiones/{id} [get]
func (c *ComisionController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	com, err := c.comisionRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComisionNoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "comisión no encontrada", err.Error()))
			return
		}
		c.logger.Error("error al buscar la comisión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar la comisión", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, com)
}

// List retorna la lista de comisiones
// @Summary Listar comisiones
// @Description Retorna la lista de comisiones con la etiqueta del método de pago resuelta
// @Tags comisiones
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ComisionListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comisiones [get]
func (c *ComisionController) List(ctx *gin.Context) {
	comisiones, err := c.comisionRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar las comisiones", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar las comisiones", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComisionListResponse(comisiones))
}

// Update actualiza una comisión
// @Summary Actualizar comisión
// @Description Aplica un parche parcial sobre la comisión
// @Tags comisiones
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la comisión"
// @Param comision body dto.ComisionUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comisiones/{id} [put]
func (c *ComisionController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ComisionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := comisiondomain.Actualizacion{
		Porcentaje:   req.Porcentaje,
		MetodoPagoID: req.MetodoPagoID,
	}

	if err := c.comisionRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrComisionNoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "comisión no encontrada", err.Error()))
			return
		}
		c.logger.Error("error al actualizar la comisión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar la comisión", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("comisión actualizada", nil))
}

// Delete elimina una comisión
// @Summary Eliminar comisión
// @Description Elimina una comisión; la operación es idempotente
// @Tags comisiones
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la comisión"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comisiones/{id} [delete]
func (c *ComisionController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.comisionRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar la comisión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar la comisión", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
