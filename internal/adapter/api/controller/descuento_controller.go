package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	descuentodomain "github.com/acgomezu/panel-comercio/internal/domain/descuento"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// DescuentoController gestiona las peticiones relacionadas con descuentos
type DescuentoController struct {
	descuentoRepo descuentodomain.Repository
	logger        logger.Logger
}

// NewDescuentoController crea una nueva instancia de DescuentoController
func NewDescuentoController(descuentoRepo descuentodomain.Repository, logger logger.Logger) *DescuentoController {
	return &DescuentoController{
		descuentoRepo: descuentoRepo,
		logger:        logger,
	}
}

// Create crea un nuevo descuento
// @Summary Crear descuento
// @Description Crea un descuento vigente entre dos fechas para un tipo de producto
// @Tags descuentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param descuento body dto.DescuentoRequest true "Datos del descuento"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /descuentos [post]
func (c *DescuentoController) Create(ctx *gin.Context) {
	var req dto.DescuentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	inicio, final, err := req.Fechas()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fechas inválidas", err.Error()))
		return
	}

	d, err := descuentodomain.NuevoDescuento(inicio, final, req.Porcentaje, req.TipoID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el descuento", err.Error()))
		return
	}

	id, err := c.descuentoRepo.Crear(ctx, d)
	if err != nil {
		c.logger.Error("error al guardar el descuento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el descuento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("descuento creado", gin.H{"id": id}))
}

// Get retorna un descuento por su ID
// @Summary Buscar descuento
// @Description Retorna los datos crudos de un descuento por su ID
// @Tags descuentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del descuento"
// @Success 200 {object} descuento.Descuento
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /descuentos/{id} [get]
func (c *DescuentoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	d, err := c.descuentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDescuentoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "descuento no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el descuento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el descuento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// List retorna la lista de descuentos
// @Summary Listar descuentos
// @Description Retorna la lista de descuentos con el nombre del tipo resuelto
// @Tags descuentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DescuentoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /descuentos [get]
func (c *DescuentoController) List(ctx *gin.Context) {
	descuentos, err := c.descuentoRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar los descuentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los descuentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDescuentoListResponse(descuentos))
}

// Update actualiza un descuento
// @Summary Actualizar descuento
// @Description Aplica un parche parcial sobre el descuento; los campos ausentes no se tocan
// @Tags descuentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del descuento"
// @Param descuento body dto.DescuentoUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /descuentos/{id} [put]
func (c *DescuentoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.DescuentoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := descuentodomain.Actualizacion{
		Porcentaje: req.Porcentaje,
		TipoID:     req.TipoID,
	}
	if req.FechaInicio != nil {
		inicio, err := dto.ParsearFecha(*req.FechaInicio)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fecha de inicio inválida", err.Error()))
			return
		}
		cambios.FechaInicio = &inicio
	}
	if req.FechaFinal != nil {
		final, err := dto.ParsearFecha(*req.FechaFinal)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fecha final inválida", err.Error()))
			return
		}
		cambios.FechaFinal = &final
	}

	if err := c.descuentoRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrDescuentoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "descuento no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el descuento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el descuento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("descuento actualizado", nil))
}

// Delete elimina un descuento
// @Summary Eliminar descuento
// @Description Elimina un descuento; la operación es idempotente
// @Tags descuentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del descuento"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /descuentos/{id} [delete]
func (c *DescuentoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.descuentoRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar el descuento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el descuento", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
