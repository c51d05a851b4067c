package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	facturadomain "github.com/acgomezu/panel-comercio/internal/domain/factura"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// FacturaController gestiona las peticiones relacionadas con facturas
type FacturaController struct {
	facturaRepo facturadomain.Repository
	logger      logger.Logger
}

// NewFacturaController crea una nueva instancia de FacturaController
func NewFacturaController(facturaRepo facturadomain.Repository, logger logger.Logger) *FacturaController {
	return &FacturaController{
		facturaRepo: facturaRepo,
		logger:      logger,
	}
}

// esReferenciaRota indica si el error señala una referencia del encabezado o
// de una línea que no existe en su colección
func esReferenciaRota(err error) bool {
	return errors.Is(err, repository.ErrClienteNoExiste) ||
		errors.Is(err, repository.ErrVendedorNoExiste) ||
		errors.Is(err, repository.ErrMetodoPagoNoExiste) ||
		errors.Is(err, repository.ErrProductoNoExiste)
}

// esFacturaInvalida indica si el error proviene de la validación del formulario
func esFacturaInvalida(err error) bool {
	return errors.Is(err, facturadomain.ErrDatosFaltantes) ||
		errors.Is(err, facturadomain.ErrEstadoInvalido) ||
		errors.Is(err, facturadomain.ErrSinDetallesValidos)
}

// Create crea una nueva factura
// @Summary Crear factura
// @Description Crea una factura verificando que cliente, vendedor, método de pago y productos existan
// @Tags facturas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param factura body dto.FacturaRequest true "Datos de la factura"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /facturas [post]
func (c *FacturaController) Create(ctx *gin.Context) {
	var req dto.FacturaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	nueva, err := req.ANueva()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fecha inválida", err.Error()))
		return
	}

	id, err := c.facturaRepo.Crear(ctx, nueva)
	if err != nil {
		switch {
		case esFacturaInvalida(err):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "factura inválida", err.Error()))
		case errors.Is(err, repository.ErrFacturaYaExiste):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "la factura ya existe", err.Error()))
		case esReferenciaRota(err):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "referencia inexistente", err.Error()))
		default:
			c.logger.Error("error al guardar la factura", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar la factura", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("factura creada", gin.H{"id": id}))
}

// Get retorna una factura por su ID
// @Summary Buscar factura
// @Description Retorna una factura con las referencias del encabezado resueltas a nombres
// @Tags facturas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la factura"
// @Success 200 {object} dto.FacturaResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /facturas/{id} [get]
func (c *FacturaController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	f, err := c.facturaRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFacturaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "factura no encontrada", err.Error()))
			return
		}
		c.logger.Error("error al buscar la factura", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar la factura", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFacturaResponse(f))
}

// List retorna la lista de facturas
// @Summary Listar facturas
// @Description Retorna las facturas ordenadas de la más reciente a la más antigua
// @Tags facturas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.FacturaListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /facturas [get]
func (c *FacturaController) List(ctx *gin.Context) {
	facturas, err := c.facturaRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar las facturas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar las facturas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFacturaListResponse(facturas))
}

// Update actualiza una factura
// @Summary Actualizar factura
// @Description Aplica un parche parcial; si se envían detalles se reemplaza la lista completa
// @Tags facturas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la factura"
// @Param factura body dto.FacturaUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /facturas/{id} [put]
func (c *FacturaController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.FacturaUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios, err := req.AActualizacion()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fecha inválida", err.Error()))
		return
	}

	if err := c.facturaRepo.Actualizar(ctx, id, *cambios); err != nil {
		switch {
		case errors.Is(err, repository.ErrFacturaNoEncontrada):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "factura no encontrada", err.Error()))
		case esFacturaInvalida(err):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "factura inválida", err.Error()))
		case esReferenciaRota(err):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "referencia inexistente", err.Error()))
		default:
			c.logger.Error("error al actualizar la factura", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar la factura", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("factura actualizada", nil))
}

// Delete elimina una factura
// @Summary Eliminar factura
// @Description Elimina una factura; si no existe responde 404
// @Tags facturas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la factura"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /facturas/{id} [delete]
func (c *FacturaController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.facturaRepo.Eliminar(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFacturaNoEncontrada) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "factura no encontrada", err.Error()))
			return
		}
		c.logger.Error("error al eliminar la factura", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar la factura", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
