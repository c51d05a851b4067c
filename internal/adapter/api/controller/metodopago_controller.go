package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	metododomain "github.com/acgomezu/panel-comercio/internal/domain/metodopago"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// MetodoPagoController gestiona las peticiones relacionadas con métodos de pago
type MetodoPagoController struct {
	metodoRepo metododomain.Repository
	logger     logger.Logger
}

// NewMetodoPagoController crea una nueva instancia de MetodoPagoController
func NewMetodoPagoController(metodoRepo metododomain.Repository, logger logger.Logger) *MetodoPagoController {
	return &MetodoPagoController{
		metodoRepo: metodoRepo,
		logger:     logger,
	}
}

// Create crea un nuevo método de pago
// @Summary Crear método de pago
// @Description Crea un método de pago con el id elegido por el operador
// @Tags metodos-pago
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param metodo body dto.MetodoPagoRequest true "Datos del método de pago"
// @Success 201 {object} dto.MetodoPagoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metodos-pago [post]
func (c *MetodoPagoController) Create(ctx *gin.Context) {
	var req dto.MetodoPagoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	m, err := metododomain.NuevoMetodoPago(req.ID, req.Metodo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el método de pago", err.Error()))
		return
	}

	if err := c.metodoRepo.Crear(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMetodoPagoYaExiste) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "el método de pago ya existe", err.Error()))
			return
		}
		c.logger.Error("error al guardar el método de pago", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el método de pago", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMetodoPagoResponse(m))
}

// Get retorna un método de pago por su ID
// @Summary Buscar método de pago
// @Description Retorna los datos de un método de pago por su ID
// @Tags metodos-pago
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del método de pago"
// @Success 200 {object} dto.MetodoPagoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metodos-pago/{id} [get]
func (c *MetodoPagoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	m, err := c.metodoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMetodoPagoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método de pago no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el método de pago", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el método de pago", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetodoPagoResponse(m))
}

// List retorna la lista de métodos de pago
// @Summary Listar métodos de pago
// @Description Retorna la lista completa de métodos de pago
// @Tags metodos-pago
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.MetodoPagoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metodos-pago [get]
func (c *MetodoPagoController) List(ctx *gin.Context) {
	metodos, err := c.metodoRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar los métodos de pago", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los métodos de pago", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetodoPagoListResponse(metodos))
}

// Update actualiza un método de pago
// @Summary Actualizar método de pago
// @Description Aplica un parche parcial sobre el método de pago
// @Tags metodos-pago
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del método de pago"
// @Param metodo body dto.MetodoPagoUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metodos-pago/{id} [put]
func (c *MetodoPagoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.MetodoPagoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := metododomain.Actualizacion{Metodo: req.Metodo}

	if err := c.metodoRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrMetodoPagoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método de pago no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el método de pago", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el método de pago", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("método de pago actualizado", nil))
}

// Delete elimina un método de pago
// @Summary Eliminar método de pago
// @Description Elimina un método de pago; la operación es idempotente
// @Tags metodos-pago
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del método de pago"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metodos-pago/{id} [delete]
func (c *MetodoPagoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.metodoRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar el método de pago", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el método de pago", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
