package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/dto"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	productodomain "github.com/acgomezu/panel-comercio/internal/domain/producto"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// ProductoController gestiona las peticiones relacionadas con productos
type ProductoController struct {
	productoRepo productodomain.Repository
	logger       logger.Logger
}

// NewProductoController crea una nueva instancia de ProductoController
func NewProductoController(productoRepo productodomain.Repository, logger logger.Logger) *ProductoController {
	return &ProductoController{
		productoRepo: productoRepo,
		logger:       logger,
	}
}

// Create crea un nuevo producto
// @Summary Crear producto
// @Description Crea un nuevo producto con referencias a proveedor y tipo
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param producto body dto.ProductoRequest true "Datos del producto"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos [post]
func (c *ProductoController) Create(ctx *gin.Context) {
	var req dto.ProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	p, err := productodomain.NuevoProducto(req.Nombre, req.Precio, req.ProveedorID, req.TipoID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el producto", err.Error()))
		return
	}

	id, err := c.productoRepo.Crear(ctx, p)
	if err != nil {
		c.logger.Error("error al guardar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("producto creado", gin.H{"id": id}))
}

// Get retorna un producto por su ID
// @Summary Buscar producto
// @Description Retorna los datos crudos de un producto por su ID
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 200 {object} producto.Producto
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [get]
func (c *ProductoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.productoRepo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// List retorna la lista de productos
// @Summary Listar productos
// @Description Retorna la lista de productos con los nombres de proveedor y tipo resueltos
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ProductoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos [get]
func (c *ProductoController) List(ctx *gin.Context) {
	productos, err := c.productoRepo.Listar(ctx)
	if err != nil {
		c.logger.Error("error al listar los productos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar los productos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductoListResponse(productos))
}

// Update actualiza un producto
// @Summary Actualizar producto
// @Description Aplica un parche parcial sobre el producto; las referencias enviadas se reenvuelven
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Param producto body dto.ProductoUpdateRequest true "Campos a actualizar"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [put]
func (c *ProductoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cambios := productodomain.Actualizacion{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		ProveedorID: req.ProveedorID,
		TipoID:      req.TipoID,
	}

	if err := c.productoRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, repository.ErrProductoNoEncontrado) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("producto actualizado", nil))
}

// Delete elimina un producto
// @Summary Eliminar producto
// @Description Elimina un producto; la operación es idempotente
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [delete]
func (c *ProductoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productoRepo.Eliminar(ctx, id); err != nil {
		c.logger.Error("error al eliminar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el producto", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
