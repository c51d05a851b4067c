package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterProductoRoutes registra las rutas del módulo de productos
func RegisterProductoRoutes(r *gin.RouterGroup, productoController *controller.ProductoController) {
	productos := r.Group("/productos")
	productos.Use(middleware.AuthMiddleware())
	{
		productos.POST("", productoController.Create)
		productos.GET("", productoController.List)
		productos.GET("/:id", productoController.Get)
		productos.PUT("/:id", productoController.Update)
		productos.DELETE("/:id", productoController.Delete)
	}
}
