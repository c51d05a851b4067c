package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterTipoProductoRoutes registra las rutas del módulo de tipos de producto
func RegisterTipoProductoRoutes(r *gin.RouterGroup, tipoController *controller.TipoProductoController) {
	tipos := r.Group("/tipos-producto")
	tipos.Use(middleware.AuthMiddleware())
	{
		tipos.POST("", tipoController.Create)
		tipos.GET("", tipoController.List)
		tipos.GET("/:id", tipoController.Get)
		tipos.PUT("/:id", tipoController.Update)
		tipos.DELETE("/:id", tipoController.Delete)
	}
}
