package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterDescuentoRoutes registra las rutas del módulo de descuentos
func RegisterDescuentoRoutes(r *gin.RouterGroup, descuentoController *controller.DescuentoController) {
	descuentos := r.Group("/descuentos")
	descuentos.Use(middleware.AuthMiddleware())
	{
		descuentos.POST("", descuentoController.Create)
		descuentos.GET("", descuentoController.List)
		descuentos.GET("/:id", descuentoController.Get)
		descuentos.PUT("/:id", descuentoController.Update)
		descuentos.DELETE("/:id", descuentoController.Delete)
	}
}
