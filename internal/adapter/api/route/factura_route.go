package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterFacturaRoutes registra las rutas del módulo de facturación
func RegisterFacturaRoutes(r *gin.RouterGroup, facturaController *controller.FacturaController) {
	facturas := r.Group("/facturas")
	facturas.Use(middleware.AuthMiddleware())
	{
		facturas.POST("", facturaController.Create)
		facturas.GET("", facturaController.List)
		facturas.GET("/:id", facturaController.Get)
		facturas.PUT("/:id", facturaController.Update)
		facturas.DELETE("/:id", facturaController.Delete)
	}
}
