package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterComisionRoutes registra las rutas del módulo de comisiones
func RegisterComisionRoutes(r *gin.RouterGroup, comisionController *controller.ComisionController) {
	comisiones := r.Group("/comisiones")
	comisiones.Use(middleware.AuthMiddleware())
	{
		comisiones.POST("", comisionController.Create)
		comisiones.GET("", comisionController.List)
		comisiones.GET("/:id", comisionController.Get)
		comisiones.PUT("/:id", comisionController.Update)
		comisiones.DELETE("/:id", comisionController.Delete)
	}
}
