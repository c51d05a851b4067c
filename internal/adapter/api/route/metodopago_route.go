package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterMetodoPagoRoutes registra las rutas del módulo de métodos de pago
func RegisterMetodoPagoRoutes(r *gin.RouterGroup, metodoController *controller.MetodoPagoController) {
	metodos := r.Group("/metodos-pago")
	metodos.Use(middleware.AuthMiddleware())
	{
		metodos.POST("", metodoController.Create)
		metodos.GET("", metodoController.List)
		metodos.GET("/:id", metodoController.Get)
		metodos.PUT("/:id", metodoController.Update)
		metodos.DELETE("/:id", metodoController.Delete)
	}
}
