package route

import (
	"github.com/gin-gonic/gin"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/pkg/middleware"
)

// RegisterUsuarioRoutes registra las rutas del módulo de usuarios
func RegisterUsuarioRoutes(r *gin.RouterGroup, usuarioController *controller.UsuarioController) {
	usuarios := r.Group("/usuarios")
	usuarios.Use(middleware.AuthMiddleware())
	{
		usuarios.POST("", usuarioController.Create)
		usuarios.GET("", usuarioController.List)
		usuarios.GET("/:id", usuarioController.Get)
		usuarios.PUT("/:id", usuarioController.Update)
		usuarios.DELETE("/:id", usuarioController.Delete)
	}
}
