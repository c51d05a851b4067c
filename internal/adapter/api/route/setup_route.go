package route

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
)

// Controllers agrupa los controladores que exponen el API del panel
type Controllers struct {
	Auth         *controller.AuthController
	Usuario      *controller.UsuarioController
	Producto     *controller.ProductoController
	TipoProducto *controller.TipoProductoController
	MetodoPago   *controller.MetodoPagoController
	Descuento    *controller.DescuentoController
	Comision     *controller.ComisionController
	Factura      *controller.FacturaController
}

// SetupRoutes configura CORS, el health check, la documentación y las rutas
// del API bajo /api/v1
func SetupRoutes(router *gin.Engine, c Controllers) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	RegisterAuthRoutes(api, c.Auth)
	RegisterUsuarioRoutes(api, c.Usuario)
	RegisterProductoRoutes(api, c.Producto)
	RegisterTipoProductoRoutes(api, c.TipoProducto)
	RegisterMetodoPagoRoutes(api, c.MetodoPago)
	RegisterDescuentoRoutes(api, c.Descuento)
	RegisterComisionRoutes(api, c.Comision)
	RegisterFacturaRoutes(api, c.Factura)
}
