package main

import (
	"os"

	"github.com/gin-gonic/gin"

	_ "github.com/acgomezu/panel-comercio/docs"
	"github.com/acgomezu/panel-comercio/internal/adapter/api/controller"
	"github.com/acgomezu/panel-comercio/internal/adapter/api/route"
	"github.com/acgomezu/panel-comercio/internal/adapter/repository"
	"github.com/acgomezu/panel-comercio/internal/infrastructure/database"
	"github.com/acgomezu/panel-comercio/pkg/logger"
)

// App representa la aplicación y sus dependencias
type App struct {
	router *gin.Engine
	db     *database.MongoDB
	logger logger.Logger
}

// NewApp crea una nueva instancia de la aplicación
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Conectar con la base de datos
	config := database.NewMongoConfigFromEnv()
	db, err := database.NewMongoDB(config)
	if err != nil {
		return nil, err
	}
	mongoDatabase := db.Database()

	// Crear repositorios
	usuarioRepo := repository.NewUsuarioRepository(mongoDatabase)
	productoRepo := repository.NewProductoRepository(mongoDatabase)
	tipoRepo := repository.NewTipoProductoRepository(mongoDatabase)
	metodoRepo := repository.NewMetodoPagoRepository(mongoDatabase)
	descuentoRepo := repository.NewDescuentoRepository(mongoDatabase)
	comisionRepo := repository.NewComisionRepository(mongoDatabase)
	facturaRepo := repository.NewFacturaRepository(mongoDatabase)

	// Crear controladores
	controllers := route.Controllers{
		Auth:         controller.NewAuthController(log),
		Usuario:      controller.NewUsuarioController(usuarioRepo, log),
		Producto:     controller.NewProductoController(productoRepo, log),
		TipoProducto: controller.NewTipoProductoController(tipoRepo, log),
		MetodoPago:   controller.NewMetodoPagoController(metodoRepo, log),
		Descuento:    controller.NewDescuentoController(descuentoRepo, log),
		Comision:     controller.NewComisionController(comisionRepo, log),
		Factura:      controller.NewFacturaController(facturaRepo, log),
	}

	router := gin.Default()
	router.Use(gin.Recovery())

	route.SetupRoutes(router, controllers)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia el servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando el servidor", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("error al cerrar la conexión con la base de datos", "error", err)
		}
	}
}
