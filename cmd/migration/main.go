package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	databaseURL, err := mongoURL()
	if err != nil {
		log.Fatalf("Error al construir la URL de la base de datos: %v", err)
	}

	sourceURL := os.Getenv("MIGRATIONS_PATH")
	if sourceURL == "" {
		sourceURL = "file://migrations"
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		log.Fatalf("Error al preparar las migraciones: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("No hay migraciones pendientes")
			return
		}
		log.Fatalf("Error al ejecutar las migraciones: %v", err)
	}

	log.Println("Migraciones ejecutadas con éxito")
}

// mongoURL arma la URL de conexión con la base de datos incluida en la ruta,
// como la exige el driver de migraciones
func mongoURL() (string, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "panel_comercio"
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("URI de MongoDB inválida: %w", err)
	}
	if strings.Trim(parsed.Path, "/") == "" {
		parsed.Path = "/" + database
	}
	return parsed.String(), nil
}
