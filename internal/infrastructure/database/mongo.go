package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig contiene la configuración de conexión a MongoDB
type MongoConfig struct {
	URI             string
	Database        string
	ConnTimeout     time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// NewMongoConfigFromEnv crea la configuración a partir de variables de ambiente
func NewMongoConfigFromEnv() *MongoConfig {
	maxPool, _ := strconv.Atoi(getEnv("MONGO_MAX_POOL_SIZE", "10"))
	minPool, _ := strconv.Atoi(getEnv("MONGO_MIN_POOL_SIZE", "2"))
	connTimeout, _ := strconv.Atoi(getEnv("MONGO_CONN_TIMEOUT", "10"))
	idleTime, _ := strconv.Atoi(getEnv("MONGO_MAX_IDLE_TIME", "300"))

	return &MongoConfig{
		URI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:        getEnv("MONGO_DATABASE", "panel_comercio"),
		ConnTimeout:     time.Duration(connTimeout) * time.Second,
		MaxPoolSize:     uint64(maxPool),
		MinPoolSize:     uint64(minPool),
		MaxConnIdleTime: time.Duration(idleTime) * time.Second,
	}
}

// MongoDB administra la conexión con el servidor de documentos
type MongoDB struct {
	client *mongo.Client
	config *MongoConfig
}

// NewMongoDB abre la conexión y la verifica con un ping antes de devolverla
func NewMongoDB(config *MongoConfig) (*MongoDB, error) {
	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize).
		SetMaxConnIdleTime(config.MaxConnIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error al verificar la conexión con MongoDB: %w", err)
	}

	return &MongoDB{
		client: client,
		config: config,
	}, nil
}

// Database devuelve la base de datos del panel
func (m *MongoDB) Database() *mongo.Database {
	return m.client.Database(m.config.Database)
}

// Close cierra la conexión con el servidor
func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// getEnv obtiene una variable de ambiente con valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
