package main

import (
	"net/http"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/auth"
	"github.com/ukydev/garage-service/internal/config"
	"github.com/ukydev/garage-service/internal/events"
	"github.com/ukydev/garage-service/internal/handlers"
	"github.com/ukydev/garage-service/internal/middleware"
	"github.com/ukydev/garage-service/internal/service"
	"github.com/ukydev/garage-service/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetFormatter(&log.JSONFormatter{})

	documentStore, err := newStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize document store")
	}

	publisher := newPublisher(cfg)
	defer publisher.Close()

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	inventoryService := service.NewInventoryService(documentStore)
	jobService := service.NewJobService(documentStore, inventoryService, publisher)
	userService := service.NewUserService(documentStore, authService)

	authMW := middleware.NewAuthMiddleware(authService)
	rateMW := middleware.NewRateLimitMiddleware()

	router := handlers.NewRouter(
		authMW,
		rateMW,
		handlers.NewAuthHandler(userService),
		handlers.NewJobHandler(jobService),
		handlers.NewPartsHandler(inventoryService),
	)

	log.WithFields(log.Fields{
		"port":    cfg.Port,
		"backend": cfg.StoreBackend,
	}).Info("garage service listening")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func newStore(cfg config.Config) (store.DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := store.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		log.Info("connected to MongoDB")
		return store.NewMongoStore(client, cfg.MongoDatabase, cfg.MongoCollection), nil
	default:
		return store.NewFileStore(cfg.DataFile), nil
	}
}

func newPublisher(cfg config.Config) events.Publisher {
	if cfg.MQTTBroker == "" {
		return events.NoopPublisher{}
	}
	publisher, err := events.NewMQTTPublisher(cfg.MQTTBroker, cfg.MQTTClientID)
	if err != nil {
		log.WithError(err).Warn("MQTT broker unreachable, job events disabled")
		return events.NoopPublisher{}
	}
	log.WithField("broker", cfg.MQTTBroker).Info("publishing job events over MQTT")
	return publisher
}
