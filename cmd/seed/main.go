// Command seed bootstraps a fresh installation: it creates the initial
// admin account and a starter parts inventory. Admins cannot be created
// over the API, so this runs once before first use.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/auth"
	"github.com/ukydev/garage-service/internal/config"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

var starterParts = []models.Part{
	{PartName: "Oil Filter", Quantity: 25},
	{PartName: "Air Filter", Quantity: 20},
	{PartName: "Brake Pads", Quantity: 16},
	{PartName: "Engine Oil 5W-30", Quantity: 40},
	{PartName: "Coolant", Quantity: 30},
	{PartName: "Wiper Blades", Quantity: 18},
	{PartName: "Spark Plugs", Quantity: 32},
	{PartName: "Battery 12V", Quantity: 8},
}

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	fullName := flag.String("name", "Service Center Admin", "admin display name")
	mobile := flag.String("mobile", "", "admin contact number")
	skipParts := flag.Bool("skip-parts", false, "do not seed the starter inventory")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	documentStore, err := newStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize document store")
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err := authService.ValidatePassword(*password); err != nil {
		log.WithError(err).Fatal("weak admin password")
	}

	hash, err := authService.HashPassword(*password)
	if err != nil {
		log.WithError(err).Fatal("failed to hash admin password")
	}

	ctx := context.Background()
	err = documentStore.Update(ctx, func(doc *models.Document) error {
		if doc.FindUserByUsername(*username) == nil {
			doc.Users = append(doc.Users, models.User{
				ID:           uuid.NewString(),
				Username:     *username,
				PasswordHash: hash,
				FullName:     *fullName,
				Mobile:       *mobile,
				Role:         models.RoleAdmin,
				CreatedAt:    time.Now(),
			})
			log.WithField("username", *username).Info("admin account created")
		} else {
			log.WithField("username", *username).Info("admin account already exists, skipping")
		}

		if !*skipParts && len(doc.Parts) == 0 {
			for _, part := range starterParts {
				part.ID = uuid.NewString()
				doc.Parts = append(doc.Parts, part)
			}
			log.WithField("count", len(starterParts)).Info("starter inventory seeded")
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Fatal("seeding failed")
	}

	log.Info("seed complete")
}

func newStore(cfg config.Config) (store.DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, err := store.ConnectMongo(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return store.NewMongoStore(client, cfg.MongoDatabase, cfg.MongoCollection), nil
	default:
		return store.NewFileStore(cfg.DataFile), nil
	}
}
