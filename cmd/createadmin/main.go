// Seeds (or updates) an admin account, mirroring the storefront's admin
// provisioning script.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"sharknutrition-backend/internal/config"
	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/mongodb"
	"sharknutrition-backend/internal/repository"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "admin display name")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("-username and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	admins := repository.NewMongoAdmins(client.Database(cfg.MongoDB))
	err = admins.Upsert(context.Background(), &models.Admin{
		Username: *username,
		Password: string(hashed),
		Name:     *name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to upsert admin")
	}
	log.Info().Str("username", *username).Msg("admin account ready")
}
