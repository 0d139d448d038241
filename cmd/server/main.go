package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"sharknutrition-backend/internal/api"
	"sharknutrition-backend/internal/config"
	"sharknutrition-backend/internal/mongodb"
	"sharknutrition-backend/internal/repository"
	"sharknutrition-backend/internal/service"
	"sharknutrition-backend/internal/uploader"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().Str("db", cfg.MongoDB).Msg("connecting to MongoDB")
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.MongoDB)

	uploads := uploaderFor(cfg)

	users := repository.NewMongoUsers(db)
	admins := repository.NewMongoAdmins(db)
	products := repository.NewMongoProducts(db)
	categories := repository.NewMongoCategories(db)
	reviews := repository.NewMongoReviews(db)
	orders := repository.NewMongoOrders(db)
	coupons := repository.NewMongoCoupons(db)
	contacts := repository.NewMongoContacts(db)

	server := api.NewServer(cfg, api.Services{
		Admins:     service.NewAdminService(admins, users, orders, products),
		Users:      service.NewUserService(users, products),
		Products:   service.NewProductService(products, uploads),
		Categories: service.NewCategoryService(categories, uploads),
		Reviews:    service.NewReviewService(reviews, products, uploads),
		Orders:     service.NewOrderService(orders, products, coupons),
		Coupons:    service.NewCouponService(coupons),
		Contacts:   service.NewContactService(contacts),
	}, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// uploaderFor picks the image storage backend. Without a private key the
// in-memory uploader keeps local development working.
func uploaderFor(cfg config.Config) uploader.Uploader {
	if cfg.ImageKitKey == "" {
		return uploader.NewMemory()
	}
	return uploader.NewImageKit(cfg.ImageKitKey, cfg.ImageKitUpload, cfg.ImageKitAPI)
}
