// Package repository holds the persistence layer: one repository per
// collection, each with a MongoDB implementation and an in-memory one.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateWishlist(ctx context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) error
	FindAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Upsert(ctx context.Context, admin *models.Admin) error
}

type CategoryRepository interface {
	Insert(ctx context.Context, category *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindFeatured(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductRepository interface {
	Insert(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByProductID(ctx context.Context, productID string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Find(ctx context.Context, category string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateRatings(ctx context.Context, id primitive.ObjectID, ratings models.Ratings) (*models.Product, error)
	IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type CouponRepository interface {
	Insert(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error)
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	FindAll(ctx context.Context) ([]models.Coupon, error)
	IncrementUsage(ctx context.Context, code string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ContactRepository interface {
	Insert(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}
