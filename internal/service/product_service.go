package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
	"sharknutrition-backend/internal/uploader"
)

var productLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "products").Logger()

const (
	productImageFolder = "/products"
	placeholderImage   = "/images/placeholder.png"
)

type ProductService struct {
	products repository.ProductRepository
	uploads  uploader.Uploader
}

func NewProductService(products repository.ProductRepository, uploads uploader.Uploader) *ProductService {
	return &ProductService{products: products, uploads: uploads}
}

// discountedPrice derives the sale price. It is recomputed on every write
// that touches price or discountPercent.
func discountedPrice(price, percent float64) float64 {
	if percent <= 0 {
		return price
	}
	return math.Round(price - price*percent/100)
}

type CreateProductInput struct {
	BrandName       string
	Name            string
	Category        string
	Price           float64
	DiscountPercent float64
	Quantity        int
	Weight          string
	Flavor          []string
	Servings        []int
	Description     string
	Images          []uploader.File
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if in.BrandName == "" || in.Name == "" || in.Category == "" || in.Price == 0 {
		return nil, &ValidationError{Message: "Brand name, name, category, and price are required"}
	}
	if in.Price <= 0 {
		return nil, &ValidationError{Message: "Price must be a positive number"}
	}

	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		return nil, &ValidationError{Message: "Category is required"}
	}

	var gallery, galleryIDs []string
	for _, file := range in.Images {
		asset, err := s.uploads.Upload(ctx, file, productImageFolder)
		if err != nil {
			return nil, err
		}
		gallery = append(gallery, asset.URL)
		galleryIDs = append(galleryIDs, asset.FileID)
	}

	product := &models.Product{
		ProductID:       fmt.Sprintf("PROD-%s", uuid.NewString()),
		BrandName:       strings.TrimSpace(in.BrandName),
		Name:            strings.TrimSpace(in.Name),
		Category:        category,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		DiscountedPrice: discountedPrice(in.Price, in.DiscountPercent),
		Quantity:        in.Quantity,
		Weight:          strings.TrimSpace(in.Weight),
		Flavor:          in.Flavor,
		Servings:        in.Servings,
		Description:     strings.TrimSpace(in.Description),
		Gallery:         gallery,
		GalleryIDs:      galleryIDs,
		Image:           placeholderImage,
	}
	if len(gallery) > 0 {
		product.Image = gallery[0]
		product.ImageID = galleryIDs[0]
	}

	return s.products.Insert(ctx, product)
}

type UpdateProductInput struct {
	BrandName       string
	Name            string
	Category        string
	Price           *float64
	DiscountPercent *float64
	Quantity        *int
	Weight          *string
	Flavor          []string
	Servings        []int
	Description     *string
	ExistingGallery []string
	Images          []uploader.File
}

// Update merges the submitted fields onto the stored product. The gallery is
// rebuilt from the kept existing URLs plus freshly uploaded files; assets
// dropped from the gallery are deleted from storage best-effort.
func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BrandName != "" {
		product.BrandName = strings.TrimSpace(in.BrandName)
	}
	if in.Name != "" {
		product.Name = strings.TrimSpace(in.Name)
	}
	if in.Category != "" {
		product.Category = strings.ToLower(strings.TrimSpace(in.Category))
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.DiscountPercent != nil {
		product.DiscountPercent = *in.DiscountPercent
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Weight != nil {
		product.Weight = strings.TrimSpace(*in.Weight)
	}
	if in.Flavor != nil {
		product.Flavor = in.Flavor
	}
	if in.Servings != nil {
		product.Servings = in.Servings
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	product.DiscountedPrice = discountedPrice(product.Price, product.DiscountPercent)

	var gallery, galleryIDs []string
	for _, url := range in.ExistingGallery {
		gallery = append(gallery, url)
		galleryIDs = append(galleryIDs, galleryIDFor(product, url))
	}
	for _, file := range in.Images {
		asset, err := s.uploads.Upload(ctx, file, productImageFolder)
		if err != nil {
			return nil, err
		}
		gallery = append(gallery, asset.URL)
		galleryIDs = append(galleryIDs, asset.FileID)
	}

	for _, oldID := range product.GalleryIDs {
		if oldID == "" || containsString(galleryIDs, oldID) {
			continue
		}
		if err := s.uploads.Delete(ctx, oldID); err != nil {
			productLog.Error().Err(err).Str("fileId", oldID).Msg("failed to delete old gallery image")
		}
	}

	product.Gallery = gallery
	product.GalleryIDs = galleryIDs
	product.Image = placeholderImage
	product.ImageID = ""
	if len(gallery) > 0 {
		product.Image = gallery[0]
		product.ImageID = galleryIDs[0]
	}

	return s.products.Update(ctx, product)
}

// Delete removes the product and best-effort deletes every gallery asset.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Message: "Product not found"}
		}
		return err
	}
	for _, fileID := range product.GalleryIDs {
		if fileID == "" {
			continue
		}
		if err := s.uploads.Delete(ctx, fileID); err != nil {
			productLog.Error().Err(err).Str("fileId", fileID).Msg("failed to delete gallery image")
		}
	}
	return nil
}

// Get looks up by document ID first, falling back to the external productId.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		product, err := s.products.FindByID(ctx, objectID)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	product, err := s.products.FindByProductID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Product not found"}
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.Find(ctx, strings.ToLower(strings.TrimSpace(category)))
}

func (s *ProductService) ByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIDs = append(objectIDs, objectID)
		}
	}
	return s.products.FindByIDs(ctx, objectIDs)
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func galleryIDFor(product *models.Product, url string) string {
	for i, existing := range product.Gallery {
		if existing == url && i < len(product.GalleryIDs) {
			return product.GalleryIDs[i]
		}
	}
	return ""
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
