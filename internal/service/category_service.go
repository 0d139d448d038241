package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
	"sharknutrition-backend/internal/uploader"
)

var categoryLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "categories").Logger()

const categoryImageFolder = "/categories"

type CategoryService struct {
	categories repository.CategoryRepository
	uploads    uploader.Uploader
}

func NewCategoryService(categories repository.CategoryRepository, uploads uploader.Uploader) *CategoryService {
	return &CategoryService{categories: categories, uploads: uploads}
}

type CategoryInput struct {
	Name        string
	IsFeatured  bool
	SliderOrder *int
	Image       *uploader.File
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if in.Name == "" {
		return nil, &ValidationError{Message: "Name is required"}
	}

	category := &models.Category{
		Name:       in.Name,
		IsFeatured: in.IsFeatured,
	}
	// sliderOrder is only meaningful for featured categories.
	if in.IsFeatured {
		category.SliderOrder = in.SliderOrder
	}

	if in.Image != nil {
		asset, err := s.uploads.Upload(ctx, *in.Image, categoryImageFolder)
		if err != nil {
			return nil, err
		}
		category.Image = asset.URL
		category.ImageID = asset.FileID
	}

	return s.categories.Insert(ctx, category)
}

// Update replaces submitted fields. A new image deletes the previous asset
// from storage best-effort before the upload.
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*models.Category, error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{Message: "Category not found"}
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Category not found"}
	}
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		category.Name = in.Name
	}
	category.IsFeatured = in.IsFeatured
	if in.IsFeatured {
		if in.SliderOrder != nil {
			category.SliderOrder = in.SliderOrder
		}
	} else {
		category.SliderOrder = nil
	}

	if in.Image != nil {
		if category.ImageID != "" {
			if err := s.uploads.Delete(ctx, category.ImageID); err != nil {
				categoryLog.Error().Err(err).Str("fileId", category.ImageID).Msg("failed to delete old category image")
			}
		}
		asset, err := s.uploads.Upload(ctx, *in.Image, categoryImageFolder)
		if err != nil {
			return nil, err
		}
		category.Image = asset.URL
		category.ImageID = asset.FileID
	}

	return s.categories.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &NotFoundError{Message: "Category not found"}
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Message: "Category not found"}
	}
	if err != nil {
		return err
	}

	if category.ImageID != "" {
		if err := s.uploads.Delete(ctx, category.ImageID); err != nil {
			categoryLog.Error().Err(err).Str("fileId", category.ImageID).Msg("failed to delete category image")
		}
	}
	return s.categories.Delete(ctx, categoryID)
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Slider(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindFeatured(ctx)
}
