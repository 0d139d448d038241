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

var reviewLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "reviews").Logger()

const reviewImageFolder = "/reviews"

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	uploads  uploader.Uploader
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, uploads uploader.Uploader) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, uploads: uploads}
}

type SubmitReviewInput struct {
	ProductID string
	UserID    string
	Name      string
	Email     string
	Message   string
	Rating    int
	Image     *uploader.File
}

// Submit persists a review and rewrites the product's aggregate rating from
// the full review set. An attached image is uploaded first; upload failure
// aborts the whole operation.
func (s *ReviewService) Submit(ctx context.Context, in SubmitReviewInput) (*models.Review, *models.Product, error) {
	var missing []string
	if in.ProductID == "" {
		missing = append(missing, "productId")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Message == "" {
		missing = append(missing, "message")
	}
	if in.Rating == 0 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return nil, nil, &ValidationError{Message: "Missing fields", MissingFields: missing}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, nil, &ValidationError{Message: "Rating must be between 1 and 5"}
	}

	productID, err := primitive.ObjectIDFromHex(in.ProductID)
	if err != nil {
		return nil, nil, &ValidationError{Message: "Invalid product id"}
	}

	review := &models.Review{
		ProductID: productID,
		Name:      in.Name,
		Email:     in.Email,
		Rating:    in.Rating,
		Message:   in.Message,
	}
	if in.UserID != "" {
		if userID, err := primitive.ObjectIDFromHex(in.UserID); err == nil {
			review.UserID = &userID
		}
	}

	if in.Image != nil {
		asset, err := s.uploads.Upload(ctx, *in.Image, reviewImageFolder)
		if err != nil {
			return nil, nil, err
		}
		review.Image = asset.URL
		review.ImageID = asset.FileID
	}

	review, err = s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, nil, err
	}

	product, err := s.recomputeRatings(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	return review, product, nil
}

// Delete removes a review, best-effort deletes its stored image, and
// recomputes the product aggregate over the remaining reviews.
func (s *ReviewService) Delete(ctx context.Context, id string) (*models.Product, error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &NotFoundError{Message: "Review not found"}
	}
	review, err := s.reviews.FindByID(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Review not found"}
	}
	if err != nil {
		return nil, err
	}

	if review.ImageID != "" {
		if err := s.uploads.Delete(ctx, review.ImageID); err != nil {
			reviewLog.Error().Err(err).Str("fileId", review.ImageID).Msg("failed to delete review image")
		}
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return nil, err
	}
	return s.recomputeRatings(ctx, review.ProductID)
}

func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid product id"}
	}
	return s.reviews.FindByProduct(ctx, id)
}

// recomputeRatings reads every review for the product and writes the derived
// aggregate back. Zero reviews reset the aggregate to 0/0.
func (s *ReviewService) recomputeRatings(ctx context.Context, productID primitive.ObjectID) (*models.Product, error) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	ratings := models.Ratings{TotalRatings: len(reviews)}
	if len(reviews) > 0 {
		ratings.AverageRating = float64(sum) / float64(len(reviews))
	}
	product, err := s.products.UpdateRatings(ctx, productID, ratings)
	if errors.Is(err, repository.ErrNotFound) {
		reviewLog.Warn().Str("productId", productID.Hex()).Msg("aggregate recompute skipped, product missing")
		return nil, nil
	}
	return product, err
}
