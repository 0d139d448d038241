package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UserService struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewUserService(users repository.UserRepository, products repository.ProductRepository) *UserService {
	return &UserService{users: users, products: products}
}

func (s *UserService) Register(ctx context.Context, fullName, email, password string) (*models.User, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: "Please fill in all required fields."}
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, &ConflictError{Message: "This email is already registered."}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Message: fmt.Sprintf("%s, your email format is invalid.", fullName)}
	}
	if len(password) < 6 {
		return nil, &ValidationError{Message: "Password must be at least 6 characters long."}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, &models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
		Wishlist: []primitive.ObjectID{},
	})
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Please fill in all required fields."}
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &AuthError{Message: "Incorrect email."}
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, &AuthError{Message: "Incorrect password."}
	}
	return user, nil
}

// UpdateWishlist adds or removes one product reference on the user keyed by
// email. Action must be "add" or "remove".
func (s *UserService) UpdateWishlist(ctx context.Context, email, productID, action string) ([]models.Product, error) {
	if email == "" || productID == "" || action == "" {
		return nil, &ValidationError{Message: "Email, productId and action are required"}
	}
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid product id"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "User not found"}
	}
	if err != nil {
		return nil, err
	}

	switch action {
	case "add":
		for _, id := range user.Wishlist {
			if id == objectID {
				return nil, &ValidationError{Message: "Product already in wishlist"}
			}
		}
		user.Wishlist = append(user.Wishlist, objectID)
	case "remove":
		before := len(user.Wishlist)
		kept := user.Wishlist[:0]
		for _, id := range user.Wishlist {
			if id != objectID {
				kept = append(kept, id)
			}
		}
		user.Wishlist = kept
		if len(user.Wishlist) == before {
			return nil, &NotFoundError{Message: "Product not found in wishlist"}
		}
	default:
		return nil, &ValidationError{Message: "Action must be 'add' or 'remove'"}
	}

	if err := s.users.UpdateWishlist(ctx, user.ID, user.Wishlist); err != nil {
		return nil, err
	}
	return s.products.FindByIDs(ctx, user.Wishlist)
}

// Wishlist returns the user's wishlist hydrated into product documents.
func (s *UserService) Wishlist(ctx context.Context, email string) ([]models.Product, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "User not found"}
	}
	if err != nil {
		return nil, err
	}
	return s.products.FindByIDs(ctx, user.Wishlist)
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
