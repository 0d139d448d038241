package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

type AdminService struct {
	admins   repository.AdminRepository
	users    repository.UserRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewAdminService(admins repository.AdminRepository, users repository.UserRepository, orders repository.OrderRepository, products repository.ProductRepository) *AdminService {
	return &AdminService{admins: admins, users: users, orders: orders, products: products}
}

// Login verifies the credentials against the stored bcrypt hash. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &AuthError{Message: "Invalid credentials"}
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, &AuthError{Message: "Invalid credentials"}
	}
	return admin, nil
}

type DashboardStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalProducts int64 `json:"totalProducts"`
}

func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{TotalUsers: users, TotalOrders: orders, TotalProducts: products}, nil
}
