package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

var orderLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "orders").Logger()

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	coupons  repository.CouponRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, coupons repository.CouponRepository) *OrderService {
	return &OrderService{orders: orders, products: products, coupons: coupons}
}

// Create persists the order as submitted, then best-effort decrements stock
// per line item and bumps the coupon usage counter. The order stands even
// when a decrement fails; there is no rollback.
func (s *OrderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	var missing []string
	if order.Name == "" {
		missing = append(missing, "name")
	}
	if order.Email == "" {
		missing = append(missing, "email")
	}
	if order.Phone == "" {
		missing = append(missing, "phone")
	}
	if order.Address == "" {
		missing = append(missing, "address")
	}
	if order.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}
	if len(order.CartItems) == 0 {
		missing = append(missing, "cartItems")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: "Missing fields", MissingFields: missing}
	}

	saved, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, item := range saved.CartItems {
		if err := s.products.IncrementQuantity(ctx, item.ProductID, -item.Count); err != nil {
			orderLog.Error().Err(err).
				Str("productId", item.ProductID.Hex()).
				Str("name", item.Name).
				Msg("failed to decrement stock")
		}
	}

	if saved.CouponCode != "" {
		if err := s.coupons.IncrementUsage(ctx, saved.CouponCode); err != nil {
			orderLog.Error().Err(err).Str("code", saved.CouponCode).Msg("failed to increment coupon usage")
		}
	}

	return saved, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &NotFoundError{Message: "Order not found"}
	}
	err = s.orders.Delete(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Message: "Order not found"}
	}
	return err
}

func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.orders.Count(ctx)
}
