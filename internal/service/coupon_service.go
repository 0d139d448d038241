package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

type CouponService struct {
	coupons repository.CouponRepository
	now     func() time.Time
}

func NewCouponService(coupons repository.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons, now: time.Now}
}

type CreateCouponInput struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	ExpiryDate    time.Time
	UsageLimit    int
	MinPurchase   float64
}

func (s *CouponService) Create(ctx context.Context, in CreateCouponInput) (*models.Coupon, error) {
	if in.Code == "" || in.DiscountType == "" || in.DiscountValue == 0 || in.ExpiryDate.IsZero() {
		return nil, &ValidationError{Message: "All required fields must be filled"}
	}
	if in.DiscountType != "percentage" && in.DiscountType != "fixed" {
		return nil, &ValidationError{Message: "discountType must be percentage or fixed"}
	}

	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if _, err := s.coupons.FindByCode(ctx, code); err == nil {
		return nil, &ConflictError{Message: "Coupon code already exists"}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return s.coupons.Insert(ctx, &models.Coupon{
		Code:          code,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		ExpiryDate:    in.ExpiryDate,
		UsageLimit:    in.UsageLimit,
		MinPurchase:   in.MinPurchase,
	})
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.coupons.FindAll(ctx)
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	couponID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &NotFoundError{Message: "Coupon not found"}
	}
	err = s.coupons.Delete(ctx, couponID)
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Message: "Coupon not found"}
	}
	return err
}

type ApplyCouponResult struct {
	Discount        float64 `json:"discount"`
	DiscountedTotal float64 `json:"discountedTotal"`
	CouponCode      string  `json:"couponCode"`
}

// Apply validates a coupon against a cart total and computes the discount.
// The checks run in order: existence, expiry, usage cap, minimum purchase.
// The discount never exceeds the cart total.
func (s *CouponService) Apply(ctx context.Context, code string, cartTotal float64) (*ApplyCouponResult, error) {
	if code == "" || cartTotal == 0 {
		return nil, &ValidationError{Message: "Code and cartTotal required"}
	}

	cleanCode := strings.ToUpper(strings.TrimSpace(code))
	coupon, err := s.coupons.FindByCode(ctx, cleanCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: "Invalid coupon code!"}
	}
	if err != nil {
		return nil, err
	}

	if coupon.ExpiryDate.Before(s.now()) {
		return nil, &ValidationError{Message: "Coupon expired"}
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, &ValidationError{Message: "Coupon usage limit reached"}
	}
	if cartTotal < coupon.MinPurchase {
		return nil, &ValidationError{Message: fmt.Sprintf("Minimum purchase %v required", coupon.MinPurchase)}
	}

	var discount float64
	if coupon.DiscountType == "percentage" {
		discount = cartTotal * coupon.DiscountValue / 100
	} else {
		discount = coupon.DiscountValue
	}
	if discount > cartTotal {
		discount = cartTotal
	}

	return &ApplyCouponResult{
		Discount:        discount,
		DiscountedTotal: cartTotal - discount,
		CouponCode:      coupon.Code,
	}, nil
}
