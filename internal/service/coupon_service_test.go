package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharknutrition-backend/internal/repository"
)

func newCouponFixture(t *testing.T) *CouponService {
	t.Helper()
	svc := NewCouponService(repository.NewMemoryCoupons())

	_, err := svc.Create(context.Background(), CreateCouponInput{
		Code:          "save10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ExpiryDate:    time.Now().Add(24 * time.Hour),
		MinPurchase:   100,
	})
	require.NoError(t, err)
	return svc
}

func TestApplyPercentageCoupon(t *testing.T) {
	svc := newCouponFixture(t)

	result, err := svc.Apply(context.Background(), "SAVE10", 500)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Discount)
	assert.Equal(t, 450.0, result.DiscountedTotal)
	assert.Equal(t, "SAVE10", result.CouponCode)
}

func TestApplyCouponNormalizesCode(t *testing.T) {
	svc := newCouponFixture(t)

	result, err := svc.Apply(context.Background(), "  save10 ", 200)
	require.NoError(t, err)
	assert.Equal(t, 20.0, result.Discount)
}

func TestApplyUnknownCoupon(t *testing.T) {
	svc := newCouponFixture(t)

	_, err := svc.Apply(context.Background(), "NOPE", 500)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestApplyExpiredCoupon(t *testing.T) {
	svc := newCouponFixture(t)
	svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	_, err := svc.Apply(context.Background(), "SAVE10", 500)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Coupon expired", validationErr.Message)
}

func TestApplyCouponBelowMinPurchase(t *testing.T) {
	svc := newCouponFixture(t)

	_, err := svc.Apply(context.Background(), "SAVE10", 50)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestApplyCouponUsageLimit(t *testing.T) {
	coupons := repository.NewMemoryCoupons()
	svc := NewCouponService(coupons)

	_, err := svc.Create(context.Background(), CreateCouponInput{
		Code:          "ONCE",
		DiscountType:  "fixed",
		DiscountValue: 20,
		ExpiryDate:    time.Now().Add(time.Hour),
		UsageLimit:    1,
	})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), "ONCE", 100)
	require.NoError(t, err)

	require.NoError(t, coupons.IncrementUsage(context.Background(), "ONCE"))

	_, err = svc.Apply(context.Background(), "ONCE", 100)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Coupon usage limit reached", validationErr.Message)
}

func TestApplyFixedCouponCappedAtCartTotal(t *testing.T) {
	svc := NewCouponService(repository.NewMemoryCoupons())

	_, err := svc.Create(context.Background(), CreateCouponInput{
		Code:          "BIG",
		DiscountType:  "fixed",
		DiscountValue: 900,
		ExpiryDate:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	result, err := svc.Apply(context.Background(), "BIG", 300)
	require.NoError(t, err)
	assert.Equal(t, 300.0, result.Discount)
	assert.Equal(t, 0.0, result.DiscountedTotal)
}

func TestCreateDuplicateCoupon(t *testing.T) {
	svc := newCouponFixture(t)

	_, err := svc.Create(context.Background(), CreateCouponInput{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: 15,
		ExpiryDate:    time.Now().Add(time.Hour),
	})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}
