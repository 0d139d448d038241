package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

func newOrderFixture(t *testing.T) (*OrderService, repository.ProductRepository, repository.CouponRepository, *models.Product) {
	t.Helper()
	products := repository.NewMemoryProducts()
	coupons := repository.NewMemoryCoupons()
	orders := repository.NewMemoryOrders()

	product, err := products.Insert(context.Background(), &models.Product{
		Name:     "Whey Isolate",
		Category: "protein",
		Price:    1000,
		Quantity: 10,
	})
	require.NoError(t, err)

	return NewOrderService(orders, products, coupons), products, coupons, product
}

func validOrder(product *models.Product) *models.Order {
	return &models.Order{
		Name:          "Ali",
		Email:         "ali@example.com",
		Phone:         "03001234567",
		Address:       "Karachi",
		PaymentMethod: "cod",
		CartItems: []models.CartItem{
			{ProductID: product.ID, Name: product.Name, Price: 1000, Count: 3},
		},
		TotalAmount: 3000,
	}
}

func TestCreateOrderMissingFields(t *testing.T) {
	svc, _, _, product := newOrderFixture(t)

	order := validOrder(product)
	order.PaymentMethod = ""
	order.Phone = ""

	_, err := svc.Create(context.Background(), order)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.MissingFields, "paymentMethod")
	assert.Contains(t, validationErr.MissingFields, "phone")
	assert.NotContains(t, validationErr.MissingFields, "name")
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc, _, _, product := newOrderFixture(t)

	order := validOrder(product)
	order.CartItems = nil

	_, err := svc.Create(context.Background(), order)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.MissingFields, "cartItems")
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	svc, products, _, product := newOrderFixture(t)

	saved, err := svc.Create(context.Background(), validOrder(product))
	require.NoError(t, err)
	assert.False(t, saved.ID.IsZero())

	got, err := products.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestCreateOrderSurvivesMissingProduct(t *testing.T) {
	svc, _, _, product := newOrderFixture(t)

	order := validOrder(product)
	order.CartItems = append(order.CartItems, models.CartItem{
		ProductID: primitive.NewObjectID(),
		Name:      "Discontinued",
		Count:     1,
	})

	saved, err := svc.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Len(t, saved.CartItems, 2)
}

func TestCreateOrderIncrementsCouponUsage(t *testing.T) {
	svc, _, coupons, product := newOrderFixture(t)

	_, err := coupons.Insert(context.Background(), &models.Coupon{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ExpiryDate:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	order := validOrder(product)
	order.CouponCode = "SAVE10"
	order.Discount = 300

	_, err = svc.Create(context.Background(), order)
	require.NoError(t, err)

	coupon, err := coupons.FindByCode(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsedCount)
}

func TestDeleteOrder(t *testing.T) {
	svc, _, _, product := newOrderFixture(t)

	saved, err := svc.Create(context.Background(), validOrder(product))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.ID.Hex()))

	var notFoundErr *NotFoundError
	err = svc.Delete(context.Background(), saved.ID.Hex())
	require.ErrorAs(t, err, &notFoundErr)
}
