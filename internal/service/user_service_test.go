package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

func newUserFixture(t *testing.T) (*UserService, repository.ProductRepository) {
	t.Helper()
	products := repository.NewMemoryProducts()
	return NewUserService(repository.NewMemoryUsers(), products), products
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserFixture(t)

	user, err := svc.Register(context.Background(), "Ali Khan", "ali@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password) // stored hashed

	got, err := svc.Login(context.Background(), "ali@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Register(context.Background(), "Ali Khan", "ali@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "ali@example.com", "secret456")
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserFixture(t)
	var validationErr *ValidationError

	_, err := svc.Register(context.Background(), "", "ali@example.com", "secret123")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Register(context.Background(), "Ali", "not-an-email", "secret123")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Register(context.Background(), "Ali", "ali@example.com", "short")
	require.ErrorAs(t, err, &validationErr)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Register(context.Background(), "Ali Khan", "ali@example.com", "secret123")
	require.NoError(t, err)

	var authErr *AuthError
	_, err = svc.Login(context.Background(), "ali@example.com", "wrong")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Incorrect password.", authErr.Message)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Incorrect email.", authErr.Message)
}

func TestWishlistAddAndRemove(t *testing.T) {
	svc, products := newUserFixture(t)

	_, err := svc.Register(context.Background(), "Ali Khan", "ali@example.com", "secret123")
	require.NoError(t, err)

	product, err := products.Insert(context.Background(), &models.Product{
		Name: "Whey", Category: "protein", Price: 100,
	})
	require.NoError(t, err)

	wishlist, err := svc.UpdateWishlist(context.Background(), "ali@example.com", product.ID.Hex(), "add")
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	assert.Equal(t, product.ID, wishlist[0].ID)

	// Adding the same product twice is rejected.
	_, err = svc.UpdateWishlist(context.Background(), "ali@example.com", product.ID.Hex(), "add")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	wishlist, err = svc.UpdateWishlist(context.Background(), "ali@example.com", product.ID.Hex(), "remove")
	require.NoError(t, err)
	assert.Empty(t, wishlist)

	var notFoundErr *NotFoundError
	_, err = svc.UpdateWishlist(context.Background(), "ali@example.com", product.ID.Hex(), "remove")
	require.ErrorAs(t, err, &notFoundErr)
}

func TestWishlistUnknownUser(t *testing.T) {
	svc, products := newUserFixture(t)

	product, err := products.Insert(context.Background(), &models.Product{
		Name: "Whey", Category: "protein", Price: 100,
	})
	require.NoError(t, err)

	var notFoundErr *NotFoundError
	_, err = svc.UpdateWishlist(context.Background(), "ghost@example.com", product.ID.Hex(), "add")
	require.ErrorAs(t, err, &notFoundErr)
}
