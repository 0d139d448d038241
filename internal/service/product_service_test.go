package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharknutrition-backend/internal/repository"
	"sharknutrition-backend/internal/uploader"
)

func newProductFixture(t *testing.T) (*ProductService, *uploader.Memory) {
	t.Helper()
	uploads := uploader.NewMemory()
	return NewProductService(repository.NewMemoryProducts(), uploads), uploads
}

func TestCreateProductDerivesDiscountedPrice(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "X",
		Category:  "Protein",
		Price:     1000,
		DiscountPercent: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 900.0, product.DiscountedPrice)
	assert.Equal(t, "protein", product.Category)
	assert.NotEmpty(t, product.ProductID)
	assert.Equal(t, "/images/placeholder.png", product.Image)
}

func TestCreateProductWithoutDiscount(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "Creatine",
		Category:  "performance",
		Price:     1499,
	})
	require.NoError(t, err)
	assert.Equal(t, 1499.0, product.DiscountedPrice)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newProductFixture(t)

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "X", Category: "protein", Price: 100})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateProductRecomputesDiscountedPrice(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "X",
		Category:  "protein",
		Price:     1000,
	})
	require.NoError(t, err)

	discount := 25.0
	updated, err := svc.Update(context.Background(), product.ID.Hex(), UpdateProductInput{
		DiscountPercent: &discount,
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.DiscountedPrice)

	price := 799.0
	updated, err = svc.Update(context.Background(), product.ID.Hex(), UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 599.0, updated.DiscountedPrice) // round(799 - 199.75)
}

func TestGetProductFallsBackToExternalID(t *testing.T) {
	svc, _ := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "X",
		Category:  "protein",
		Price:     100,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)

	_, err = svc.Get(context.Background(), "missing-id")
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestProductGalleryLifecycle(t *testing.T) {
	svc, uploads := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "X",
		Category:  "protein",
		Price:     100,
		Images: []uploader.File{
			{Name: "a.jpg", Data: []byte("a")},
			{Name: "b.jpg", Data: []byte("b")},
		},
	})
	require.NoError(t, err)
	require.Len(t, product.Gallery, 2)
	assert.Equal(t, product.Gallery[0], product.Image)
	assert.Equal(t, 2, uploads.Stored())

	// Keep only the second image; the dropped asset is removed from storage.
	updated, err := svc.Update(context.Background(), product.ID.Hex(), UpdateProductInput{
		ExistingGallery: []string{product.Gallery[1]},
	})
	require.NoError(t, err)
	require.Len(t, updated.Gallery, 1)
	assert.Equal(t, product.Gallery[1], updated.Image)
	assert.Equal(t, 1, uploads.Stored())

	require.NoError(t, svc.Delete(context.Background(), product.ID.Hex()))
	assert.Equal(t, 0, uploads.Stored())
}

func TestDeleteProductSurvivesAssetDeleteFailure(t *testing.T) {
	svc, uploads := newProductFixture(t)

	product, err := svc.Create(context.Background(), CreateProductInput{
		BrandName: "Shark",
		Name:      "X",
		Category:  "protein",
		Price:     100,
		Images:    []uploader.File{{Name: "a.jpg", Data: []byte("a")}},
	})
	require.NoError(t, err)

	uploads.FailDeletes = true
	require.NoError(t, svc.Delete(context.Background(), product.ID.Hex()))

	_, err = svc.Get(context.Background(), product.ID.Hex())
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListProductsFiltersByCategory(t *testing.T) {
	svc, _ := newProductFixture(t)

	for _, category := range []string{"protein", "protein", "vitamins"} {
		_, err := svc.Create(context.Background(), CreateProductInput{
			BrandName: "Shark", Name: "X", Category: category, Price: 100,
		})
		require.NoError(t, err)
	}

	products, err := svc.List(context.Background(), "Protein")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestDiscountedPriceRounding(t *testing.T) {
	cases := []struct {
		price, percent, want float64
	}{
		{1000, 10, 900},
		{1000, 0, 1000},
		{999, 33, 669}, // round(669.33)
		{100, 100, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, discountedPrice(tc.price, tc.percent))
	}
}
