package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sharknutrition-backend/internal/auth"
	"sharknutrition-backend/internal/config"
	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
	"sharknutrition-backend/internal/service"
	"sharknutrition-backend/internal/uploader"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fixture struct {
	server   *Server
	products repository.ProductRepository
	coupons  repository.CouponRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := repository.NewMemoryUsers()
	admins := repository.NewMemoryAdmins()
	categories := repository.NewMemoryCategories()
	products := repository.NewMemoryProducts()
	reviews := repository.NewMemoryReviews()
	orders := repository.NewMemoryOrders()
	coupons := repository.NewMemoryCoupons()
	contacts := repository.NewMemoryContacts()
	uploads := uploader.NewMemory()

	hashed, err := bcrypt.GenerateFromPassword([]byte("letmein123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, admins.Upsert(context.Background(), &models.Admin{
		Username: "admin",
		Password: string(hashed),
		Name:     "Store Admin",
	}))

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
		Env:            "development",
	}

	server := NewServer(cfg, Services{
		Admins:     service.NewAdminService(admins, users, orders, products),
		Users:      service.NewUserService(users, products),
		Products:   service.NewProductService(products, uploads),
		Categories: service.NewCategoryService(categories, uploads),
		Reviews:    service.NewReviewService(reviews, products, uploads),
		Orders:     service.NewOrderService(orders, products, coupons),
		Coupons:    service.NewCouponService(coupons),
		Contacts:   service.NewContactService(contacts),
	}, nil)

	return &fixture{server: server, products: products, coupons: coupons}
}

func (f *fixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAdminLoginSetsCookie(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/api/admin/login", gin.H{"username": "admin", "password": "letmein123"}, nil)
	require.Equal(t, 200, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/api/admin/login", gin.H{"username": "admin", "password": "wrong"}, nil)
	require.Equal(t, 401, rec.Code)

	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, auth.CookieName, c.Name)
	}
}

func TestAdminRouteRequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/api/admin/stats", nil, nil)
	assert.Equal(t, 403, rec.Code)

	rec = f.do(t, "GET", "/api/admin/stats", nil, map[string]string{
		"Authorization": "Bearer not-a-real-token",
	})
	assert.Equal(t, 401, rec.Code)
}

func TestAdminStatsWithBearerToken(t *testing.T) {
	f := newFixture(t)

	login := f.do(t, "POST", "/api/admin/login", gin.H{"username": "admin", "password": "letmein123"}, nil)
	require.Equal(t, 200, login.Code)
	token := decode(t, login)["token"].(string)

	rec := f.do(t, "GET", "/api/admin/stats", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, 200, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(0), body["totalOrders"])
}

func TestAdminVerifyAndLogout(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/api/admin/verify", nil, nil)
	assert.Equal(t, 401, rec.Code)

	login := f.do(t, "POST", "/api/admin/login", gin.H{"username": "admin", "password": "letmein123"}, nil)
	token := decode(t, login)["token"].(string)

	rec = f.do(t, "GET", "/api/admin/verify", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = f.do(t, "POST", "/api/admin/logout", nil, nil)
	require.Equal(t, 200, rec.Code)
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	f := newFixture(t)

	payload := gin.H{"fullName": "Ali Khan", "email": "ali@example.com", "password": "secret123"}

	rec := f.do(t, "POST", "/api/users/register", payload, nil)
	require.Equal(t, 201, rec.Code)

	rec = f.do(t, "POST", "/api/users/register", payload, nil)
	require.Equal(t, 409, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestUserLoginOmitsPassword(t *testing.T) {
	f := newFixture(t)

	f.do(t, "POST", "/api/users/register", gin.H{
		"fullName": "Ali Khan", "email": "ali@example.com", "password": "secret123",
	}, nil)

	rec := f.do(t, "POST", "/api/users/login", gin.H{"email": "ali@example.com", "password": "secret123"}, nil)
	require.Equal(t, 200, rec.Code)

	body := decode(t, rec)
	assert.NotContains(t, body, "password")
	assert.Equal(t, "ali@example.com", body["email"])
}

func TestCreateOrderMissingFieldList(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/api/orders", gin.H{
		"name":    "Ali",
		"email":   "ali@example.com",
		"phone":   "03001234567",
		"address": "Karachi",
		"cartItems": []gin.H{
			{"name": "Whey", "price": 1000, "count": 1},
		},
	}, nil)
	require.Equal(t, 400, rec.Code)

	body := decode(t, rec)
	assert.Contains(t, body["missingFields"], "paymentMethod")
	assert.NotContains(t, body["missingFields"], "phone")
}

func TestApplyCouponEndpoint(t *testing.T) {
	f := newFixture(t)

	_, err := f.coupons.Insert(context.Background(), &models.Coupon{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ExpiryDate:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	rec := f.do(t, "POST", "/api/coupons/apply", gin.H{"code": "save10", "cartTotal": 500}, nil)
	require.Equal(t, 200, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(50), body["discount"])
	assert.Equal(t, float64(450), body["discountedTotal"])

	rec = f.do(t, "POST", "/api/coupons/apply", gin.H{"code": "NOPE", "cartTotal": 500}, nil)
	assert.Equal(t, 404, rec.Code)
}

func TestProductListAndGet(t *testing.T) {
	f := newFixture(t)

	product, err := f.products.Insert(context.Background(), &models.Product{
		Name: "Whey Isolate", Category: "protein", Price: 1000,
	})
	require.NoError(t, err)

	rec := f.do(t, "GET", "/api/products", nil, nil)
	require.Equal(t, 200, rec.Code)
	var list []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = f.do(t, "GET", "/api/products/"+product.ID.Hex(), nil, nil)
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = f.do(t, "GET", "/api/products/000000000000000000000000", nil, nil)
	assert.Equal(t, 404, rec.Code)
}

func TestContactValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "POST", "/api/contact", gin.H{"name": "Ali"}, nil)
	assert.Equal(t, 400, rec.Code)

	rec = f.do(t, "POST", "/api/contact", gin.H{
		"name": "Ali", "email": "ali@example.com", "message": "hello",
	}, nil)
	assert.Equal(t, 201, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/api/health", nil, nil)
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestHealthReportsDatabaseFailure(t *testing.T) {
	f := newFixture(t)
	f.server.healthPing = func(ctx context.Context) error { return errors.New("down") }

	rec := f.do(t, "GET", "/api/health", nil, nil)
	assert.Equal(t, 503, rec.Code)
}
