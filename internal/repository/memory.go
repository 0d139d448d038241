package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sharknutrition-backend/internal/models"
)

// In-memory repositories, used by tests and local development without a
// running MongoDB instance.

// ---------------- USERS ----------------

type memoryUsers struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUsers() UserRepository { return &memoryUsers{} }

func (r *memoryUsers) Insert(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users = append(r.users, *user)
	return user, nil
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) UpdateWishlist(_ context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Wishlist = wishlist
			r.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryUsers) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	sortNewest(out, func(u models.User) time.Time { return u.CreatedAt })
	return out, nil
}

func (r *memoryUsers) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

// ---------------- ADMINS ----------------

type memoryAdmins struct {
	mu     sync.RWMutex
	admins []models.Admin
}

func NewMemoryAdmins() AdminRepository { return &memoryAdmins{} }

func (r *memoryAdmins) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.admins {
		if r.admins[i].Username == username {
			a := r.admins[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAdmins) Upsert(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].Username == admin.Username {
			r.admins[i].Password = admin.Password
			r.admins[i].Name = admin.Name
			return nil
		}
	}
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	r.admins = append(r.admins, *admin)
	return nil
}

// ---------------- CATEGORIES ----------------

type memoryCategories struct {
	mu         sync.RWMutex
	categories []models.Category
}

func NewMemoryCategories() CategoryRepository { return &memoryCategories{} }

func (r *memoryCategories) Insert(_ context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	r.categories = append(r.categories, *category)
	return category, nil
}

func (r *memoryCategories) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCategories) FindAll(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sortNewest(out, func(c models.Category) time.Time { return c.CreatedAt })
	return out, nil
}

func (r *memoryCategories) FindFeatured(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Category
	for _, c := range r.categories {
		if c.IsFeatured {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := 0, 0
		if out[i].SliderOrder != nil {
			a = *out[i].SliderOrder
		}
		if out[j].SliderOrder != nil {
			b = *out[j].SliderOrder
		}
		return a < b
	})
	return out, nil
}

func (r *memoryCategories) Update(_ context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return category, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---------------- PRODUCTS ----------------

type memoryProducts struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemoryProducts() ProductRepository { return &memoryProducts{} }

func (r *memoryProducts) Insert(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	r.products = append(r.products, *product)
	return product, nil
}

func (r *memoryProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) FindByProductID(_ context.Context, productID string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ProductID == productID {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Product
	for _, p := range r.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *memoryProducts) Find(_ context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryProducts) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return product, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) UpdateRatings(_ context.Context, id primitive.ObjectID, ratings models.Ratings) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Ratings = ratings
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProducts) IncrementQuantity(_ context.Context, id primitive.ObjectID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Quantity += delta
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryProducts) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// ---------------- REVIEWS ----------------

type memoryReviews struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewMemoryReviews() ReviewRepository { return &memoryReviews{} }

func (r *memoryReviews) Insert(_ context.Context, review *models.Review) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, *review)
	return review, nil
}

func (r *memoryReviews) FindByID(_ context.Context, id primitive.ObjectID) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			rv := r.reviews[i]
			return &rv, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryReviews) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	sortNewest(out, func(rv models.Review) time.Time { return rv.CreatedAt })
	return out, nil
}

func (r *memoryReviews) FindAll(_ context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	sortNewest(out, func(rv models.Review) time.Time { return rv.CreatedAt })
	return out, nil
}

func (r *memoryReviews) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---------------- ORDERS ----------------

type memoryOrders struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrders() OrderRepository { return &memoryOrders{} }

func (r *memoryOrders) Insert(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.orders = append(r.orders, *order)
	return order, nil
}

func (r *memoryOrders) FindAll(_ context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	sortNewest(out, func(o models.Order) time.Time { return o.CreatedAt })
	return out, nil
}

func (r *memoryOrders) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryOrders) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// ---------------- COUPONS ----------------

type memoryCoupons struct {
	mu      sync.RWMutex
	coupons []models.Coupon
}

func NewMemoryCoupons() CouponRepository { return &memoryCoupons{} }

func (r *memoryCoupons) Insert(_ context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon.ID = primitive.NewObjectID()
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = coupon.CreatedAt
	r.coupons = append(r.coupons, *coupon)
	return coupon, nil
}

func (r *memoryCoupons) FindByCode(_ context.Context, code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.coupons {
		if r.coupons[i].Code == code {
			c := r.coupons[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCoupons) FindAll(_ context.Context) ([]models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Coupon, len(r.coupons))
	copy(out, r.coupons)
	sortNewest(out, func(c models.Coupon) time.Time { return c.CreatedAt })
	return out, nil
}

func (r *memoryCoupons) IncrementUsage(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.coupons {
		if r.coupons[i].Code == code {
			r.coupons[i].UsedCount++
			r.coupons[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCoupons) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.coupons {
		if r.coupons[i].ID == id {
			r.coupons = append(r.coupons[:i], r.coupons[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---------------- CONTACTS ----------------

type memoryContacts struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func NewMemoryContacts() ContactRepository { return &memoryContacts{} }

func (r *memoryContacts) Insert(_ context.Context, contact *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	r.contacts = append(r.contacts, *contact)
	return contact, nil
}

func sortNewest[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}
