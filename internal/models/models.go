package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FullName  string               `bson:"fullName" json:"fullName"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Wishlist  []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	Name     string             `bson:"name" json:"name"`
}

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	ImageID     string             `bson:"imageId,omitempty" json:"imageId,omitempty"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	SliderOrder *int               `bson:"sliderOrder" json:"sliderOrder"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Ratings is the aggregate stored on a product, derived from its review set.
type Ratings struct {
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	TotalRatings  int     `bson:"totalRatings" json:"totalRatings"`
}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID       string             `bson:"productId" json:"productId"`
	BrandName       string             `bson:"brandName" json:"brandName"`
	Name            string             `bson:"name" json:"name"`
	Price           float64            `bson:"price" json:"price"`
	DiscountPercent float64            `bson:"discountPercent" json:"discountPercent"`
	DiscountedPrice float64            `bson:"discountedPrice" json:"discountedPrice"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Ratings         Ratings            `bson:"ratings" json:"ratings"`
	Image           string             `bson:"image" json:"image"`
	ImageID         string             `bson:"imageId,omitempty" json:"imageId,omitempty"`
	Gallery         []string           `bson:"gallery" json:"gallery"`
	GalleryIDs      []string           `bson:"galleryIds" json:"galleryIds"`
	Category        string             `bson:"category" json:"category"`
	Flavor          []string           `bson:"flavor" json:"flavor"`
	Servings        []int              `bson:"servings" json:"servings"`
	Weight          string             `bson:"weight" json:"weight"`
	Description     string             `bson:"description" json:"description"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID  `bson:"productId" json:"productId"`
	UserID    *primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string              `bson:"name" json:"name"`
	Email     string              `bson:"email" json:"email"`
	Rating    int                 `bson:"rating" json:"rating"`
	Message   string              `bson:"message" json:"message"`
	Image     string              `bson:"image,omitempty" json:"image,omitempty"`
	ImageID   string              `bson:"imageId,omitempty" json:"imageId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	BrandName string             `bson:"brandName" json:"brandName"`
	Price     float64            `bson:"price" json:"price"`
	Count     int                `bson:"count" json:"count"`
	Flavor    string             `bson:"flavor" json:"flavor"`
	Servings  string             `bson:"servings" json:"servings"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	Address       string             `bson:"address" json:"address"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	CartItems     []CartItem         `bson:"cartItems" json:"cartItems"`
	CouponCode    string             `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Discount      float64            `bson:"discount" json:"discount"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Coupon struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"code" json:"code"`
	DiscountType  string             `bson:"discountType" json:"discountType"` // "percentage" or "fixed"
	DiscountValue float64            `bson:"discountValue" json:"discountValue"`
	ExpiryDate    time.Time          `bson:"expiryDate" json:"expiryDate"`
	UsageLimit    int                `bson:"usageLimit" json:"usageLimit"`
	UsedCount     int                `bson:"usedCount" json:"usedCount"`
	MinPurchase   float64            `bson:"minPurchase" json:"minPurchase"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Tel       string             `bson:"tel" json:"tel"`
	Subjects  string             `bson:"subjects" json:"subjects"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
