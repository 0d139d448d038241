package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sharknutrition-backend/internal/models"
)

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// ---------------- USERS ----------------

type mongoUsers struct{ col *mongo.Collection }

func NewMongoUsers(db *mongo.Database) UserRepository {
	return &mongoUsers{col: db.Collection("users")}
}

func (r *mongoUsers) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (r *mongoUsers) UpdateWishlist(ctx context.Context, id primitive.ObjectID, wishlist []primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"wishlist": wishlist, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUsers) FindAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUsers) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// ---------------- ADMINS ----------------

type mongoAdmins struct{ col *mongo.Collection }

func NewMongoAdmins(db *mongo.Database) AdminRepository {
	return &mongoAdmins{col: db.Collection("admins")}
}

func (r *mongoAdmins) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		return nil, mapErr(err)
	}
	return &admin, nil
}

func (r *mongoAdmins) Upsert(ctx context.Context, admin *models.Admin) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"username": admin.Username},
		bson.M{"$set": bson.M{"password": admin.Password, "name": admin.Name}},
		options.Update().SetUpsert(true))
	return err
}

// ---------------- CATEGORIES ----------------

type mongoCategories struct{ col *mongo.Collection }

func NewMongoCategories(db *mongo.Database) CategoryRepository {
	return &mongoCategories{col: db.Collection("categories")}
}

func (r *mongoCategories) Insert(ctx context.Context, category *models.Category) (*models.Category, error) {
	category.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (r *mongoCategories) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		return nil, mapErr(err)
	}
	return &category, nil
}

func (r *mongoCategories) FindAll(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategories) FindFeatured(ctx context.Context) ([]models.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{"isFeatured": true},
		options.Find().SetSort(bson.D{{Key: "sliderOrder", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategories) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return category, nil
}

func (r *mongoCategories) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- PRODUCTS ----------------

type mongoProducts struct{ col *mongo.Collection }

func NewMongoProducts(db *mongo.Database) ProductRepository {
	return &mongoProducts{col: db.Collection("products")}
}

func (r *mongoProducts) Insert(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (r *mongoProducts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

func (r *mongoProducts) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := r.col.FindOne(ctx, bson.M{"productId": productID}).Decode(&product); err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

func (r *mongoProducts) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProducts) Find(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProducts) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return product, nil
}

func (r *mongoProducts) UpdateRatings(ctx context.Context, id primitive.ObjectID, ratings models.Ratings) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"ratings": ratings}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&product)
	if err != nil {
		return nil, mapErr(err)
	}
	return &product, nil
}

func (r *mongoProducts) IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"quantity": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProducts) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProducts) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// ---------------- REVIEWS ----------------

type mongoReviews struct{ col *mongo.Collection }

func NewMongoReviews(db *mongo.Database) ReviewRepository {
	return &mongoReviews{col: db.Collection("reviews")}
}

func (r *mongoReviews) Insert(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return review, nil
}

func (r *mongoReviews) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		return nil, mapErr(err)
	}
	return &review, nil
}

func (r *mongoReviews) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"productId": productID}, newestFirst)
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *mongoReviews) FindAll(ctx context.Context) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *mongoReviews) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- ORDERS ----------------

type mongoOrders struct{ col *mongo.Collection }

func NewMongoOrders(db *mongo.Database) OrderRepository {
	return &mongoOrders{col: db.Collection("orders")}
}

func (r *mongoOrders) Insert(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *mongoOrders) FindAll(ctx context.Context) ([]models.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrders) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoOrders) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// ---------------- COUPONS ----------------

type mongoCoupons struct{ col *mongo.Collection }

func NewMongoCoupons(db *mongo.Database) CouponRepository {
	return &mongoCoupons{col: db.Collection("coupons")}
}

func (r *mongoCoupons) Insert(ctx context.Context, coupon *models.Coupon) (*models.Coupon, error) {
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = coupon.CreatedAt
	res, err := r.col.InsertOne(ctx, coupon)
	if err != nil {
		return nil, err
	}
	coupon.ID = res.InsertedID.(primitive.ObjectID)
	return coupon, nil
}

func (r *mongoCoupons) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&coupon); err != nil {
		return nil, mapErr(err)
	}
	return &coupon, nil
}

func (r *mongoCoupons) FindAll(ctx context.Context) ([]models.Coupon, error) {
	cur, err := r.col.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, err
	}
	var coupons []models.Coupon
	if err := cur.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *mongoCoupons) IncrementUsage(ctx context.Context, code string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"code": code},
		bson.M{"$inc": bson.M{"usedCount": 1}, "$set": bson.M{"updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCoupons) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- CONTACTS ----------------

type mongoContacts struct{ col *mongo.Collection }

func NewMongoContacts(db *mongo.Database) ContactRepository {
	return &mongoContacts{col: db.Collection("contacts")}
}

func (r *mongoContacts) Insert(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	contact.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, contact)
	if err != nil {
		return nil, err
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return contact, nil
}
