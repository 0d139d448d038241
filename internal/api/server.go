// Package api exposes the HTTP surface: one handler per route, each a thin
// parse/validate/delegate wrapper around a service call.
package api

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/auth"
	"sharknutrition-backend/internal/config"
	"sharknutrition-backend/internal/service"
)

type Services struct {
	Admins     *service.AdminService
	Users      *service.UserService
	Products   *service.ProductService
	Categories *service.CategoryService
	Reviews    *service.ReviewService
	Orders     *service.OrderService
	Coupons    *service.CouponService
	Contacts   *service.ContactService
}

type Server struct {
	cfg    config.Config
	router *gin.Engine
	svc    Services

	// healthPing checks the database; nil means always healthy.
	healthPing func(ctx context.Context) error
}

func NewServer(cfg config.Config, svc Services, healthPing func(ctx context.Context) error) *Server {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Cookie"},
		AllowCredentials: true,
	}))

	s := &Server{cfg: cfg, router: router, svc: svc, healthPing: healthPing}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	adminOnly := auth.AdminRequired([]byte(s.cfg.JWTSecret))

	s.router.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to Shark Nutrition API")
	})

	api := s.router.Group("/api")
	api.GET("/health", s.health)

	admin := api.Group("/admin")
	{
		admin.POST("/login", s.adminLogin)
		admin.GET("/verify", s.adminVerify)
		admin.POST("/logout", s.adminLogout)
		admin.GET("/stats", adminOnly, s.adminStats)
	}

	users := api.Group("/users")
	{
		users.POST("/register", s.register)
		users.POST("/login", s.login)
		users.POST("/wishlist", s.updateWishlist)
		users.GET("/wishlist/:email", s.wishlist)
		users.GET("/getAllUsers", adminOnly, s.listUsers)
		users.GET("/stats/count", s.userCount)
	}

	products := api.Group("/products")
	{
		products.GET("", s.listProducts)
		products.GET("/stats/count", s.productCount)
		products.POST("/by-ids", s.productsByIDs)
		products.GET("/:id", s.getProduct)
		products.POST("", adminOnly, s.createProduct)
		products.PUT("/:id", adminOnly, s.updateProduct)
		products.DELETE("/:id", adminOnly, s.deleteProduct)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", s.listCategories)
		categories.GET("/slider/home", s.sliderCategories)
		categories.POST("", adminOnly, s.createCategory)
		categories.PUT("/:id", adminOnly, s.updateCategory)
		categories.DELETE("/:id", adminOnly, s.deleteCategory)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", s.createReview)
		reviews.GET("", s.listReviews)
		reviews.GET("/all", s.listReviews)
		reviews.GET("/:productId", s.productReviews)
		reviews.DELETE("/:id", adminOnly, s.deleteReview)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", s.createOrder)
		orders.GET("", adminOnly, s.listOrders)
		orders.GET("/stats/count", s.orderCount)
		orders.DELETE("/:id", adminOnly, s.deleteOrder)
	}

	coupons := api.Group("/coupons")
	{
		coupons.POST("", adminOnly, s.createCoupon)
		coupons.GET("", adminOnly, s.listCoupons)
		coupons.DELETE("/:id", adminOnly, s.deleteCoupon)
		coupons.POST("/apply", s.applyCoupon)
	}

	api.POST("/contact", s.createContact)
}

func (s *Server) health(c *gin.Context) {
	if s.healthPing != nil {
		if err := s.healthPing(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "error", "error": "database connection failed"})
			return
		}
	}
	c.JSON(200, gin.H{"status": "ok", "service": "sharknutrition-backend"})
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
