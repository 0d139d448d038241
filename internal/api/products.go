package api

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/service"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.svc.Products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, products)
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.svc.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "product": product})
}

func (s *Server) productsByIDs(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IDs == nil {
		c.JSON(400, gin.H{"success": false, "error": "IDs array required"})
		return
	}
	products, err := s.svc.Products.ByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "products": products})
}

func (s *Server) productCount(c *gin.Context) {
	count, err := s.svc.Products.Count(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "count": count})
}

func (s *Server) createProduct(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if c.PostForm("price") != "" && (err != nil || price <= 0) {
		c.JSON(400, gin.H{"success": false, "error": "Price must be a positive number"})
		return
	}
	discountPercent, _ := strconv.ParseFloat(c.PostForm("discountPercent"), 64)
	quantity, _ := strconv.Atoi(c.PostForm("quantity"))

	images, err := formFiles(c, "images", createGalleryMax, entityImageMaxBytes)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}

	product, err := s.svc.Products.Create(c.Request.Context(), service.CreateProductInput{
		BrandName:       c.PostForm("brandName"),
		Name:            c.PostForm("name"),
		Category:        c.PostForm("category"),
		Price:           price,
		DiscountPercent: discountPercent,
		Quantity:        quantity,
		Weight:          c.PostForm("weight"),
		Flavor:          jsonStrings(c.PostForm("flavor")),
		Servings:        jsonInts(c.PostForm("servings")),
		Description:     c.PostForm("description"),
		Images:          images,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Product added successfully", "product": product})
}

func (s *Server) updateProduct(c *gin.Context) {
	images, err := formFiles(c, "images", updateGalleryMax, entityImageMaxBytes)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}

	in := service.UpdateProductInput{
		BrandName:       c.PostForm("brandName"),
		Name:            c.PostForm("name"),
		Category:        c.PostForm("category"),
		Flavor:          jsonStrings(c.PostForm("flavor")),
		Servings:        jsonInts(c.PostForm("servings")),
		ExistingGallery: c.PostFormArray("existingGallery"),
		Images:          images,
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			c.JSON(400, gin.H{"success": false, "error": "Price must be a positive number"})
			return
		}
		in.Price = &price
	}
	if v := c.PostForm("discountPercent"); v != "" {
		discountPercent, _ := strconv.ParseFloat(v, 64)
		in.DiscountPercent = &discountPercent
	}
	if v := c.PostForm("quantity"); v != "" {
		quantity, _ := strconv.Atoi(v)
		in.Quantity = &quantity
	}
	if v, ok := c.GetPostForm("weight"); ok {
		in.Weight = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}

	product, err := s.svc.Products.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "product": product})
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.svc.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}

// jsonStrings decodes a JSON array form field like `["Chocolate","Vanilla"]`.
func jsonStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

func jsonInts(raw string) []int {
	if raw == "" {
		return nil
	}
	var out []int
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
