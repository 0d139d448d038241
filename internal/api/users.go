package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (s *Server) register(c *gin.Context) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Please fill in all required fields."})
		return
	}

	user, err := s.svc.Users.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(201, gin.H{
		"message":  fmt.Sprintf("%s, your registration request was successful.", user.FullName),
		"register": true,
		"user": gin.H{
			"fullName": user.FullName,
			"email":    user.Email,
			"id":       user.ID.Hex(),
		},
	})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Please fill in all required fields.", "login": false})
		return
	}

	user, err := s.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"message":   fmt.Sprintf("%s, login successful", user.FullName),
		"login":     true,
		"_id":       user.ID.Hex(),
		"fullName":  user.FullName,
		"email":     user.Email,
		"wishlist":  user.Wishlist,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	})
}

func (s *Server) updateWishlist(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		ProductID string `json:"productId"`
		Action    string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Email, productId and action are required"})
		return
	}

	wishlist, err := s.svc.Users.UpdateWishlist(c.Request.Context(), req.Email, req.ProductID, req.Action)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"message":  fmt.Sprintf("Product %sed to wishlist successfully", req.Action),
		"wishlist": wishlist,
	})
}

func (s *Server) wishlist(c *gin.Context) {
	wishlist, err := s.svc.Users.Wishlist(c.Request.Context(), c.Param("email"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"wishlist": wishlist})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.svc.Users.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success": true,
		"message": "All users retrieved successfully",
		"users":   users,
	})
}

func (s *Server) userCount(c *gin.Context) {
	count, err := s.svc.Users.Count(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"userCount": count})
}
