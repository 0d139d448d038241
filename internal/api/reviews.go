package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/service"
)

func (s *Server) createReview(c *gin.Context) {
	image, err := formFile(c, "image", reviewImageMaxBytes)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	review, product, err := s.svc.Reviews.Submit(c.Request.Context(), service.SubmitReviewInput{
		ProductID: c.PostForm("productId"),
		UserID:    c.PostForm("userId"),
		Name:      c.PostForm("name"),
		Email:     c.PostForm("email"),
		Message:   c.PostForm("message"),
		Rating:    rating,
		Image:     image,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "review": review, "updatedProduct": product})
}

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.svc.Reviews.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "reviews": reviews})
}

func (s *Server) productReviews(c *gin.Context) {
	reviews, err := s.svc.Reviews.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "reviews": reviews})
}

func (s *Server) deleteReview(c *gin.Context) {
	product, err := s.svc.Reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success":        true,
		"message":        "Review deleted successfully",
		"updatedProduct": product,
	})
}
