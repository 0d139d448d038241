package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/service"
)

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.svc.Categories.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "categories": categories})
}

func (s *Server) sliderCategories(c *gin.Context) {
	categories, err := s.svc.Categories.Slider(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "categories": categories})
}

func (s *Server) createCategory(c *gin.Context) {
	in, err := categoryInput(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}

	category, err := s.svc.Categories.Create(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "category": category})
}

func (s *Server) updateCategory(c *gin.Context) {
	in, err := categoryInput(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}

	category, err := s.svc.Categories.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "category": category})
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.svc.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}

func categoryInput(c *gin.Context) (service.CategoryInput, error) {
	in := service.CategoryInput{
		Name:       c.PostForm("name"),
		IsFeatured: c.PostForm("isFeatured") == "true",
	}
	if v := c.PostForm("sliderOrder"); v != "" {
		if order, err := strconv.Atoi(v); err == nil {
			in.SliderOrder = &order
		}
	}
	image, err := formFile(c, "image", entityImageMaxBytes)
	if err != nil {
		return in, err
	}
	in.Image = image
	return in, nil
}
