package api

import (
	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/models"
)

func (s *Server) createContact(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Tel      string `json:"tel"`
		Subjects string `json:"subjects"`
		Message  string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Name and email are required."})
		return
	}

	_, err := s.svc.Contacts.Submit(c.Request.Context(), &models.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Tel:      req.Tel,
		Subjects: req.Subjects,
		Message:  req.Message,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Form submitted successfully!"})
}
