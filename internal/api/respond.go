package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/service"
)

// fail maps service errors onto HTTP statuses. Unexpected errors become a
// 500 whose message is only echoed outside production.
func (s *Server) fail(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var authErr *service.AuthError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &validationErr):
		if len(validationErr.MissingFields) > 0 {
			c.JSON(400, gin.H{"message": validationErr.Message, "missingFields": validationErr.MissingFields})
			return
		}
		c.JSON(400, gin.H{"success": false, "error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(404, gin.H{"success": false, "error": notFoundErr.Message})
	case errors.As(err, &authErr):
		c.JSON(401, gin.H{"success": false, "error": authErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(409, gin.H{"success": false, "message": conflictErr.Message})
	default:
		msg := "Server error"
		if !s.cfg.IsProduction() {
			msg = err.Error()
		}
		c.JSON(500, gin.H{"success": false, "error": msg})
	}
}
