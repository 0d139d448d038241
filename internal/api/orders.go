package api

import (
	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/models"
)

func (s *Server) createOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "invalid input"})
		return
	}

	saved, err := s.svc.Orders.Create(c.Request.Context(), &order)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully!",
		"data":    saved,
	})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.svc.Orders.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "orders": orders})
}

func (s *Server) orderCount(c *gin.Context) {
	count, err := s.svc.Orders.Count(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "count": count})
}

func (s *Server) deleteOrder(c *gin.Context) {
	if err := s.svc.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully"})
}
