package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/service"
)

func (s *Server) createCoupon(c *gin.Context) {
	var req struct {
		Code          string    `json:"code"`
		DiscountType  string    `json:"discountType"`
		DiscountValue float64   `json:"discountValue"`
		ExpiryDate    time.Time `json:"expiryDate"`
		UsageLimit    int       `json:"usageLimit"`
		MinPurchase   float64   `json:"minPurchase"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "All required fields must be filled"})
		return
	}

	coupon, err := s.svc.Coupons.Create(c.Request.Context(), service.CreateCouponInput{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		ExpiryDate:    req.ExpiryDate,
		UsageLimit:    req.UsageLimit,
		MinPurchase:   req.MinPurchase,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "coupon": coupon})
}

func (s *Server) listCoupons(c *gin.Context) {
	coupons, err := s.svc.Coupons.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "coupons": coupons})
}

func (s *Server) deleteCoupon(c *gin.Context) {
	if err := s.svc.Coupons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Coupon deleted successfully"})
}

func (s *Server) applyCoupon(c *gin.Context) {
	var req struct {
		Code      string  `json:"code"`
		CartTotal float64 `json:"cartTotal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "Code and cartTotal required"})
		return
	}

	result, err := s.svc.Coupons.Apply(c.Request.Context(), req.Code, req.CartTotal)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":         true,
		"discount":        result.Discount,
		"discountedTotal": result.DiscountedTotal,
		"couponCode":      result.CouponCode,
	})
}
