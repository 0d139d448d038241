package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/auth"
)

const cookieMaxAge = 7 * 24 * 60 * 60

func (s *Server) adminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "error": "invalid input"})
		return
	}

	admin, err := s.svc.Admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	token, err := auth.NewToken([]byte(s.cfg.JWTSecret), admin)
	if err != nil {
		s.fail(c, err)
		return
	}

	if s.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, token, cookieMaxAge, "/", "", s.cfg.IsProduction(), true)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"admin":   gin.H{"id": admin.ID.Hex(), "username": admin.Username, "name": admin.Name},
		"token":   token,
	})
}

func (s *Server) adminVerify(c *gin.Context) {
	token := auth.TokenFromRequest(c)
	if token == "" {
		c.JSON(401, gin.H{"success": false, "error": "No token found"})
		return
	}
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "error": "Invalid token"})
		return
	}
	c.JSON(200, gin.H{"success": true, "admin": claims})
}

func (s *Server) adminLogout(c *gin.Context) {
	if s.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", s.cfg.IsProduction(), true)
	c.JSON(200, gin.H{"message": "Logged out successfully"})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.svc.Admins.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(200, stats)
}
