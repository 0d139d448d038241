package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenFromRequest reads the admin token from the cookie, falling back to an
// Authorization bearer header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AdminRequired gates admin-only routes. The decoded claims are stored on the
// context under "admin".
func AdminRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(403, gin.H{"message": "No token provided"})
			return
		}
		claims, err := ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"message": "Invalid or expired token"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(403, gin.H{"message": "Access denied: Admin only"})
			return
		}
		c.Set("admin", claims)
		c.Next()
	}
}
