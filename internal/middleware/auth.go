package middleware

import (
	"net/http"
	"strings"

	"equiedge/config"
	"equiedge/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the JWT and sets UserID, Email, ProfileID and
// IsExpert in the request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("profile_id", claims.ProfileID)
		c.Set("is_expert", claims.IsExpert)
		c.Next()
	}
}

// RequireExpert limits a route to users whose profile carries the expert flag.
func RequireExpert() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("is_expert")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if isExpert, _ := v.(bool); !isExpert {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "experts only"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from context (must be used after AuthRequired).
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

// GetEmail returns the authenticated account email from context.
func GetEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	if v == nil {
		return ""
	}
	return v.(string)
}

// GetProfileID returns the authenticated user's profile id, the identity
// bookings and chat key on.
func GetProfileID(c *gin.Context) string {
	v, _ := c.Get("profile_id")
	if v == nil {
		return ""
	}
	return v.(string)
}
