package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/auth"
	"crm_backend/internal/redis"
)

const userKey = "currentUser"
const tokenKey = "bearerToken"

// Authenticate guards data routes: it requires a bearer token, verifies
// the signature and expiry, and rejects tokens revoked via logout. The
// 401 body never distinguishes why a token was refused.
func Authenticate(secret []byte, tokens *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		claims, err := auth.Parse(secret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		revoked, err := tokens.IsTokenRevoked(c.Request.Context(), token)
		if err != nil || revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userKey, claims)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireRoles restricts a route to the given roles. Must run after
// Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// CurrentUser returns the authenticated caller's claims.
func CurrentUser(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
