package middleware

import (
	"net/http"
	"strings"
	"time"

	"vaxportal/utils"

	"github.com/gin-gonic/gin"
)

const (
	authCachePrefix = "auth:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthMiddleware validates the bearer token and stores the caller's
// user ID and role in the request context. Validated tokens are cached in
// the auth cache under their hash with a sliding TTL, so repeat requests
// skip signature verification.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := c.Request.Context()
		cacheKey := authCachePrefix + utils.HashToken(tokenString)
		authCache := utils.AuthCacheClient
		if authCache != nil {
			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				if userID, role, ok := splitCachedClaims(cached); ok {
					authCache.Expire(ctx, cacheKey, authCacheTTL)
					c.Set("userID", userID)
					c.Set("role", role)
					c.Next()
					return
				}
			}
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if authCache != nil {
			authCache.Set(ctx, cacheKey, userID+"|"+role, authCacheTTL)
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// splitCachedClaims unpacks the "userID|role" auth-cache value.
func splitCachedClaims(v string) (string, string, bool) {
	userID, role, ok := strings.Cut(v, "|")
	if !ok || userID == "" {
		return "", "", false
	}
	return userID, role, true
}
