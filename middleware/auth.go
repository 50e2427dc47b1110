package middleware

import (
	"net/http"
	"strings"

	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthRequired validates the bearer token, checks it against the auth cache
// so revoked sessions fail fast, and enforces the allowed roles when given.
func AuthRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or malformed Authorization header", "")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		subject, role, err := utils.ExtractClaimsFromToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
		exists, err := utils.GetAuthCacheClient().Exists(c.Request.Context(), cacheKey).Result()
		if err != nil || exists == 0 {
			utils.JSONError(c, http.StatusUnauthorized, "Session expired, please log in again", "")
			c.Abort()
			return
		}

		if len(roles) > 0 && !contains(roles, role) {
			utils.JSONError(c, http.StatusForbidden, "Insufficient permissions", "")
			c.Abort()
			return
		}

		c.Set(ContextUserID, subject)
		c.Set(ContextRole, role)
		c.Next()
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
