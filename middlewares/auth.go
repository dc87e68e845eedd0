package middlewares

import (
	"net/http"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and, when roles are given, one of them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			return
		}
		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}
		authorize(c, claims, requiredRoles)
	}
}

func authorize(c *gin.Context, claims *utils.Claims, requiredRoles []string) {
	c.Set(utils.UserIDKey, claims.UserID)
	c.Set(utils.RoleKey, claims.Role)

	if len(requiredRoles) > 0 {
		allowed := false
		for _, r := range requiredRoles {
			if claims.Role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
	}
	c.Next()
}
