package middlewares

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

// RoleLookup returns the role a user holds right now.
type RoleLookup func(ctx context.Context, userID string) (string, error)

// FreshRole runs after AuthMiddleware and checks the stored role instead of
// the one signed into the token, so a demoted or deleted account loses
// access before its token expires.
func FreshRole(lookup RoleLookup, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := lookup(c.Request.Context(), utils.CurrentUserID(c))
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "account no longer exists"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
			return
		}
		if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Set(utils.RoleKey, role)
		c.Next()
	}
}
