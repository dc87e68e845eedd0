package utils

import "github.com/gin-gonic/gin"

// context keys set by the auth middlewares
const (
	UserIDKey = "userId"
	RoleKey   = "role"
)

func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(RoleKey)
}
