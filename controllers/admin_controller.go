package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AdminController holds the dashboard endpoints that are not tied to one resource.
type AdminController struct {
	users     *services.UserService
	analytics *services.AnalyticsService
}

func NewAdminController(users *services.UserService, analytics *services.AnalyticsService) *AdminController {
	return &AdminController{users: users, analytics: analytics}
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	out, err := ac.users.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /admin/users/:id/role
func (ac *AdminController) SetRole(c *gin.Context) {
	var req RoleRequest
	if !bind(c, &req) {
		return
	}
	u, err := ac.users.SetRole(c.Request.Context(), utils.CurrentUserID(c), c.Param("id"), req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, u)
}

// GET /admin/analytics
func (ac *AdminController) Analytics(c *gin.Context) {
	a, err := ac.analytics.Summary(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, a)
}
