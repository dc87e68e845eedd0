package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"

	"github.com/gin-gonic/gin"
)

// MenuController is the admin side of menu items. Customers read menus
// through RestaurantController.Menu.
type MenuController struct{ menus *services.MenuService }

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{menus: menus}
}

// GET /admin/menu-items?restaurantId=
func (mc *MenuController) List(c *gin.Context) {
	rid := c.Query("restaurantId")
	if rid == "" {
		resp.Invalid(c, "restaurantId", "restaurantId is required")
		return
	}
	items, err := mc.menus.List(c.Request.Context(), rid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /admin/menu-items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	m, err := mc.menus.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /admin/menu-items
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemInput
	if !bind(c, &in) {
		return
	}
	m, err := mc.menus.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /admin/menu-items/:id
func (mc *MenuController) Update(c *gin.Context) {
	var in services.MenuItemInput
	if !bind(c, &in) {
		return
	}
	m, err := mc.menus.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /admin/menu-items/:id
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.menus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
