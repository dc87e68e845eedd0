package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

type UpdateQuantityRequest struct {
	// 0 or less removes the line
	Quantity *int `json:"quantity" binding:"required"`
}

type CartController struct{ carts *services.CartService }

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	v, err := cc.carts.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /cart/items
// 409 when the cart holds another restaurant's items; resend with "replace": true to start over.
func (cc *CartController) Add(c *gin.Context) {
	var in services.AddToCartIn
	if !bind(c, &in) {
		return
	}
	v, err := cc.carts.Add(c.Request.Context(), utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /cart/items/:itemId
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if !bind(c, &req) {
		return
	}
	v, err := cc.carts.UpdateQuantity(utils.CurrentUserID(c), c.Param("itemId"), *req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart/items/:itemId
func (cc *CartController) Remove(c *gin.Context) {
	v, err := cc.carts.Remove(utils.CurrentUserID(c), c.Param("itemId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.carts.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
