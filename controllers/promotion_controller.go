package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ValidatePromotionRequest struct {
	Code string `json:"code" binding:"required"`
}

type PromotionController struct {
	promos *services.PromotionService
	carts  *services.CartService
}

func NewPromotionController(promos *services.PromotionService, carts *services.CartService) *PromotionController {
	return &PromotionController{promos: promos, carts: carts}
}

// POST /promotions/validate
// Quotes the code against the caller's current cart subtotal.
func (pc *PromotionController) Validate(c *gin.Context) {
	var req ValidatePromotionRequest
	if !bind(c, &req) {
		return
	}
	v, err := pc.carts.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	q, err := pc.promos.Validate(c.Request.Context(), req.Code, v.Subtotal)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, q)
}

// ===== admin =====

// GET /admin/promotions
func (pc *PromotionController) List(c *gin.Context) {
	out, err := pc.promos.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/promotions
func (pc *PromotionController) Create(c *gin.Context) {
	var in services.PromotionInput
	if !bind(c, &in) {
		return
	}
	p, err := pc.promos.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /admin/promotions/:id
func (pc *PromotionController) Update(c *gin.Context) {
	var in services.PromotionInput
	if !bind(c, &in) {
		return
	}
	p, err := pc.promos.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/promotions/:id
func (pc *PromotionController) Delete(c *gin.Context) {
	if err := pc.promos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
