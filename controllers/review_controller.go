package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ reviews *services.ReviewService }

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var in services.ReviewInput
	if !bind(c, &in) {
		return
	}
	r, err := rc.reviews.Create(c.Request.Context(), utils.CurrentUserID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, r)
}

// GET /reviews/mine
func (rc *ReviewController) Mine(c *gin.Context) {
	out, err := rc.reviews.ListForUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /reviews/:id (author only)
func (rc *ReviewController) Update(c *gin.Context) {
	var in services.ReviewUpdate
	if !bind(c, &in) {
		return
	}
	r, err := rc.reviews.Update(c.Request.Context(), utils.CurrentUserID(c), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /reviews/:id (author only)
func (rc *ReviewController) Delete(c *gin.Context) {
	if err := rc.reviews.Delete(c.Request.Context(), utils.CurrentUserID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /admin/reviews/:id
func (rc *ReviewController) Moderate(c *gin.Context) {
	if err := rc.reviews.Moderate(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /admin/ratings/reconcile
func (rc *ReviewController) Reconcile(c *gin.Context) {
	n, err := rc.reviews.ReconcileRatings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": n})
}
