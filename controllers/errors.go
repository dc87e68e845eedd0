package controllers

import (
	"errors"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"

	"github.com/gin-gonic/gin"
)

// fail writes the response matching a service error.
func fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Invalid(c, verr.Field, verr.Message)
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrPaymentFailed):
		resp.PaymentRequired(c, services.ErrPaymentFailed.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, services.ErrForbidden.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, cart.ErrDifferentRestaurant),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrCodeTaken),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrRestaurantClosed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPromotionInvalid):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// bind decodes the JSON body, answering 400 itself on failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
