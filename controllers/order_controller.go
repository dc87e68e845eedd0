package controllers

import (
	"strconv"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type StatusRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

type PaymentStatusRequest struct {
	PaymentStatus entity.PaymentStatus `json:"paymentStatus" binding:"required"`
}

type OrderController struct {
	checkout *services.CheckoutService
	orders   *services.OrderService
}

func NewOrderController(checkout *services.CheckoutService, orders *services.OrderService) *OrderController {
	return &OrderController{checkout: checkout, orders: orders}
}

// POST /checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	var form services.CheckoutForm
	if !bind(c, &form) {
		return
	}
	o, err := oc.checkout.Checkout(c.Request.Context(), utils.CurrentUserID(c), form)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders
func (oc *OrderController) ListMine(c *gin.Context) {
	out, err := oc.orders.ListForUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	o, err := oc.orders.GetForUser(c.Request.Context(), utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders/track/:orderNumber (public)
func (oc *OrderController) Track(c *gin.Context) {
	o, err := oc.orders.Track(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// ===== admin =====

// GET /admin/orders?status=&paymentStatus=&restaurantId=&limit=&offset=
func (oc *OrderController) List(c *gin.Context) {
	page, err := oc.orders.List(c.Request.Context(), orderFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Page(c, page.Orders, page.Total)
}

// GET /admin/orders/:id
func (oc *OrderController) AdminDetail(c *gin.Context) {
	o, err := oc.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if !bind(c, &req) {
		return
	}
	o, err := oc.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /admin/orders/:id/payment
func (oc *OrderController) UpdatePaymentStatus(c *gin.Context) {
	var req PaymentStatusRequest
	if !bind(c, &req) {
		return
	}
	o, err := oc.orders.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /admin/orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /admin/payments?paymentStatus=&limit=&offset=
func (oc *OrderController) Payments(c *gin.Context) {
	out, total, err := oc.orders.Payments(c.Request.Context(), orderFilter(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Page(c, out, total)
}

func orderFilter(c *gin.Context) repository.OrderFilter {
	f := repository.OrderFilter{
		RestaurantID:  c.Query("restaurantId"),
		Status:        entity.OrderStatus(c.Query("status")),
		PaymentStatus: entity.PaymentStatus(c.Query("paymentStatus")),
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		f.Limit = min(n, maxPageSize)
	}
	if n, err := strconv.Atoi(c.Query("offset")); err == nil && n > 0 {
		f.Offset = n
	}
	return f
}
