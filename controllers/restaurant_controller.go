package controllers

import (
	"strconv"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	restaurants *services.RestaurantService
	reviews     *services.ReviewService
}

func NewRestaurantController(restaurants *services.RestaurantService, reviews *services.ReviewService) *RestaurantController {
	return &RestaurantController{restaurants: restaurants, reviews: reviews}
}

// GET /restaurants?search=&cuisine=&open=true
func (rc *RestaurantController) List(c *gin.Context) {
	open, _ := strconv.ParseBool(c.Query("open"))
	out, err := rc.restaurants.List(c.Request.Context(), repository.RestaurantFilter{
		Search:   c.Query("search"),
		Cuisine:  c.Query("cuisine"),
		OpenOnly: open,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	r, err := rc.restaurants.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	items, err := rc.restaurants.Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/:id/reviews
func (rc *RestaurantController) Reviews(c *gin.Context) {
	out, err := rc.reviews.ListForRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// ===== admin =====

// POST /admin/restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var in services.RestaurantInput
	if !bind(c, &in) {
		return
	}
	r, err := rc.restaurants.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, r)
}

// PUT /admin/restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	var in services.RestaurantInput
	if !bind(c, &in) {
		return
	}
	r, err := rc.restaurants.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

// DELETE /admin/restaurants/:id
func (rc *RestaurantController) Delete(c *gin.Context) {
	if err := rc.restaurants.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
