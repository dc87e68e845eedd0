package routes

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/controllers"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/middlewares"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/ws"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP surface is built from.
type Deps struct {
	JWTSecret string

	Auth        *services.AuthService
	Restaurants *services.RestaurantService
	Menus       *services.MenuService
	Carts       *services.CartService
	Checkout    *services.CheckoutService
	Orders      *services.OrderService
	Reviews     *services.ReviewService
	Promotions  *services.PromotionService
	Users       *services.UserService
	Analytics   *services.AnalyticsService

	Hub *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	restCtrl := controllers.NewRestaurantController(d.Restaurants, d.Reviews)
	menuCtrl := controllers.NewMenuController(d.Menus)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Checkout, d.Orders)
	reviewCtrl := controllers.NewReviewController(d.Reviews)
	promoCtrl := controllers.NewPromotionController(d.Promotions, d.Carts)
	adminCtrl := controllers.NewAdminController(d.Users, d.Analytics)

	signedIn := middlewares.AuthMiddleware(d.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", signedIn, authCtrl.Me)
	}

	// Storefront (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/restaurants/:id/reviews", restCtrl.Reviews)
	r.GET("/orders/track/:orderNumber", orderCtrl.Track)

	// Cart
	cart := r.Group("/cart", signedIn)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:itemId", cartCtrl.Remove)
	}

	// Customer
	u := r.Group("/", signedIn)
	{
		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Detail)

		u.POST("/reviews", reviewCtrl.Create)
		u.GET("/reviews/mine", reviewCtrl.Mine)
		u.PATCH("/reviews/:id", reviewCtrl.Update)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)

		u.POST("/promotions/validate", promoCtrl.Validate)
	}

	// Admin
	admin := r.Group("/admin",
		middlewares.AuthMiddleware(d.JWTSecret, entity.RoleAdmin),
		middlewares.FreshRole(d.Users.Role, entity.RoleAdmin),
	)
	{
		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/:id", orderCtrl.AdminDetail)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.PATCH("/orders/:id/payment", orderCtrl.UpdatePaymentStatus)
		admin.DELETE("/orders/:id", orderCtrl.Delete)
		admin.GET("/payments", orderCtrl.Payments)

		admin.POST("/restaurants", restCtrl.Create)
		admin.PUT("/restaurants/:id", restCtrl.Update)
		admin.DELETE("/restaurants/:id", restCtrl.Delete)

		admin.GET("/menu-items", menuCtrl.List)
		admin.GET("/menu-items/:id", menuCtrl.Detail)
		admin.POST("/menu-items", menuCtrl.Create)
		admin.PUT("/menu-items/:id", menuCtrl.Update)
		admin.DELETE("/menu-items/:id", menuCtrl.Delete)

		admin.GET("/promotions", promoCtrl.List)
		admin.POST("/promotions", promoCtrl.Create)
		admin.PUT("/promotions/:id", promoCtrl.Update)
		admin.DELETE("/promotions/:id", promoCtrl.Delete)

		admin.DELETE("/reviews/:id", reviewCtrl.Moderate)
		admin.POST("/ratings/reconcile", reviewCtrl.Reconcile)

		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/role", adminCtrl.SetRole)
		admin.GET("/analytics", adminCtrl.Analytics)
	}

	// WebSocket
	if d.Hub != nil {
		r.GET("/ws/orders/:orderNumber", d.Hub.HandleWebSocket)
		r.GET("/ws/admin/orders",
			middlewares.WSAuthMiddleware(d.JWTSecret, entity.RoleAdmin),
			middlewares.FreshRole(d.Users.Role, entity.RoleAdmin),
			d.Hub.HandleAdminFeed,
		)
	}
}
