package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/configs"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/middlewares"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/routes"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := configs.LoadConfig()

	log, err := configs.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	store, err := configs.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}()

	if err := configs.SeedAdmin(ctx, store, cfg, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// Order tracking
	hub := ws.NewOrderHub(store.Orders().GetByNumber, log.Named("ws"))
	go hub.Run(ctx)
	orders := services.NewOrderService(store.Orders(), hub, log.Named("orders"))

	sessions := cart.NewSessions(store.CartStorage(), log.Named("cart"))
	go sessions.Run(ctx, 10*time.Minute, 30*time.Minute)
	carts := services.NewCartService(sessions, store)
	reviews := services.NewReviewService(store, log.Named("reviews"))
	checkout := services.NewCheckoutService(
		store.Orders(), sessions,
		configs.NewPaymentGateway(cfg, log),
		configs.NewMailer(cfg, log),
		hub, log.Named("checkout"),
	)

	if n, err := reviews.ReconcileRatings(ctx); err != nil {
		log.Warn("rating reconcile failed", zap.Error(err))
	} else {
		log.Info("ratings reconciled", zap.Int("restaurants", n))
	}

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middlewares.Recovery(log), middlewares.RequestLogger(log.Named("http")))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		JWTSecret:   cfg.JWTSecret,
		Auth:        services.NewAuthService(store.Users(), cfg.JWTSecret, cfg.JWTTTL),
		Restaurants: services.NewRestaurantService(store),
		Menus:       services.NewMenuService(store),
		Carts:       carts,
		Checkout:    checkout,
		Orders:      orders,
		Reviews:     reviews,
		Promotions:  services.NewPromotionService(store.Promotions()),
		Users:       services.NewUserService(store.Users()),
		Analytics:   services.NewAnalyticsService(store),
		Hub:         hub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
