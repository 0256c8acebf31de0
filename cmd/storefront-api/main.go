package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gildedthread/storefront-api/internal/api/handlers"
	"github.com/gildedthread/storefront-api/internal/api/middleware"
	"github.com/gildedthread/storefront-api/internal/cache"
	"github.com/gildedthread/storefront-api/internal/config"
	"github.com/gildedthread/storefront-api/internal/health"
	"github.com/gildedthread/storefront-api/internal/metrics"
	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/gildedthread/storefront-api/internal/ratelimit"
	repository "github.com/gildedthread/storefront-api/internal/repositories"
	service "github.com/gildedthread/storefront-api/internal/services"
	"github.com/gildedthread/storefront-api/internal/telemetry"
	"github.com/gildedthread/storefront-api/pkg/sendgrid"
	"github.com/gildedthread/storefront-api/pkg/stripe"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Tracing)
	if err != nil {
		slog.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Addr,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	couponCache := cache.NewRedisCache(redisClient, &cfg.CacheConfig)
	limiter := ratelimit.NewRedisLimiter(redisClient, &cfg.RateConfig)

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	couponService := service.NewCouponService(repos.Coupon, repos.Order, couponCache, cfg.CacheConfig.CouponTTL)
	couponHandler := handlers.NewCouponHandler(couponService)
	cartService := service.NewCartService(repos.Cart)
	cartHandler := handlers.NewCartHandler(cartService)
	inventoryService := service.NewInventoryService(repos.Inventory)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	shippingService := service.NewShippingService(repos.Shipping)
	shippingHandler := handlers.NewShippingHandler(shippingService)
	addressService := service.NewAddressService(repos.Address)
	addressHandler := handlers.NewAddressHandler(addressService)
	wishlistService := service.NewWishlistService(repos.Wishlist)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	analyticsService := service.NewAnalyticsService(repos.Order)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	contactService := service.NewContactService(repos.Contact, emailService, cfg.SendGrid.ContactEmail)
	contactHandler := handlers.NewContactHandler(contactService)
	catalogService := service.NewCatalogService(repos.Product, repos.Inventory)
	paymentService := service.NewPaymentService(repos.Order, repos.Cart, repos.Inventory, couponService)
	webhookHandler := handlers.NewWebhookHandler(catalogService, paymentService, stripeClient, cfg.CMS.WebhookSecret)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Failed to register health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env))

	// Setup router
	routerMux := http.NewServeMux()

	// Coupons
	routerMux.HandleFunc("POST /api/v1/coupons",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, couponHandler.CreateCoupon())))
	routerMux.HandleFunc("GET /api/v1/coupons",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, couponHandler.ListCoupons())))
	routerMux.HandleFunc("DELETE /api/v1/coupons/{id}",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, couponHandler.DeactivateCoupon())))
	routerMux.HandleFunc("POST /api/v1/coupons/validate",
		middleware.RateLimit(limiter, "coupons:validate", authMiddleware.OptionalAuthenticate(couponHandler.ValidateCoupon())))

	// Cart sessions
	routerMux.HandleFunc("POST /api/v1/cart",
		middleware.RateLimit(limiter, "cart:save", authMiddleware.OptionalAuthenticate(cartHandler.SaveCart())))
	routerMux.HandleFunc("GET /api/v1/cart/{token}", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/{token}/recover", cartHandler.RecoverCart())

	// Inventory
	routerMux.HandleFunc("GET /api/v1/inventory/{id}",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, inventoryHandler.GetRecord())))
	routerMux.HandleFunc("POST /api/v1/inventory/{id}/adjust",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, inventoryHandler.AdjustInventory())))
	routerMux.HandleFunc("GET /api/v1/inventory/{id}/movements",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, inventoryHandler.ListMovements())))

	// Shipping
	routerMux.HandleFunc("POST /api/v1/shipping/zones",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, shippingHandler.CreateZone())))
	routerMux.HandleFunc("GET /api/v1/shipping/zones", shippingHandler.ListZones())
	routerMux.HandleFunc("DELETE /api/v1/shipping/zones/{id}",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, shippingHandler.DeleteZone())))
	routerMux.HandleFunc("POST /api/v1/shipping/methods",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, shippingHandler.CreateMethod())))
	routerMux.HandleFunc("GET /api/v1/shipping/zones/{id}/methods", shippingHandler.ListMethodsForZone())
	routerMux.HandleFunc("PATCH /api/v1/shipping/methods/{id}",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, shippingHandler.UpdateMethod())))
	routerMux.HandleFunc("DELETE /api/v1/shipping/methods/{id}",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, shippingHandler.DeleteMethod())))

	// Customer addresses
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("PUT /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))

	// Wishlist
	routerMux.HandleFunc("GET /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.ListItems()))
	routerMux.HandleFunc("POST /api/v1/wishlist", authMiddleware.Authenticate(wishlistHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/wishlist/{productId}", authMiddleware.Authenticate(wishlistHandler.RemoveItem()))

	// Analytics
	routerMux.HandleFunc("GET /api/v1/analytics/sales",
		authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, analyticsHandler.SalesSummary())))

	// Contact and newsletter
	routerMux.HandleFunc("POST /api/v1/contact",
		middleware.RateLimit(limiter, "contact", contactHandler.SubmitMessage()))
	routerMux.HandleFunc("POST /api/v1/newsletter/subscribe",
		middleware.RateLimit(limiter, "newsletter", contactHandler.Subscribe()))

	// Webhooks
	routerMux.HandleFunc("POST /api/v1/webhooks/cms", webhookHandler.CMSProductSync())
	routerMux.HandleFunc("POST /api/v1/webhooks/payment", webhookHandler.PaymentConfirmation())

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.HandleFunc("GET /health", healthHandler.HandlerFunc)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront-api")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully")
	}

	if err := couponCache.Close(); err != nil {
		slog.Error("Error closing redis connection", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Error flushing traces", slog.String("error", err.Error()))
	}
}
