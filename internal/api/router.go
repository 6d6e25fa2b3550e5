package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentalhub/rental-api/internal/api/handler"
	"github.com/rentalhub/rental-api/internal/api/middleware"
	"github.com/rentalhub/rental-api/internal/core/domain"
	"github.com/rentalhub/rental-api/internal/core/service"
	"github.com/rentalhub/rental-api/internal/core/token"
	mongodb "github.com/rentalhub/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rentalhub/rental-api/internal/infrastructure/db/redis"
	"github.com/rentalhub/rental-api/internal/infrastructure/queue"
)

// Options carries the external dependencies the router wires together.
type Options struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	Codec       *token.Codec
	ViewWorkers int
	Log         zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. The
// returned ViewRecorder must be started before the server accepts traffic.
func NewRouter(opts Options) (*echo.Echo, *queue.ViewRecorder) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))
	e.Use(middleware.Authenticate(opts.Codec, opts.Log))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	listingRepo := mongodb.NewListingRepository(opts.Mongo)
	inquiryRepo := mongodb.NewInquiryRepository(opts.Mongo)
	favoriteRepo := mongodb.NewFavoriteRepository(opts.Mongo)
	prefRepo := mongodb.NewPreferenceRepository(opts.Mongo)

	// --- View accounting ---
	viewCounter := redisdb.NewViewCounter(opts.Redis)
	recorder := queue.NewViewRecorder(opts.ViewWorkers, listingRepo, viewCounter, opts.Log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, opts.Codec, opts.Log)
	listingService := service.NewListingService(listingRepo, recorder, viewCounter, opts.Log)
	inquiryService := service.NewInquiryService(inquiryRepo, listingRepo, opts.Log)
	favoriteService := service.NewFavoriteService(favoriteRepo, listingRepo, opts.Log)
	prefService := service.NewPreferenceService(prefRepo)
	userService := service.NewUserService(userRepo, listingRepo, inquiryRepo, opts.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	prefHandler := handler.NewPreferenceHandler(prefService)
	adminHandler := handler.NewAdminHandler(listingService, userService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	// --- Auth ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/check-email", authHandler.CheckEmail)
	auth.GET("/check-username", authHandler.CheckUsername)
	auth.GET("/me", authHandler.Me, middleware.RequireAuthenticated())

	// --- Listings: public browse, landlord-managed writes ---
	e.GET("/listings", listingHandler.Browse)
	e.GET("/listings/available", listingHandler.Browse)
	e.GET("/listings/trending", listingHandler.Trending)
	e.GET("/listings/:id", listingHandler.Get)

	landlordListings := e.Group("/listings", middleware.RequireRoles(domain.RoleLandlord))
	landlordListings.POST("", listingHandler.Create)
	landlordListings.PUT("/:id", listingHandler.Update)
	landlordListings.PUT("/:id/status", listingHandler.UpdateStatus)
	landlordListings.DELETE("/:id", listingHandler.Delete)

	landlord := e.Group("/landlord", middleware.RequireRoles(domain.RoleLandlord))
	landlord.GET("/listings", listingHandler.Mine)
	landlord.GET("/inquiries", inquiryHandler.ForLandlord)

	// --- Inquiries ---
	inquiries := e.Group("/inquiries")
	inquiries.POST("", inquiryHandler.Create, middleware.RequireRoles(domain.RoleTenant))
	inquiries.GET("/mine", inquiryHandler.Mine, middleware.RequireRoles(domain.RoleTenant))
	inquiries.GET("/:id", inquiryHandler.Get, middleware.RequireAuthenticated())
	inquiries.PUT("/:id/reply", inquiryHandler.Reply, middleware.RequireRoles(domain.RoleLandlord))
	inquiries.PUT("/:id/close", inquiryHandler.Close, middleware.RequireAuthenticated())

	// --- Favorites ---
	favorites := e.Group("/favorites", middleware.RequireAuthenticated())
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:listingId", favoriteHandler.Add)
	favorites.DELETE("/:listingId", favoriteHandler.Remove)
	favorites.GET("/:listingId/status", favoriteHandler.Check)

	// --- Tenant preferences ---
	tenant := e.Group("/tenant", middleware.RequireRoles(domain.RoleTenant))
	tenant.GET("/preferences", prefHandler.Get)
	tenant.PUT("/preferences", prefHandler.Save)

	// --- Admin ---
	admin := e.Group("/admin", middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/listings/pending", adminHandler.PendingListings)
	admin.PUT("/listings/:id/review", adminHandler.ReviewListing)
	admin.GET("/users", adminHandler.Users)
	admin.PUT("/users/:id/active", adminHandler.SetUserActive)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, recorder
}
