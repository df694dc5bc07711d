package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Manish26364/sevas-admin/internal/api/handler"
	"github.com/Manish26364/sevas-admin/internal/api/middleware"
	"github.com/Manish26364/sevas-admin/internal/core/service"
	"github.com/Manish26364/sevas-admin/internal/infrastructure/config"
	mongodb "github.com/Manish26364/sevas-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/Manish26364/sevas-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("laundry"))

	// --- Repositories ---
	bookingRepo := mongodb.NewBookingRepository(db)
	residentRepo := mongodb.NewResidentRepository(db)
	machineRepo := mongodb.NewMachineRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	// --- Services ---
	// One lock shared by every service that does a compound write.
	lock := service.NewStoreLock()
	settingsService := service.NewSettingsService(settingsRepo, log)
	bookingService := service.NewBookingService(bookingRepo, residentRepo, machineRepo, settingsService, lock, log)
	residentService := service.NewResidentService(residentRepo, bookingRepo, lock, log)
	machineService := service.NewMachineService(machineRepo, bookingRepo, lock, log)
	dashboardService := service.NewDashboardService(bookingRepo, machineRepo)
	authService := service.NewAuthService(userRepo, sessions, cfg.Session.Secret, cfg.Session.TTL, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.Session.TTL)
	bookingHandler := handler.NewBookingHandler(bookingService)
	residentHandler := handler.NewResidentHandler(residentService)
	machineHandler := handler.NewMachineHandler(machineService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	requireSession := middleware.Session(authService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	// Booking creation is reachable without a session: the resident booking
	// form posts here, guarded by the admission checks themselves.
	e.POST("/bookings", bookingHandler.Submit)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Session-gated admin routes ---
	e.POST("/logout", authHandler.Logout, requireSession)
	e.GET("/dashboard", dashboardHandler.Summary, requireSession)

	e.GET("/residents", residentHandler.List, requireSession)
	e.POST("/residents", residentHandler.Add, requireSession)
	e.POST("/residents/:id/block", residentHandler.Block, requireSession)
	e.POST("/residents/:id/unblock", residentHandler.Unblock, requireSession)

	e.GET("/bookings", bookingHandler.List, requireSession)
	e.POST("/bookings/:id/cancel", bookingHandler.Cancel, requireSession)

	e.GET("/machines", machineHandler.List, requireSession)
	e.POST("/machines/:name/break", machineHandler.Break, requireSession)
	e.POST("/machines/:name/repair", machineHandler.Repair, requireSession)

	e.GET("/settings", settingsHandler.Get, requireSession)
	e.POST("/settings", settingsHandler.Save, requireSession)

	return e
}
