// @title EnrollHub API
// @version 1.0
// @description Course catalog and enrollment wizard API for the EnrollHub training site.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"enrollhub/internal/adapter/mail"
	"enrollhub/internal/catalog"
	"enrollhub/internal/config"
	"enrollhub/internal/country"
	"enrollhub/internal/handler"
	"enrollhub/internal/logger"
	"enrollhub/internal/middleware"
	"enrollhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Catalog layer: one fetcher routed by source path scheme, one store
	// holding the settled per-source caches.
	fetcher := catalog.NewFetcher(cfg.Catalog.FetchTimeout)
	store := catalog.NewStore(fetcher, cfg.Catalog.Sources)
	appLogger.Info("Catalog store initialized", zap.Int("sources", len(cfg.Catalog.Sources)))

	countries := country.NewResolver(cfg.Enrollment.DefaultCountry)
	appLogger.Info("Country resolver initialized", zap.String("default", cfg.Enrollment.DefaultCountry))

	sender := mail.NewHTTPSender(cfg.Mail.URL, cfg.Mail.Timeout)

	// Initialize services
	catalogService := service.NewCatalogService(store)
	enrollmentService := service.NewEnrollmentService(catalogService, countries, sender, cfg)
	appLogger.Info("EnrollmentService initialized")

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	countryHandler := handler.NewCountryHandler(countries)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	// Add request logging middleware
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Catalog routes
	apiGroup.Get("/courses", catalogHandler.ListCourses)
	apiGroup.Get("/courses/:slug", catalogHandler.GetCourseBySlug)
	apiGroup.Get("/course-names", catalogHandler.GetCourseNames)
	apiGroup.Get("/internships", catalogHandler.GetInternships)

	// Country routes
	apiGroup.Get("/countries", countryHandler.Search)
	apiGroup.Get("/countries/default", countryHandler.Default)

	// Enrollment wizard routes
	enrollGroup := apiGroup.Group("/enrollments")
	enrollGroup.Post("/", enrollmentHandler.Start)
	enrollGroup.Get("/:id", enrollmentHandler.Get)
	enrollGroup.Put("/:id/personal", enrollmentHandler.UpdatePersonal)
	enrollGroup.Put("/:id/selection", enrollmentHandler.UpdateSelection)
	enrollGroup.Put("/:id/acknowledgement", enrollmentHandler.UpdateAcknowledgement)
	enrollGroup.Post("/:id/resume", enrollmentHandler.UploadResume)
	enrollGroup.Post("/:id/advance", enrollmentHandler.Advance)
	enrollGroup.Post("/:id/retreat", enrollmentHandler.Retreat)
	enrollGroup.Post("/:id/jump", enrollmentHandler.Jump)
	enrollGroup.Post("/:id/submit", enrollmentHandler.Submit)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
