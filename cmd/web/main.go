package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/EhtashamulIslam/FitnessZone/internal/config"
	"github.com/EhtashamulIslam/FitnessZone/internal/database"
	"github.com/EhtashamulIslam/FitnessZone/internal/handlers"
	"github.com/EhtashamulIslam/FitnessZone/internal/logger"
	"github.com/EhtashamulIslam/FitnessZone/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, db, err := pricingSource(ctx, cfg)
	if err != nil {
		zlog.Fatal("pricing source", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}

	app := fiber.New(fiber.Config{
		Views:        handlers.NewViews(cfg.Server.TemplatePath),
		ViewsLayout:  handlers.BaseLayout,
		AppName:      cfg.Server.AppName,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler(zlog),
	})

	// -------------------------------
	// Middleware
	// -------------------------------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.Max,
		Expiration: cfg.RateLimit.Window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please try again later.")
		},
	}))
	app.Use(etag.New())

	// -------------------------------
	// Static resources and routes
	// -------------------------------
	app.Get(pricing.DocumentPath, func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.Pricing.Dir, filepath.Base(pricing.DocumentPath)))
	})
	app.Static("/static", cfg.Server.StaticPath)

	sessions := session.New(session.Config{
		Expiration:     cfg.Session.TTL,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	h := handlers.New(handlers.Deps{
		Loader:      pricing.NewLoader(src, zlog.Named("pricing")),
		Sessions:    sessions,
		Log:         zlog.Named("handlers"),
		LoadTimeout: cfg.Pricing.Timeout,
	})
	h.Register(app)

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("shutdown", zap.Error(err))
		}
	}()

	zlog.Info("server started",
		zap.String("addr", cfg.Server.Port),
		zap.String("pricing_source", cfg.Pricing.Source))
	if err := app.Listen(cfg.Server.Port); err != nil {
		zlog.Fatal("listen", zap.Error(err))
	}
}

// pricingSource picks where the pricing document is read from.
func pricingSource(ctx context.Context, cfg *config.Config) (pricing.Source, *sql.DB, error) {
	switch cfg.Pricing.Source {
	case config.SourceHTTP:
		return pricing.HTTPSource{BaseURL: cfg.Pricing.BaseURL, Timeout: cfg.Pricing.Timeout}, nil, nil
	case config.SourcePostgres:
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pricing.DBSource{DB: db, Name: cfg.Pricing.DocumentName}, db, nil
	default:
		return pricing.FileSource{Dir: cfg.Pricing.Dir}, nil, nil
	}
}
