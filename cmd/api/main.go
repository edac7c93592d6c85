package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lendshare/internal/config"
	"lendshare/internal/database"
	"lendshare/internal/metrics"
	"lendshare/internal/middleware"
	"lendshare/internal/modules/auth"
	"lendshare/internal/modules/booking"
	"lendshare/internal/modules/item"
	"lendshare/internal/modules/user"
	jwtsvc "lendshare/internal/pkg/jwt"
	"lendshare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	logger := newLogger(cfg)
	log.Logger = logger

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal().Msg("auth.jwt_secret is empty")
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrating database")
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL))

	authService := auth.NewService(userRepo, j, logger)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo, logger)
	userHandler := user.NewHandler(userService)

	itemService := item.NewService(itemRepo, userRepo, logger)
	itemHandler := item.NewHandler(itemService)

	bookingService := booking.NewService(bookingRepo, itemRepo, userRepo, logger)
	bookingHandler := booking.NewHandler(bookingService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		metrics.Register()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		itemHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			userHandler.RegisterRoutes(protected)
			itemHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting server")
	if err := r.Run(cfg.HTTP.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr)
	if cfg.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
