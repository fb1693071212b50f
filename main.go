package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fittrack-be/internal/cache"
	"fittrack-be/internal/config"
	"fittrack-be/internal/controllers"
	"fittrack-be/internal/database"
	"fittrack-be/internal/events"
	"fittrack-be/internal/jwt"
	"fittrack-be/internal/repository"
	"fittrack-be/internal/server"
	"fittrack-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the configured store
	userRepo, fitnessRepo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver()).Msg("failed to open store")
	}
	defer closeStore()

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			cacheClient = nil
		} else {
			log.Info().Msg("connected to Redis cache")
			defer cacheClient.Close()
		}
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing entry events")
	}
	defer publisher.Close()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		cfg.JWTIssuer,
		time.Duration(cfg.JWTTTLSeconds)*time.Second,
	)

	// Initialize services
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(cfg.BcryptCost), jwtService)
	userService := service.NewUserService(userRepo, cacheClient, cacheTTL)
	fitnessService := service.NewFitnessService(fitnessRepo, cacheClient, cacheTTL, publisher)

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(server.Dependencies{
		AuthController:    controllers.NewAuthController(authService),
		UserController:    controllers.NewUserController(userService),
		FitnessController: controllers.NewFitnessController(fitnessService),
		JWTService:        jwtService,
		StaticDir:         cfg.StaticDir,
		AllowedOrigin:     cfg.CORSAllowedOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.DatabaseDriver()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stdout
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

// openStore connects the backend selected by the DATABASE_URL scheme
func openStore(ctx context.Context, cfg *config.Config) (repository.UserRepository, repository.FitnessRepository, func(), error) {
	switch cfg.DatabaseDriver() {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("failed to disconnect from mongo")
			}
		}
		return repository.NewMongoUserRepository(db), repository.NewMongoFitnessRepository(db), closeFn, nil

	case config.DriverPostgres:
		db, err := database.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		// Run database migrations
		if err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close postgres")
			}
		}
		return repository.NewUserRepository(db), repository.NewFitnessRepository(db), closeFn, nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return repository.NewInMemoryUserRepository(), repository.NewInMemoryFitnessRepository(), func() {}, nil
	}
	return nil, nil, nil, errors.New("unsupported DATABASE_URL scheme")
}
