package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/explorekashmir/tours/config"
	"github.com/explorekashmir/tours/internal/bootstrap"
	"github.com/explorekashmir/tours/internal/cache"
	"github.com/explorekashmir/tours/internal/kafka"
	"github.com/explorekashmir/tours/internal/repository"
	"github.com/explorekashmir/tours/internal/service/auth"
	"github.com/explorekashmir/tours/internal/service/booking"
	"github.com/explorekashmir/tours/internal/service/catalog"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "api").Logger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ToursCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	destinationRepo := repository.NewDestinationRepository(pool)
	tourRepo := repository.NewTourRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	catalogService := catalog.NewCatalogService(destinationRepo, tourRepo, redisCache, time.Duration(cfg.Booking.ToursCacheTTL)*time.Second)
	bookingService := booking.NewBookingService(
		bookingRepo,
		tourRepo,
		redisCache,
		producer,
		log,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	authService := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	log.Info().Str("address", cfg.HTTP.Address).Msg("starting server")
	if err := bootstrap.Run(ctx, cfg, log, catalogService, bookingService, authService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func runMigrations(cfg config.DatabaseConfig) error {
	if cfg.MigrationsDir == "" {
		return nil
	}
	m, err := migrate.New("file://"+cfg.MigrationsDir, cfg.URL())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
