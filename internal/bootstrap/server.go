package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/explorekashmir/tours/api"
	"github.com/explorekashmir/tours/config"
	"github.com/explorekashmir/tours/internal/service/auth"
	"github.com/explorekashmir/tours/internal/service/booking"
	"github.com/explorekashmir/tours/internal/service/catalog"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase, authSvc auth.AuthUseCase) error {
	engine := newRouter(cfg, log, catalogSvc, bookingSvc, authSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, log zerolog.Logger, catalogSvc catalog.CatalogUseCase, bookingSvc booking.BookingUseCase, authSvc auth.AuthUseCase) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), api.RequestLogger(log), corsMiddleware(cfg.HTTP))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")

	authGuard := api.AuthRequired(authSvc)
	adminChain := gin.HandlersChain{authGuard, api.AdminOnly()}

	api.NewAuthHandler(authSvc).Register(v1.Group("/auth"))
	api.NewDestinationHandler(catalogSvc).Register(v1.Group("/destinations"), adminChain)
	api.NewTourHandler(catalogSvc).Register(v1.Group("/tours"), adminChain)

	bookings := v1.Group("/bookings")
	bookings.Use(authGuard)
	api.NewBookingHandler(bookingSvc).Register(bookings)

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		docs := httpSwagger.Handler(httpSwagger.URL("/swagger/tours.swagger.json"))
		engine.GET("/docs/*any", gin.WrapH(http.StripPrefix("/docs", docs)))
	}

	return engine
}

func corsMiddleware(cfg config.HTTPConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
