package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/api/handler"
	"github.com/vfg2006/guia-local-api/internal/api/handler/router"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/scheduler"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/internal/usecases/copywriting"
	"github.com/vfg2006/guia-local-api/internal/usecases/directory"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Companies      company.Manager
	Availability   availability.Resolver
	Offering       offering.Offering
	Sponsor        sponsoring.Sponsor
	Directory      directory.Directory
	Copywriter     copywriting.Writer
	ExpirationSync *scheduler.ExpirationSweepService
}

func New(config *config.Config, db *postgres.Connection, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		handler.CronJobTypeExpiration: services.ExpirationSync,
	}

	var directoryCache func(http.Handler) http.Handler
	if config.DirectoryCache.Enabled {
		store := cache.New(config.DirectoryCache.TTL, 2*config.DirectoryCache.TTL)
		directoryCache = middleware.ResponseCache(store, config.DirectoryCache.TTL)
	}

	aiLimiter := middleware.NewIPRateLimiter(
		middleware.PerMinute(config.RateLimit.AIRequestsPerMinute),
		config.RateLimit.AIBurst,
	)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Directory(services.Directory, directoryCache)...),
		router.WithRoutes(handler.Companies(services.Companies, services.Availability)...),
		router.WithRoutes(handler.Offers(services.Offering)...),
		router.WithRoutes(handler.Sponsorships(services.Sponsor, config.App.Location)...),
		router.WithRoutes(handler.Copywriting(services.Copywriter, middleware.RateLimiter(aiLimiter), config.App.Location)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
