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
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/api/handler"
	"github.com/vfg2006/ad-attribution-sync/internal/api/handler/router"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Repositories são os repositórios consultados pelas rotas de leitura
type Repositories struct {
	Ads      repository.AdRepository
	Mappings repository.OpportunityMappingRepository
	Weekly   repository.WeeklyStatsRepository
}

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	jobs handler.JobServices,
	repos Repositories,
) (*Server, error) {
	if config.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET não configurado: rotas protegidas responderão 401")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, jobs, repos),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	jobs handler.JobServices,
	repos Repositories,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Jobs(jobs)...),
		router.WithRoutes(handler.Attribution(repos.Ads, repos.Mappings, repos.Weekly)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return fmt.Errorf("erro ao iniciar servidor: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
