// Package bootstrap monta logger, banco de documentos e serviços compartilhados
// pelos executáveis da API e da CLI.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/ghlclient"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/adsyncing"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/aggregating"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/attributing"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/reporting"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/stagetracking"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/syncing"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogger aplica formato e nível; com LOG_FILE os logs também vão para arquivo rotacionado
func ConfigureLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if cfg.App.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if cfg.App.LogFile != "" {
		logrus.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.App.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // dias
			Compress:   true,
		}))
	}

	logrus.Debugf("Nível de log configurado para: %s", logLevel)
}

// Repositories agrupa os repositórios sobre o mesmo Store
type Repositories struct {
	Ads          repository.AdRepository
	Weekly       repository.WeeklyStatsRepository
	Mappings     repository.OpportunityMappingRepository
	StageHistory repository.StageHistoryRepository
	Checkpoints  repository.CheckpointRepository
}

func NewRepositories(store docstore.Store, batchSize int) Repositories {
	return Repositories{
		Ads:          repository.NewAdRepository(store, batchSize),
		Weekly:       repository.NewWeeklyStatsRepository(store, batchSize),
		Mappings:     repository.NewOpportunityMappingRepository(store, batchSize),
		StageHistory: repository.NewStageHistoryRepository(store, batchSize),
		Checkpoints:  repository.NewCheckpointRepository(store),
	}
}

// App contém os serviços prontos para uso
type App struct {
	Config       *config.Config
	Store        docstore.Store
	Repos        Repositories
	TokenManager *metaclient.TokenManager
	GHL          ghl.GHLIntegrator
	Meta         meta.MetaIntegrator
	Attributor   *attributing.Service
	Rebuilder    *aggregating.Service
	AdSyncer     *adsyncing.Service
	Tracker      *stagetracking.Service
	Reporter     *reporting.Reporter
	Sync         *syncing.Service
}

// New monta os serviços sobre o store informado; o chamador decide se é dry-run
func New(ctx context.Context, cfg *config.Config, store docstore.Store) (*App, error) {
	repos := NewRepositories(store, cfg.Store.BatchSize)

	tokenManager := metaclient.NewTokenManager(cfg)
	tokenManager.InitToken(ctx)

	ghlService := ghl.New(cfg, ghlclient.NewClient(cfg))
	metaService := meta.New(cfg, metaclient.NewClient(cfg, tokenManager))

	attributor, err := attributing.NewService(cfg, repos.Ads, repos.Mappings)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar serviço de atribuição: %w", err)
	}

	rebuilder, err := aggregating.NewService(cfg, repos.Weekly, repos.Ads)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar serviço de agregação: %w", err)
	}

	adSyncer := adsyncing.NewService(metaService, repos.Ads, repos.Checkpoints)
	tracker := stagetracking.NewService(repos.StageHistory)
	reporter := reporting.NewReporter(cfg.App.ReportDir)

	syncService, err := syncing.NewService(cfg, ghlService, attributor, rebuilder, adSyncer, tracker, reporter)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar orquestrador: %w", err)
	}

	return &App{
		Config:       cfg,
		Store:        store,
		Repos:        repos,
		TokenManager: tokenManager,
		GHL:          ghlService,
		Meta:         metaService,
		Attributor:   attributor,
		Rebuilder:    rebuilder,
		AdSyncer:     adSyncer,
		Tracker:      tracker,
		Reporter:     reporter,
		Sync:         syncService,
	}, nil
}

// Close encerra a renovação de token e o store
func (a *App) Close() {
	a.TokenManager.StopAutoRefresh()
	if err := a.Store.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar banco de documentos")
	}
}
