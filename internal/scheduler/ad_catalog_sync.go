package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/adsyncing"
)

type AdCatalogSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// AdCatalogSyncService agenda o espelhamento de campanhas, anúncios e métricas do Facebook
type AdCatalogSyncService struct {
	scheduler *gocron.Scheduler
	config    AdCatalogSyncConfig
	adSyncer  adsyncing.AdSyncer
	state     syncState
	ctx       context.Context
	now       func() time.Time
}

func NewAdCatalogSyncService(adSyncer adsyncing.AdSyncer, appConfig *config.Config) *AdCatalogSyncService {
	syncConfig := AdCatalogSyncConfig{
		CronSchedule: appConfig.AdCatalogSync.CronSchedule,
		LookbackDays: appConfig.AdCatalogSync.LookbackDays,
		SyncEnabled:  appConfig.AdCatalogSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do catálogo de anúncios carregada")

	return &AdCatalogSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		adSyncer:  adSyncer,
		ctx:       context.Background(),
		now:       time.Now,
	}
}

func (s *AdCatalogSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do catálogo de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do catálogo de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do catálogo de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do catálogo de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// filters cobre de lookbackDays atrás até ontem
func (s *AdCatalogSyncService) filters() *domain.InsightFilters {
	if s.config.LookbackDays <= 0 {
		return nil
	}

	end := s.now().UTC().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

func (s *AdCatalogSyncService) runSync() {
	if !s.state.begin(s.now()) {
		logrus.Info("Sincronização do catálogo de anúncios já em andamento, ignorando")
		return
	}
	s.execute()
}

func (s *AdCatalogSyncService) execute() {
	report, err := s.adSyncer.Sync(s.ctx, adsyncing.SyncOptions{Filters: s.filters()})
	s.state.end(s.now(), "", err)

	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização do catálogo de anúncios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": report.Campaigns,
		"ads":       report.Ads,
		"resumed":   report.Resumed,
	}).Info("Sincronização agendada do catálogo de anúncios concluída")
}

func (s *AdCatalogSyncService) TriggerManualSync() bool {
	if !s.state.begin(s.now()) {
		logrus.Info("Sincronização do catálogo de anúncios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual do catálogo de anúncios")
	go s.execute()
	return true
}

func (s *AdCatalogSyncService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays
	return status
}
