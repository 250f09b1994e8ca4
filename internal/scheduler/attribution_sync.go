package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/syncing"
)

// AttributionSyncConfig representa a configuração do agendador de atribuição
type AttributionSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// AttributionSyncService agenda a sincronização CRM -> atribuição -> buckets semanais
type AttributionSyncService struct {
	scheduler *gocron.Scheduler
	config    AttributionSyncConfig
	runner    syncing.Runner
	state     syncState
	ctx       context.Context
	now       func() time.Time
}

func NewAttributionSyncService(runner syncing.Runner, appConfig *config.Config) *AttributionSyncService {
	syncConfig := AttributionSyncConfig{
		CronSchedule: appConfig.AttributionSync.CronSchedule,
		LookbackDays: appConfig.AttributionSync.LookbackDays,
		SyncEnabled:  appConfig.AttributionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atribuição carregada")

	return &AttributionSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		runner:    runner,
		ctx:       context.Background(),
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *AttributionSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de atribuição desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de atribuição")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de atribuição: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de atribuição")
		s.scheduler.Stop()
	}()

	return nil
}

// options com lookback 0 executa a reconstrução completa
func (s *AttributionSyncService) options() syncing.RunOptions {
	opts := syncing.RunOptions{WriteReport: true}
	if s.config.LookbackDays > 0 {
		since := s.now().UTC().AddDate(0, 0, -s.config.LookbackDays)
		opts.Since = &since
	}
	return opts
}

func (s *AttributionSyncService) runSync() {
	if !s.state.begin(s.now()) {
		logrus.Info("Sincronização de atribuição já em andamento, ignorando")
		return
	}
	s.execute()
}

func (s *AttributionSyncService) execute() {
	report, err := s.runner.Run(s.ctx, s.options())

	var runID string
	if report != nil {
		runID = report.RunID
	}
	s.state.end(s.now(), runID, err)

	if err != nil {
		logrus.WithError(err).WithField("runId", runID).Error("Erro na sincronização de atribuição agendada")
	}
}

// TriggerManualSync inicia manualmente uma sincronização; devolve false se já houver uma em andamento
func (s *AttributionSyncService) TriggerManualSync() bool {
	if !s.state.begin(s.now()) {
		logrus.Info("Sincronização de atribuição já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de atribuição")
	go s.execute()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AttributionSyncService) GetStatus() map[string]any {
	status := s.state.snapshot()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays
	return status
}
