package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/api"
	"github.com/vfg2006/ad-attribution-sync/internal/api/handler"
	"github.com/vfg2006/ad-attribution-sync/internal/bootstrap"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/scheduler"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg)

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := docstore.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir banco de documentos")
	}

	app, err := bootstrap.New(ctx, cfg, store)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar serviços")
	}
	defer app.Close()

	go app.TokenManager.StartAutoRefresh(ctx)

	attributionSyncService := scheduler.NewAttributionSyncService(app.Sync, cfg)
	adCatalogSyncService := scheduler.NewAdCatalogSyncService(app.AdSyncer, cfg)

	if err := attributionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de atribuição")
	} else {
		logrus.Info("Agendador de sincronização de atribuição iniciado com sucesso")
	}

	if err := adCatalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do catálogo de anúncios")
	} else {
		logrus.Info("Agendador do catálogo de anúncios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		handler.JobServices{
			Attribution: attributionSyncService,
			AdCatalog:   adCatalogSyncService,
		},
		api.Repositories{
			Ads:      app.Repos.Ads,
			Mappings: app.Repos.Mappings,
			Weekly:   app.Repos.Weekly,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
