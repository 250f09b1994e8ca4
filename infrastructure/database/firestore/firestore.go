package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"google.golang.org/api/option"
)

// NewClient inicializa o app do Firebase uma única vez e devolve o cliente do Firestore.
// Sem service account explícita, usa as credenciais padrão do ambiente.
func NewClient(ctx context.Context, cfg config.Store) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.ServiceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	var appCfg *firebase.Config
	if cfg.FirestoreProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.FirestoreProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no firestore: %w", err)
	}

	logrus.WithField("project_id", cfg.FirestoreProjectID).Info("Firestore conectado")

	return client, nil
}
