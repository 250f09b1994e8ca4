package docstore

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	firestoredb "github.com/vfg2006/ad-attribution-sync/infrastructure/database/firestore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/database/mongodb"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
)

// Open cria o Store configurado em STORE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	logrus.WithField("driver", cfg.Store.Driver).Info("Abrindo banco de documentos")

	switch cfg.Store.Driver {
	case "firestore":
		client, err := firestoredb.NewClient(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		return NewFirestoreStore(client), nil

	case "mongo":
		db, err := mongodb.NewDatabase(ctx, cfg.Store)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(db), nil

	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar no postgres: %w", err)
		}
		if err := conn.Ping(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("erro ao testar conexão com postgres: %w", err)
		}
		store := NewPostgresStore(conn, cfg.Store.PostgresDocumentsTable)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return store, nil

	case "memory":
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("driver de documentos desconhecido: %q", cfg.Store.Driver)
	}
}
