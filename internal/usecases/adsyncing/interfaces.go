package adsyncing

import (
	"context"
	"time"

	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// AdSyncer mantém o catálogo de anúncios (adPerformance) espelhado do Facebook
type AdSyncer interface {
	// Sync percorre campanhas e anúncios gravando cada anúncio e o cursor de retomada
	Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error)

	// SyncAdsByID resolve anúncios ausentes do catálogo direto na Graph API
	SyncAdsByID(ctx context.Context, ids []string) (*ResolveReport, error)

	// RefreshStats atualiza facebookStats de todos os anúncios numa consulta em lote
	RefreshStats(ctx context.Context, since, until time.Time) (*RefreshReport, error)
}

type SyncOptions struct {
	Filters *domain.InsightFilters
	// Restart ignora o cursor salvo e começa da primeira campanha
	Restart bool
}
