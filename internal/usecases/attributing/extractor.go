package attributing

import (
	"fmt"

	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

type ExtractionStrategy string

const (
	// StrategyLastFlagged usa a entrada isLast (ou a última da lista)
	StrategyLastFlagged ExtractionStrategy = "last_flagged"
	// StrategyReverseScan procura, campo a campo, o primeiro valor não vazio do fim para o início
	StrategyReverseScan ExtractionStrategy = "reverse_scan"
)

func ParseExtractionStrategy(s string) (ExtractionStrategy, error) {
	switch ExtractionStrategy(s) {
	case "", StrategyLastFlagged:
		return StrategyLastFlagged, nil
	case StrategyReverseScan:
		return StrategyReverseScan, nil
	default:
		return "", fmt.Errorf("estratégia de extração desconhecida: %q", s)
	}
}

type Extractor struct {
	strategy ExtractionStrategy
}

func NewExtractor(strategy ExtractionStrategy) Extractor {
	if strategy == "" {
		strategy = StrategyLastFlagged
	}
	return Extractor{strategy: strategy}
}

// Extract devolve a melhor tupla de identificadores da lista de atribuições
func (e Extractor) Extract(attributions []domain.Attribution) domain.AttributionRef {
	if len(attributions) == 0 {
		return domain.AttributionRef{}
	}

	if e.strategy == StrategyReverseScan {
		return reverseScan(attributions)
	}
	return selectLast(attributions).Ref()
}

func selectLast(attributions []domain.Attribution) domain.Attribution {
	for i := len(attributions) - 1; i >= 0; i-- {
		if attributions[i].IsLast {
			return attributions[i]
		}
	}
	return attributions[len(attributions)-1]
}

func reverseScan(attributions []domain.Attribution) domain.AttributionRef {
	var ref domain.AttributionRef
	for i := len(attributions) - 1; i >= 0; i-- {
		a := attributions[i]
		if ref.AdID == "" {
			ref.AdID = a.AdID
		}
		if ref.CampaignID == "" {
			ref.CampaignID = a.CampaignID
		}
		if ref.AdName == "" {
			ref.AdName = a.AdName
		}
		if ref.AdSetName == "" {
			ref.AdSetName = a.AdSetName
		}
	}
	return ref
}
