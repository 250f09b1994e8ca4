package handler

import (
	"net/http"
	"regexp"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/ad-attribution-sync/pkg/log"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// GetOpportunityMapping devolve o documento de atribuição de uma oportunidade
func GetOpportunityMapping(repo repository.OpportunityMappingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oportunidade obrigatório", nil)
			return
		}

		mapping, err := repo.Get(r.Context(), id)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar mapeamento")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao buscar mapeamento", nil)
			return
		}
		if mapping == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Mapeamento não encontrado", id)
			return
		}

		writeJSON(w, http.StatusOK, mapping)
	}
}

// GetAd devolve o documento adPerformance do anúncio
func GetAd(repo repository.AdRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ad, err := repo.GetAd(r.Context(), adID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar anúncio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao buscar anúncio", nil)
			return
		}
		if ad == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Anúncio não encontrado", adID)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

type weeklyResponse struct {
	AdID    string                 `json:"adId"`
	Month   string                 `json:"month"`
	Weeks   []*domain.WeeklyBucket `json:"weeks"`
	Summary domain.GHLStats        `json:"summary"`
}

// GetAdWeekly lista as semanas consolidadas de um anúncio no mês (padrão: mês corrente)
func GetAdWeekly(repo repository.WeeklyStatsRepository, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anúncio obrigatório", nil)
			return
		}

		month := r.URL.Query().Get("month")
		if month == "" {
			month = now().UTC().Format("2006-01")
		}
		if !monthPattern.MatchString(month) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês deve estar no formato YYYY-MM", month)
			return
		}

		buckets, err := repo.ListByAd(r.Context(), adID, month)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar semanas do anúncio")
			apiErrors.WriteError(w, apiErrors.ErrStoreOperation, "Erro ao listar semanas do anúncio", nil)
			return
		}

		resp := weeklyResponse{
			AdID:  adID,
			Month: month,
			Weeks: buckets,
		}
		if resp.Weeks == nil {
			resp.Weeks = []*domain.WeeklyBucket{}
		}
		for _, b := range buckets {
			resp.Summary.AddBucket(b)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
