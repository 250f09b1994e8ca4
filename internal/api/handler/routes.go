package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/api/handler/router"
	"github.com/vfg2006/ad-attribution-sync/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/jobs/:type",
			Method:      http.MethodPost,
			Handler:     RunJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/jobs/status",
			Method:      http.MethodGet,
			Handler:     GetJobStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Attribution(
	adRepo repository.AdRepository,
	mappingRepo repository.OpportunityMappingRepository,
	weeklyRepo repository.WeeklyStatsRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads/:id",
			Method:      http.MethodGet,
			Handler:     GetAd(adRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/opportunities/:id/mapping",
			Method:      http.MethodGet,
			Handler:     GetOpportunityMapping(mappingRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id/weekly",
			Method:      http.MethodGet,
			Handler:     GetAdWeekly(weeklyRepo, time.Now),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
