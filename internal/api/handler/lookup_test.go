package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository/mocks"
	handlermocks "github.com/vfg2006/ad-attribution-sync/internal/api/handler/mocks"
	"go.uber.org/mock/gomock"
)

func withParams(r *http.Request, params ...httprouter.Param) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, httprouter.Params(params)))
}

func TestGetAdWeeklyDefaultsToCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWeeklyStatsRepository(ctrl)
	repo.EXPECT().ListByAd(gomock.Any(), "AD9", "2025-11").Return(nil, nil)

	now := func() time.Time { return time.Date(2025, 11, 10, 2, 0, 0, 0, time.UTC) }

	req := withParams(httptest.NewRequest(http.MethodGet, "/v1/ads/AD9/weekly", nil),
		httprouter.Param{Key: "id", Value: "AD9"})
	rec := httptest.NewRecorder()

	GetAdWeekly(repo, now).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-11", body["month"])
	assert.Equal(t, []any{}, body["weeks"])
}

func TestRunJobAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	attribution := handlermocks.NewMockJobTrigger(ctrl)
	attribution.EXPECT().TriggerManualSync().Return(true)
	catalog := handlermocks.NewMockJobTrigger(ctrl)
	catalog.EXPECT().TriggerManualSync().Return(false)

	req := withParams(httptest.NewRequest(http.MethodPost, "/v1/jobs/all", nil),
		httprouter.Param{Key: "type", Value: JobTypeAll})
	rec := httptest.NewRecorder()

	RunJob(JobServices{Attribution: attribution, AdCatalog: catalog}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body struct {
		Started []string `json:"started"`
		Running []string `json:"running"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{JobTypeAttribution}, body.Started)
	assert.Equal(t, []string{JobTypeAdCatalog}, body.Running)
}
