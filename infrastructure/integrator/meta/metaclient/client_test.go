package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func newTestClient(serverURL string, withApp bool) (Client, *config.Config) {
	cfg := &config.Config{
		Meta: config.Meta{
			URL:         serverURL,
			AccessToken: "token-antigo",
			Timeout:     5 * time.Second,
			RetryCount:  3,
			RetryWait:   time.Millisecond,
		},
	}
	if withApp {
		cfg.Meta.AppID = "app"
		cfg.Meta.AppSecret = "secret"
	}
	return NewClient(cfg, NewTokenManager(cfg)), cfg
}

func TestGetCampaignsFollowsPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_1/campaigns", r.URL.Path)
		assert.Equal(t, "token-antigo", r.URL.Query().Get("access_token"))

		if r.URL.Query().Get("after") == "" {
			_, _ = w.Write([]byte(`{"data":[{"id":"c1","name":"Um"}],"paging":{"cursors":{"after":"cur1"},"next":"https://next"}}`))
			return
		}
		assert.Equal(t, "cur1", r.URL.Query().Get("after"))
		_, _ = w.Write([]byte(`{"data":[{"id":"c2","name":"Dois"}],"paging":{"cursors":{"after":"cur2"}}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL, false)
	campaigns, err := client.GetCampaigns(context.Background(), "act_1")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "c2", campaigns[1].ID)
}

func TestExpiredTokenIsRefreshedAndRetried(t *testing.T) {
	var insightCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access_token":
			assert.Equal(t, "token-antigo", r.URL.Query().Get("fb_exchange_token"))
			_, _ = w.Write([]byte(`{"access_token":"token-novo","token_type":"bearer","expires_in":5184000}`))
		case "/AD1/insights":
			insightCalls.Add(1)
			if r.URL.Query().Get("access_token") == "token-antigo" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`))
				return
			}
			assert.Contains(t, r.URL.Query().Get("time_range"), `"since":"2025-11-01"`)
			_, _ = w.Write([]byte(`{"data":[{"ad_id":"AD1","spend":"12.345","impressions":"1000","clicks":"10","reach":"800"}]}`))
		default:
			t.Fatalf("rota inesperada %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, cfg := newTestClient(server.URL, true)

	start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	insight, err := client.GetAdInsights(context.Background(), "AD1", &domain.InsightFilters{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.NotNil(t, insight)
	assert.Equal(t, "12.345", insight.Spend)
	assert.Equal(t, int32(2), insightCalls.Load())
	assert.Equal(t, "token-novo", cfg.Meta.AccessToken)
	assert.False(t, cfg.Meta.TokenExpiresAt.IsZero())
}

func TestExpiredTokenWithoutAppCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Session has expired","type":"OAuthException","code":190,"error_subcode":463}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL, false)
	_, err := client.GetAd(context.Background(), "AD1")
	assert.ErrorIs(t, err, ErrReauthorizationRequired)
}

func TestGetAdNotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100,"error_subcode":33}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL, false)
	_, err := client.GetAd(context.Background(), "AD404")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRateLimitIsRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"User request limit reached","type":"OAuthException","code":17}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL, false)
	insight, err := client.GetAdInsights(context.Background(), "AD1", nil)
	require.NoError(t, err)
	assert.Nil(t, insight)
	assert.Equal(t, int32(2), calls.Load())
}

func TestEnsureValidTokenWithoutToken(t *testing.T) {
	cfg := &config.Config{}
	err := NewTokenManager(cfg).EnsureValidToken(context.Background())
	assert.ErrorIs(t, err, ErrMissingAccessToken)
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(59*24*time.Hour), CalculateTokenExpiration(now, 60*24*60*60))
	assert.Equal(t, now.Add(time.Hour), CalculateTokenExpiration(now, 2*60*60))
}
