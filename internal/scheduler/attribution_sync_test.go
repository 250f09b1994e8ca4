package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/syncing"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 11, 10, 2, 0, 0, 0, time.UTC)

func newAttributionSync(t *testing.T, lookback int) (*AttributionSyncService, *mocks.MockRunner) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	cfg := &config.Config{AttributionSync: config.AttributionSync{CronSchedule: "0 2 * * *", LookbackDays: lookback}}
	s := NewAttributionSyncService(runner, cfg)
	s.now = func() time.Time { return fixedNow }
	return s, runner
}

func TestAttributionSyncOptions(t *testing.T) {
	tests := []struct {
		name     string
		lookback int
		validate func(t *testing.T, opts syncing.RunOptions)
	}{
		{
			name:     "sem lookback executa a reconstrução completa",
			lookback: 0,
			validate: func(t *testing.T, opts syncing.RunOptions) {
				assert.True(t, opts.Full())
				assert.True(t, opts.WriteReport)
			},
		},
		{
			name:     "lookback define o início da janela",
			lookback: 14,
			validate: func(t *testing.T, opts syncing.RunOptions) {
				require.NotNil(t, opts.Since)
				assert.Equal(t, time.Date(2025, 10, 27, 2, 0, 0, 0, time.UTC), *opts.Since)
				assert.False(t, opts.Full())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newAttributionSync(t, tt.lookback)
			tt.validate(t, s.options())
		})
	}
}

func TestAttributionSyncOverlapGuard(t *testing.T) {
	s, runner := newAttributionSync(t, 0)
	release := make(chan struct{})

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ syncing.RunOptions) (*syncing.RunReport, error) {
			<-release
			return &syncing.RunReport{RunID: "run123"}, errors.New("gravação parcial")
		}).
		Times(1)

	assert.True(t, s.TriggerManualSync())
	assert.False(t, s.TriggerManualSync())

	s.runSync()

	close(release)
	assert.Eventually(t, func() bool { return !s.state.isRunning() }, time.Second, 10*time.Millisecond)

	status := s.GetStatus()
	assert.Equal(t, "run123", status["last_run_id"])
	assert.Equal(t, "gravação parcial", status["last_error"])
	assert.Equal(t, false, status["running"])
}

func TestStartDisabled(t *testing.T) {
	s, _ := newAttributionSync(t, 0)
	assert.NoError(t, s.Start(context.Background()))
	assert.Equal(t, false, s.GetStatus()["sync_enabled"])
}
