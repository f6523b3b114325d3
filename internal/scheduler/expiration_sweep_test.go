package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/infrastructure/repository/mocks"
	"github.com/vfg2006/guia-local-api/internal/config"
	"go.uber.org/mock/gomock"
)

var sweepNow = time.Date(2024, 1, 16, 0, 5, 0, 0, time.UTC)

func newSweepService(t *testing.T) (*mocks.MockOfferRepository, *mocks.MockEventRepository, *ExpirationSweepService) {
	ctrl := gomock.NewController(t)
	offerRepo := mocks.NewMockOfferRepository(ctrl)
	eventRepo := mocks.NewMockEventRepository(ctrl)

	cfg := &config.Config{
		ExpirationSweep: config.ExpirationSweep{CronSchedule: "5 0 * * *", Enabled: true},
		App:             config.App{Location: time.UTC},
	}

	service := NewExpirationSweepService(offerRepo, eventRepo, cfg, func() time.Time { return sweepNow })
	return offerRepo, eventRepo, service
}

func TestExpirationSweepService_RunSweep(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(offers *mocks.MockOfferRepository, events *mocks.MockEventRepository)
		expected SweepResult
		wantErr  bool
	}{
		{
			name: "desativa ofertas e eventos vencidos",
			setup: func(offers *mocks.MockOfferRepository, events *mocks.MockEventRepository) {
				offers.EXPECT().DeactivateExpired(sweepNow).Return(int64(3), nil)
				events.EXPECT().DeactivateExpired(sweepNow).Return(int64(1), nil)
			},
			expected: SweepResult{OffersDeactivated: 3, EventsDeactivated: 1},
		},
		{
			name: "nada vencido",
			setup: func(offers *mocks.MockOfferRepository, events *mocks.MockEventRepository) {
				offers.EXPECT().DeactivateExpired(sweepNow).Return(int64(0), nil)
				events.EXPECT().DeactivateExpired(sweepNow).Return(int64(0), nil)
			},
			expected: SweepResult{},
		},
		{
			name: "falha em ofertas ainda processa eventos",
			setup: func(offers *mocks.MockOfferRepository, events *mocks.MockEventRepository) {
				offers.EXPECT().DeactivateExpired(sweepNow).Return(int64(0), errors.New("conexão perdida"))
				events.EXPECT().DeactivateExpired(sweepNow).Return(int64(2), nil)
			},
			expected: SweepResult{EventsDeactivated: 2},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerRepo, eventRepo, service := newSweepService(t)
			tt.setup(offerRepo, eventRepo)

			result, err := service.RunSweep(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpirationSweepService_RunSweepCancelledContext(t *testing.T) {
	_, _, service := newSweepService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.RunSweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpirationSweepService_StatusAfterSweep(t *testing.T) {
	offerRepo, eventRepo, service := newSweepService(t)
	offerRepo.EXPECT().DeactivateExpired(sweepNow).Return(int64(2), nil)
	eventRepo.EXPECT().DeactivateExpired(sweepNow).Return(int64(0), nil)

	service.sweep(context.Background())

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, sweepNow, status["last_sync_completed_at"])
	assert.Equal(t, SweepResult{OffersDeactivated: 2}, status["last_result"])
}

func TestExpirationSweepService_StartDisabled(t *testing.T) {
	_, _, service := newSweepService(t)
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}
