package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/store-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	reportingmocks "github.com/vfg2006/store-performance-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func testDigestConfig() *config.Config {
	return &config.Config{
		DailyDigest: config.DailyDigest{
			CronSchedule: "0 6 * * *",
			RangeToken:   "7d",
			Enabled:      true,
		},
	}
}

func emptyRollup() *domain.KpiRollup {
	return &domain.KpiRollup{
		Revenue:           decimal.Zero,
		AverageOrderValue: decimal.Zero,
		CancelRate:        decimal.Zero,
	}
}

func TestRunDigest_PercorreAsLojasAtivas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockCatalogRepo := repomocks.NewMockCatalogRepository(ctrl)
	service := NewDailyDigestService(mockReporter, mockCatalogRepo, testDigestConfig())

	mockCatalogRepo.EXPECT().
		ListStores(gomock.Any()).
		Return([]*domain.Store{
			{ID: "1", Name: "Floripa", Active: true},
			{ID: "2", Name: "Erechim", Active: true},
		}, nil)

	mockReporter.EXPECT().
		Rollup(gomock.Any(), domain.EqualTo("1"), domain.Unfiltered(), "7d").
		Return(emptyRollup(), nil)

	mockReporter.EXPECT().
		Rollup(gomock.Any(), domain.EqualTo("2"), domain.Unfiltered(), "7d").
		Return(emptyRollup(), nil)

	service.runDigest()

	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.False(t, status.LastCompletedAt.Before(*status.LastStartedAt))
}

func TestRunDigest_ErroDeUmaLojaNaoInterrompeAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockCatalogRepo := repomocks.NewMockCatalogRepository(ctrl)
	service := NewDailyDigestService(mockReporter, mockCatalogRepo, testDigestConfig())

	mockCatalogRepo.EXPECT().
		ListStores(gomock.Any()).
		Return([]*domain.Store{
			{ID: "1", Name: "Floripa", Active: true},
			{ID: "2", Name: "Erechim", Active: true},
		}, nil)

	mockReporter.EXPECT().
		Rollup(gomock.Any(), domain.EqualTo("1"), domain.Unfiltered(), "7d").
		Return(nil, errors.New("timeout"))

	// A segunda loja ainda é processada
	mockReporter.EXPECT().
		Rollup(gomock.Any(), domain.EqualTo("2"), domain.Unfiltered(), "7d").
		Return(emptyRollup(), nil)

	service.runDigest()
}

func TestRunDigest_ErroAoListarLojas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockCatalogRepo := repomocks.NewMockCatalogRepository(ctrl)
	service := NewDailyDigestService(mockReporter, mockCatalogRepo, testDigestConfig())

	mockCatalogRepo.EXPECT().
		ListStores(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	// Nenhuma chamada ao reporter deve acontecer
	service.runDigest()

	status := service.Status()
	assert.False(t, status.Running)
}

func TestRunNow_RecusaExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockCatalogRepo := repomocks.NewMockCatalogRepository(ctrl)
	service := NewDailyDigestService(mockReporter, mockCatalogRepo, testDigestConfig())

	service.digestMutex.Lock()
	service.digestRunning = true
	service.digestMutex.Unlock()

	err := service.RunNow()

	assert.Error(t, err)
}

func TestStatus_RefleteConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockCatalogRepo := repomocks.NewMockCatalogRepository(ctrl)

	cfg := testDigestConfig()
	cfg.DailyDigest.Enabled = false
	service := NewDailyDigestService(mockReporter, mockCatalogRepo, cfg)

	status := service.Status()

	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Equal(t, "0 6 * * *", status.CronSchedule)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}
