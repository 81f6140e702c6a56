package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func sale(status domain.SaleStatus, amount string, createdAt time.Time) *domain.Sale {
	return &domain.Sale{
		Status:      status,
		TotalAmount: decimal.RequireFromString(amount),
		CreatedAt:   createdAt,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 14, 0, 0, 0, time.UTC)
}

func TestBuildRollup(t *testing.T) {
	tests := []struct {
		name           string
		sales          []*domain.Sale
		wantRevenue    string
		wantOrders     int64
		wantAov        string
		wantCancelRate string
	}{
		{
			name:           "escopo vazio zera todos os campos",
			sales:          nil,
			wantRevenue:    "0",
			wantOrders:     0,
			wantAov:        "0",
			wantCancelRate: "0",
		},
		{
			name: "duas concluídas e uma cancelada",
			sales: []*domain.Sale{
				sale(domain.SaleStatusCompleted, "100", day(1)),
				sale(domain.SaleStatusCompleted, "50", day(2)),
				sale(domain.SaleStatusCanceled, "30", day(2)),
			},
			wantRevenue:    "150",
			wantOrders:     2,
			wantAov:        "75",
			wantCancelRate: "0.3333",
		},
		{
			name: "só canceladas: receita e ticket zerados, taxa cheia",
			sales: []*domain.Sale{
				sale(domain.SaleStatusCanceled, "30", day(1)),
				sale(domain.SaleStatusCanceled, "10", day(2)),
			},
			wantRevenue:    "0",
			wantOrders:     0,
			wantAov:        "0",
			wantCancelRate: "1",
		},
		{
			name: "status pendente não conta como concluída nem cancelada",
			sales: []*domain.Sale{
				sale(domain.SaleStatusCompleted, "80", day(1)),
				sale("PENDING", "999", day(1)),
			},
			wantRevenue:    "80",
			wantOrders:     1,
			wantAov:        "80",
			wantCancelRate: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rollup := buildRollup(tt.sales)

			assert.True(t, rollup.Revenue.Equal(decimal.RequireFromString(tt.wantRevenue)),
				"receita: esperado %s, veio %s", tt.wantRevenue, rollup.Revenue)
			assert.Equal(t, tt.wantOrders, rollup.Orders)
			assert.True(t, rollup.AverageOrderValue.Equal(decimal.RequireFromString(tt.wantAov)),
				"ticket médio: esperado %s, veio %s", tt.wantAov, rollup.AverageOrderValue)
			assert.True(t, rollup.CancelRate.Equal(decimal.RequireFromString(tt.wantCancelRate)),
				"taxa de cancelamento: esperado %s, veio %s", tt.wantCancelRate, rollup.CancelRate)

			// A taxa de cancelamento é uma razão, sempre em [0, 1]
			assert.True(t, rollup.CancelRate.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, rollup.CancelRate.LessThanOrEqual(decimal.NewFromInt(1)))
		})
	}
}

func TestBuildRollup_TicketMedioConsistente(t *testing.T) {
	sales := []*domain.Sale{
		sale(domain.SaleStatusCompleted, "99.90", day(1)),
		sale(domain.SaleStatusCompleted, "149.50", day(2)),
		sale(domain.SaleStatusCompleted, "35.10", day(3)),
	}

	rollup := buildRollup(sales)

	// aov * orders precisa bater com a receita dentro da tolerância de
	// arredondamento de 2 casas
	product := rollup.AverageOrderValue.Mul(decimal.NewFromInt(rollup.Orders))
	diff := product.Sub(rollup.Revenue).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.02")),
		"aov*orders=%s, receita=%s", product, rollup.Revenue)
}

func TestBuildDailySeries(t *testing.T) {
	sales := []*domain.Sale{
		sale(domain.SaleStatusCompleted, "100", day(3)),
		sale(domain.SaleStatusCompleted, "40", day(1)),
		sale(domain.SaleStatusCompleted, "60", day(1)),
		// dia 2 só tem cancelamento: não entra na série
		sale(domain.SaleStatusCanceled, "30", day(2)),
	}

	series := buildDailySeries(sales)

	assert.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2024-03-03", series[1].Date)
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(100)))

	// Datas estritamente crescentes, sem duplicatas
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
}

func TestBuildDailySeries_EscopoVazio(t *testing.T) {
	series := buildDailySeries(nil)
	assert.Empty(t, series)
}

func TestService_Rollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo)

	mockSalesRepo.EXPECT().
		ListSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope domain.Scope) ([]*domain.Sale, error) {
			// A janela de 7d termina no instante da avaliação
			assert.Equal(t, 7*24*time.Hour, scope.To.Sub(scope.From))
			return []*domain.Sale{
				sale(domain.SaleStatusCompleted, "100", day(1)),
				sale(domain.SaleStatusCompleted, "50", day(2)),
				sale(domain.SaleStatusCanceled, "30", day(2)),
			}, nil
		})

	rollup, err := service.Rollup(context.Background(), domain.EqualTo("1"), domain.Unfiltered(), "7d")

	assert.NoError(t, err)
	assert.True(t, rollup.Revenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(2), rollup.Orders)
	assert.True(t, rollup.AverageOrderValue.Equal(decimal.NewFromInt(75)))
	assert.True(t, rollup.CancelRate.Equal(decimal.RequireFromString("0.3333")))
}

func TestService_Rollup_ErroDoBancoPropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo)

	mockSalesRepo.EXPECT().
		ListSales(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	rollup, err := service.Rollup(context.Background(), domain.Unfiltered(), domain.Unfiltered(), "30d")

	assert.Error(t, err)
	assert.Nil(t, rollup)
}

func TestService_TopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo)

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "limite dentro da faixa passa direto", limit: 10, wantLimit: 10},
		{name: "limite acima do teto vira 50", limit: 500, wantLimit: 50},
		{name: "limite zero vira 1", limit: 0, wantLimit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSalesRepo.EXPECT().
				TopProducts(gomock.Any(), gomock.Any(), tt.wantLimit).
				Return([]*domain.ProductSales{
					{ProductID: "p1", Name: "Óculos Sol X", Units: 12, Revenue: decimal.NewFromInt(1200)},
					{ProductID: "p2", Name: "Armação Y", Units: 7, Revenue: decimal.NewFromInt(2100)},
				}, nil)

			products, err := service.TopProducts(context.Background(), domain.Unfiltered(), domain.Unfiltered(), "30d", tt.limit)

			assert.NoError(t, err)
			assert.Len(t, products, 2)

			// Posições densas começando em 1, unidades não crescentes
			assert.Equal(t, 1, products[0].Rank)
			assert.Equal(t, 2, products[1].Rank)
			assert.GreaterOrEqual(t, products[0].Units, products[1].Units)
			assert.Equal(t, "Óculos Sol X", products[0].Name)
		})
	}
}

func TestService_TopProducts_EscopoVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo)

	mockSalesRepo.EXPECT().
		TopProducts(gomock.Any(), gomock.Any(), 10).
		Return([]*domain.ProductSales{}, nil)

	products, err := service.TopProducts(context.Background(), domain.EqualTo("loja-inexistente"), domain.Unfiltered(), "7d", 10)

	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestService_DailySeries_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	service := NewService(mockSalesRepo)

	fixed := []*domain.Sale{
		sale(domain.SaleStatusCompleted, "10", day(1)),
		sale(domain.SaleStatusCompleted, "20", day(2)),
	}

	mockSalesRepo.EXPECT().
		ListSales(gomock.Any(), gomock.Any()).
		Return(fixed, nil).
		Times(2)

	first, err := service.DailySeries(context.Background(), domain.Unfiltered(), domain.Unfiltered(), "7d")
	assert.NoError(t, err)

	second, err := service.DailySeries(context.Background(), domain.Unfiltered(), domain.Unfiltered(), "7d")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
