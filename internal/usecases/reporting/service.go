package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

// Casas decimais dos derivados: ticket médio é dinheiro (2 casas); a taxa de
// cancelamento é uma razão e leva mais precisão para não distorcer escopos
// grandes.
const (
	moneyPlaces = 2
	ratioPlaces = 4
)

// Service implementa Reporter com um fold em memória sobre as vendas do
// escopo. A agregação é associativa por linha, então o mesmo resultado
// sairia de uma query agregada no banco.
type Service struct {
	salesRepository repository.SalesRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(salesRepository repository.SalesRepository) Reporter {
	return &Service{
		salesRepository: salesRepository,
	}
}

func (s *Service) Rollup(ctx context.Context, store, channel domain.Filter, rangeToken string) (*domain.KpiRollup, error) {
	scope := ComposeScope(store, channel, rangeToken)

	sales, err := s.salesRepository.ListSales(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do escopo")
	}

	rollup := buildRollup(sales)
	return &rollup, nil
}

// buildRollup calcula os quatro KPIs em uma única passada. Escopo vazio dá o
// rollup zerado, nunca NaN nem erro: decimal.Div entra em pânico com divisor
// zero, então as divisões só acontecem com contagem positiva.
func buildRollup(sales []*domain.Sale) domain.KpiRollup {
	var revenue decimal.Decimal
	var orders, canceled int64

	for _, sale := range sales {
		switch sale.Status {
		case domain.SaleStatusCompleted:
			revenue = revenue.Add(sale.TotalAmount)
			orders++
		case domain.SaleStatusCanceled:
			canceled++
		}
	}

	rollup := domain.KpiRollup{
		Revenue: revenue,
		Orders:  orders,
	}

	if orders > 0 {
		rollup.AverageOrderValue = revenue.DivRound(decimal.NewFromInt(orders), moneyPlaces)
	}

	if total := int64(len(sales)); total > 0 {
		rollup.CancelRate = decimal.NewFromInt(canceled).DivRound(decimal.NewFromInt(total), ratioPlaces)
	}

	return rollup
}

func (s *Service) DailySeries(ctx context.Context, store, channel domain.Filter, rangeToken string) (domain.DailySeries, error) {
	scope := ComposeScope(store, channel, rangeToken)

	sales, err := s.salesRepository.ListSales(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do escopo")
	}

	return buildDailySeries(sales), nil
}

// buildDailySeries agrupa a receita concluída por dia UTC. Vendas de outros
// status não somam nem criam o dia: um dia só com cancelamentos fica fora da
// série, conforme o contrato do endpoint.
func buildDailySeries(sales []*domain.Sale) domain.DailySeries {
	totals := make(map[string]decimal.Decimal)

	for _, sale := range sales {
		if sale.Status != domain.SaleStatusCompleted {
			continue
		}

		day := sale.CreatedAt.UTC().Format(time.DateOnly)
		totals[day] = totals[day].Add(sale.TotalAmount)
	}

	series := make(domain.DailySeries, 0, len(totals))
	for day, total := range totals {
		series = append(series, domain.DailyPoint{Date: day, Total: total})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

func (s *Service) TopProducts(ctx context.Context, store, channel domain.Filter, rangeToken string, limit int) ([]domain.RankedProduct, error) {
	limit = clampLimit(limit)
	scope := ComposeScope(store, channel, rangeToken)

	products, err := s.salesRepository.TopProducts(ctx, scope, limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking de produtos")
	}

	// O repositório devolve na ordem final (unidades, receita, id); aqui só
	// entram as posições densas.
	ranked := make([]domain.RankedProduct, 0, len(products))
	for i, product := range products {
		ranked = append(ranked, domain.RankedProduct{
			Rank:    i + 1,
			Name:    product.Name,
			Units:   product.Units,
			Revenue: product.Revenue,
		})
	}

	return ranked, nil
}
