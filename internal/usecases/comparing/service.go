// Package comparing orquestra a comparação de vendas diárias entre duas
// lojas: duas execuções independentes da série diária, alinhadas pela união
// das datas antes do pareamento.
package comparing

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

// Rótulos usados quando o catálogo não conhece a loja. A comparação segue
// com o rótulo genérico em vez de falhar.
const (
	fallbackLabelA = "Loja A"
	fallbackLabelB = "Loja B"
)

type Comparer interface {
	// Compare calcula as séries diárias das duas lojas sob o mesmo canal e
	// período e devolve as duas alinhadas no mesmo eixo de datas.
	Compare(ctx context.Context, storeA, storeB string, channel domain.Filter, rangeToken string) (*domain.StoreComparison, error)
}

type Service struct {
	reporter          reporting.Reporter
	catalogRepository repository.CatalogRepository
}

func NewService(reporter reporting.Reporter, catalogRepository repository.CatalogRepository) Comparer {
	return &Service{
		reporter:          reporter,
		catalogRepository: catalogRepository,
	}
}

func (s *Service) Compare(ctx context.Context, storeA, storeB string, channel domain.Filter, rangeToken string) (*domain.StoreComparison, error) {
	type seriesResult struct {
		series domain.DailySeries
		err    error
	}

	// As duas leituras são independentes e somente leitura; rodar em
	// paralelo não muda o resultado, só o tempo de resposta.
	resultA := make(chan seriesResult, 1)
	resultB := make(chan seriesResult, 1)

	fetch := func(storeID string, out chan<- seriesResult) {
		series, err := s.reporter.DailySeries(ctx, domain.EqualTo(storeID), channel, rangeToken)
		out <- seriesResult{series: series, err: err}
	}

	go fetch(storeA, resultA)
	go fetch(storeB, resultB)

	a := <-resultA
	b := <-resultB

	if a.err != nil {
		return nil, errors.Wrap(a.err, "erro ao calcular a série da loja A")
	}
	if b.err != nil {
		return nil, errors.Wrap(b.err, "erro ao calcular a série da loja B")
	}

	seriesA, seriesB := alignSeries(a.series, b.series)

	labelA, err := s.storeLabel(ctx, storeA, fallbackLabelA)
	if err != nil {
		return nil, err
	}

	labelB, err := s.storeLabel(ctx, storeB, fallbackLabelB)
	if err != nil {
		return nil, err
	}

	return &domain.StoreComparison{
		StoreA:  labelA,
		StoreB:  labelB,
		SeriesA: seriesA,
		SeriesB: seriesB,
	}, nil
}

// alignSeries coloca as duas séries na união das datas, com zero nos dias
// que só existem do outro lado. Sem isso o pareamento por posição desalinha
// as datas sempre que uma loja tem um dia sem venda concluída e a outra não.
func alignSeries(a, b domain.DailySeries) (domain.DailySeries, domain.DailySeries) {
	totalsA := seriesTotals(a)
	totalsB := seriesTotals(b)

	dates := make([]string, 0, len(totalsA)+len(totalsB))
	seen := make(map[string]bool)
	for _, series := range []domain.DailySeries{a, b} {
		for _, point := range series {
			if !seen[point.Date] {
				seen[point.Date] = true
				dates = append(dates, point.Date)
			}
		}
	}
	sort.Strings(dates)

	alignedA := make(domain.DailySeries, 0, len(dates))
	alignedB := make(domain.DailySeries, 0, len(dates))
	for _, date := range dates {
		alignedA = append(alignedA, domain.DailyPoint{Date: date, Total: totalsA[date]})
		alignedB = append(alignedB, domain.DailyPoint{Date: date, Total: totalsB[date]})
	}

	return alignedA, alignedB
}

func seriesTotals(series domain.DailySeries) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(series))
	for _, point := range series {
		totals[point.Date] = point.Total
	}
	return totals
}

// storeLabel resolve o nome de exibição da loja. Id desconhecido vira o
// rótulo genérico; falha de acesso ao catálogo derruba a comparação inteira,
// nunca um resultado parcial.
func (s *Service) storeLabel(ctx context.Context, storeID, fallback string) (domain.StoreLabel, error) {
	store, err := s.catalogRepository.GetStoreByID(ctx, storeID)
	if err != nil {
		return domain.StoreLabel{}, errors.Wrap(err, "erro ao buscar loja no catálogo")
	}

	if store == nil {
		return domain.StoreLabel{ID: storeID, Name: fallback}, nil
	}

	return domain.StoreLabel{ID: store.ID, Name: store.Name}, nil
}
