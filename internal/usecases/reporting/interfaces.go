package reporting

import (
	"context"

	"github.com/vfg2006/store-performance-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

// Reporter define as operações de relatório do dashboard de vendas. Cada
// chamada recompõe o escopo (a janela termina no instante da avaliação),
// relê a base e devolve objetos de valor novos; nada é compartilhado entre
// requisições.
type Reporter interface {
	// Rollup calcula o resumo de KPIs do escopo: receita, pedidos, ticket
	// médio e taxa de cancelamento.
	Rollup(ctx context.Context, store, channel domain.Filter, rangeToken string) (*domain.KpiRollup, error)

	// DailySeries calcula a receita concluída por dia calendário (UTC)
	// dentro do escopo, em ordem crescente de data.
	DailySeries(ctx context.Context, store, channel domain.Filter, rangeToken string) (domain.DailySeries, error)

	// TopProducts calcula o ranking dos produtos mais vendidos do escopo.
	// O limite é normalizado para [1, 50] antes da consulta.
	TopProducts(ctx context.Context, store, channel domain.Filter, rangeToken string, limit int) ([]domain.RankedProduct, error)
}
