package domain

import "github.com/shopspring/decimal"

// KpiRollup é o resumo agregado de um escopo. Todos os campos derivam das
// vendas do escopo e nunca são persistidos. CancelRate é uma razão em
// [0, 1]; o consumidor multiplica por 100 para exibir percentual.
type KpiRollup struct {
	Revenue           decimal.Decimal `json:"revenue"`
	Orders            int64           `json:"orders"`
	AverageOrderValue decimal.Decimal `json:"aov"`
	CancelRate        decimal.Decimal `json:"cancelRate"`
}
