package domain

import "github.com/shopspring/decimal"

// DailyPoint é a receita concluída de um dia calendário. Date usa o formato
// YYYY-MM-DD (dia UTC, sem hora), então a ordem lexicográfica é a ordem
// cronológica.
type DailyPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailySeries é uma sequência de pontos em ordem crescente de data. Dias sem
// receita concluída não aparecem; quem assume um ponto por dia precisa
// reconstruir os dias ausentes.
type DailySeries []DailyPoint
