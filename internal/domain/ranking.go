package domain

import "github.com/shopspring/decimal"

// RankedProduct é uma posição do ranking de produtos mais vendidos.
// Posições são densas e começam em 1.
type RankedProduct struct {
	Rank    int             `json:"rank"`
	Name    string          `json:"name"`
	Units   int64           `json:"units"`
	Revenue decimal.Decimal `json:"revenue"`
}
