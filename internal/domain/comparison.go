package domain

// StoreLabel identifica uma loja na resposta de comparação. Quando o
// catálogo não conhece o id, Name recebe um rótulo genérico.
type StoreLabel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StoreComparison é o resultado da comparação entre duas lojas. As duas
// séries compartilham o mesmo eixo de datas (união das datas das duas, com
// zero nos dias ausentes de cada lado), então o pareamento por índice também
// é o pareamento por data.
type StoreComparison struct {
	StoreA  StoreLabel  `json:"store_a"`
	StoreB  StoreLabel  `json:"store_b"`
	SeriesA DailySeries `json:"series_a"`
	SeriesB DailySeries `json:"series_b"`
}
