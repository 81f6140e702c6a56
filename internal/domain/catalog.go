// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Store é uma loja da rede. Dado de referência, baixa cardinalidade.
type Store struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"-"`
}

// Channel é um canal de venda (loja física, e-commerce, marketplace...).
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
