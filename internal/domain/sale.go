package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus é o status de uma venda como gravado na coluna sale_status_desc.
// Valores fora dos conhecidos (pendente, em separação etc.) não contam nem
// como concluídos nem como cancelados.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusCanceled  SaleStatus = "CANCELED"
)

// Sale é uma venda lida da base transacional. Esta API só lê vendas; a
// escrita pertence ao sistema de PDV.
type Sale struct {
	ID          string
	StoreID     string
	ChannelID   string
	Status      SaleStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// ProductSales é o agregado de vendas de um produto dentro de um escopo,
// já agrupado pelo banco.
type ProductSales struct {
	ProductID string
	Name      string
	Units     int64
	Revenue   decimal.Decimal
}
