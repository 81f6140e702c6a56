// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

const (
	salesTable        = "sales s"
	productSalesTable = "product_sales ps"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales_mock.go -package=mocks

type SalesRepository interface {
	// ListSales retorna as vendas cuja created_at cai na janela do escopo e
	// que satisfazem os filtros de loja e canal. Todos os status voltam; a
	// agregação decide o que conta.
	ListSales(ctx context.Context, scope domain.Scope) ([]*domain.Sale, error)

	// TopProducts agrupa os itens de vendas concluídas do escopo por produto
	// e retorna no máximo limit linhas ordenadas por unidades DESC, receita
	// DESC e product_id ASC. O desempate é fixo para o ranking ser
	// determinístico entre execuções.
	TopProducts(ctx context.Context, scope domain.Scope, limit int) ([]*domain.ProductSales, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListSales(ctx context.Context, scope domain.Scope) ([]*domain.Sale, error) {
	sqlQuery, args, err := scopedSalesBuilder(scope).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *salesRepository) TopProducts(ctx context.Context, scope domain.Scope, limit int) ([]*domain.ProductSales, error) {
	sqlQuery, args, err := topProductsBuilder(scope, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductSales, 0)
	for rows.Next() {
		product := &domain.ProductSales{}
		err := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Units,
			&product.Revenue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// scopedSalesBuilder monta a seleção de vendas do escopo. A janela é
// semiaberta: created_at >= From e created_at < To.
func scopedSalesBuilder(scope domain.Scope) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"s.id",
			"s.store_id",
			"s.channel_id",
			"s.sale_status_desc",
			"s.total_amount",
			"s.created_at",
		).
		From(salesTable).
		Where(squirrel.GtOrEq{"s.created_at": scope.From}).
		Where(squirrel.Lt{"s.created_at": scope.To}).
		PlaceholderFormat(squirrel.Dollar)

	return applyDimensionFilters(builder, scope)
}

func topProductsBuilder(scope domain.Scope, limit int) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"ps.product_id",
			"p.name",
			"SUM(ps.quantity) AS units",
			"SUM(ps.total_price) AS revenue",
		).
		From(productSalesTable).
		Join("products p ON p.id = ps.product_id").
		Join(fmt.Sprintf("%s ON s.id = ps.sale_id", salesTable)).
		Where(squirrel.Eq{"s.sale_status_desc": domain.SaleStatusCompleted}).
		Where(squirrel.GtOrEq{"s.created_at": scope.From}).
		Where(squirrel.Lt{"s.created_at": scope.To}).
		GroupBy("ps.product_id", "p.name").
		OrderBy("units DESC", "revenue DESC", "ps.product_id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return applyDimensionFilters(builder, scope)
}

// applyDimensionFilters acrescenta as cláusulas de igualdade das dimensões
// filtradas. Os valores sempre entram como parâmetros ($n), nunca
// concatenados na query.
func applyDimensionFilters(builder squirrel.SelectBuilder, scope domain.Scope) squirrel.SelectBuilder {
	if storeID, ok := scope.Store.Selected(); ok {
		builder = builder.Where(squirrel.Eq{"s.store_id": storeID})
	}

	if channelID, ok := scope.Channel.Selected(); ok {
		builder = builder.Where(squirrel.Eq{"s.channel_id": channelID})
	}

	return builder
}

func (r *salesRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.ID,
		&sale.StoreID,
		&sale.ChannelID,
		&sale.Status,
		&sale.TotalAmount,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
