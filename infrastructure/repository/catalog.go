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
	storesTable   = "stores"
	channelsTable = "channels"
)

//go:generate mockgen -source=catalog.go -destination=mocks/catalog_mock.go -package=mocks

type CatalogRepository interface {
	// ListStores retorna as lojas ativas em ordem alfabética.
	ListStores(ctx context.Context) ([]*domain.Store, error)

	// ListChannels retorna todos os canais em ordem alfabética.
	ListChannels(ctx context.Context) ([]*domain.Channel, error)

	// GetStoreByID retorna a loja do id informado, ou (nil, nil) quando o id
	// não existe.
	GetStoreByID(ctx context.Context, id string) (*domain.Store, error)
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	sqlQuery, args, err := squirrel.
		Select("id::text", "name", "is_active").
		From(storesTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Active); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *catalogRepository) ListChannels(ctx context.Context) ([]*domain.Channel, error) {
	sqlQuery, args, err := squirrel.
		Select("id::text", "name").
		From(channelsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	channels := make([]*domain.Channel, 0)
	for rows.Next() {
		channel := &domain.Channel{}
		if err := rows.Scan(&channel.ID, &channel.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *catalogRepository) GetStoreByID(ctx context.Context, id string) (*domain.Store, error) {
	sqlQuery, args, err := squirrel.
		Select("id::text", "name", "is_active").
		From(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := row.Scan(&store.ID, &store.Name, &store.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}
