package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// ListStores retorna as lojas ativas para popular o filtro do dashboard
func ListStores(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stores, err := service.ListStores(r.Context())
		if err != nil {
			logger.WithError(err).Error("stores: erro ao listar lojas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logger.WithError(err).Error("stores: erro ao codificar resposta")
		}
	})
}

// ListChannels retorna os canais de venda para popular o filtro do dashboard
func ListChannels(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		channels, err := service.ListChannels(r.Context())
		if err != nil {
			logger.WithError(err).Error("channels: erro ao listar canais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar canais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(channels); err != nil {
			logger.WithError(err).Error("channels: erro ao codificar resposta")
		}
	})
}
