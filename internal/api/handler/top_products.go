package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// GetTopProducts retorna o ranking dos produtos mais vendidos do escopo.
// Limite fora de [1, 50] ou não numérico é normalizado, nunca rejeitado.
func GetTopProducts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		store := domain.FilterFromParam(query.Get("store"))
		channel := domain.FilterFromParam(query.Get("channel"))
		rangeToken := query.Get("range")
		limit := reporting.ParseLimit(query.Get("limit"))

		products, err := service.TopProducts(r.Context(), store, channel, rangeToken, limit)
		if err != nil {
			logger.WithError(err).Error("top-products: erro ao calcular o ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular o ranking de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("top-products: erro ao codificar resposta")
		}
	})
}
