package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// GetDailySales retorna a série de receita concluída por dia do escopo.
// Dias sem receita concluída não aparecem na resposta.
func GetDailySales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		store := domain.FilterFromParam(query.Get("store"))
		channel := domain.FilterFromParam(query.Get("channel"))
		rangeToken := query.Get("range")

		series, err := service.DailySeries(r.Context(), store, channel, rangeToken)
		if err != nil {
			logger.WithError(err).Error("daily-sales: erro ao calcular a série")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular as vendas diárias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithError(err).Error("daily-sales: erro ao codificar resposta")
		}
	})
}
