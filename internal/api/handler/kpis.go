package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// GetKpis retorna o resumo de KPIs (receita, pedidos, ticket médio e taxa de
// cancelamento) do escopo informado nos query params.
func GetKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		store := domain.FilterFromParam(query.Get("store"))
		channel := domain.FilterFromParam(query.Get("channel"))
		rangeToken := query.Get("range")

		rollup, err := service.Rollup(r.Context(), store, channel, rangeToken)
		if err != nil {
			logger.WithError(err).Error("kpis: erro ao calcular o resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular os KPIs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rollup); err != nil {
			logger.WithError(err).Error("kpis: erro ao codificar resposta")
		}
	})
}
