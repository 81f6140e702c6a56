package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/comparing"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// GetStoreComparison retorna as séries diárias de duas lojas lado a lado,
// sob o mesmo canal e período. storeA e storeB são obrigatórios.
func GetStoreComparison(service comparing.Comparer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		storeA := query.Get("storeA")
		storeB := query.Get("storeB")

		if storeA == "" || storeB == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar storeA e storeB", nil)
			return
		}

		channel := domain.FilterFromParam(query.Get("channel"))
		rangeToken := query.Get("range")

		comparison, err := service.Compare(r.Context(), storeA, storeB, channel, rangeToken)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"store_a": storeA,
				"store_b": storeB,
			}).Error("comparison: erro ao comparar lojas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao comparar as lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("comparison: erro ao codificar resposta")
		}
	})
}
