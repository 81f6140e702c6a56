package handler

import (
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/scheduler"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

// RunDigest dispara manualmente o digest diário de KPIs
func RunDigest(digest *scheduler.DailyDigestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := digest.RunNow(); err != nil {
			logger.WithError(err).Warn("cron: digest recusado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.Info("cron: digest diário disparado manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "started"}); err != nil {
			logger.WithError(err).Error("cron: erro ao codificar resposta")
		}
	})
}

// GetCronStatus retorna o estado do job de digest
func GetCronStatus(digest *scheduler.DailyDigestService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(digest.Status()); err != nil {
			logger.WithError(err).Error("cron: erro ao codificar resposta")
		}
	})
}
