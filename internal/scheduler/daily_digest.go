// Package scheduler agenda o digest diário de KPIs: um job somente leitura
// que registra o resumo recente de cada loja ativa no log, para
// acompanhamento operacional sem abrir o dashboard.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

const digestRunTimeout = 2 * time.Minute

// DigestStatus é o estado do job exposto pelo endpoint de status.
type DigestStatus struct {
	Enabled         bool       `json:"enabled"`
	Running         bool       `json:"running"`
	CronSchedule    string     `json:"cron_schedule"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// DailyDigestService gerencia o agendamento e a execução do digest de KPIs
type DailyDigestService struct {
	scheduler         *gocron.Scheduler
	config            config.DailyDigest
	reporter          reporting.Reporter
	catalogRepository repository.CatalogRepository

	digestRunning   bool
	digestMutex     sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewDailyDigestService cria uma nova instância do serviço de digest diário
func NewDailyDigestService(
	reporter reporting.Reporter,
	catalogRepository repository.CatalogRepository,
	appConfig *config.Config,
) *DailyDigestService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.DailyDigest.CronSchedule,
		"range":         appConfig.DailyDigest.RangeToken,
		"enabled":       appConfig.DailyDigest.Enabled,
	}).Info("Configuração do digest diário de KPIs carregada")

	return &DailyDigestService{
		scheduler:         gocron.NewScheduler(time.UTC),
		config:            appConfig.DailyDigest,
		reporter:          reporter,
		catalogRepository: catalogRepository,
	}
}

// Start inicia o agendador
func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Digest diário de KPIs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do digest diário de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o digest diário de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do digest diário de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma execução manual do digest. Retorna erro se já houver
// uma execução em andamento.
func (s *DailyDigestService) RunNow() error {
	s.digestMutex.Lock()
	running := s.digestRunning
	s.digestMutex.Unlock()

	if running {
		return fmt.Errorf("digest diário já em andamento")
	}

	go s.runDigest()
	return nil
}

// Status retorna o estado atual do job
func (s *DailyDigestService) Status() DigestStatus {
	s.digestMutex.Lock()
	defer s.digestMutex.Unlock()

	status := DigestStatus{
		Enabled:      s.config.Enabled,
		Running:      s.digestRunning,
		CronSchedule: s.config.CronSchedule,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *DailyDigestService) runDigest() {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Info("Digest diário já em andamento, ignorando")
		return
	}
	s.digestRunning = true
	s.lastStartedAt = time.Now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.digestRunning = false
		s.lastCompletedAt = time.Now()
		s.digestMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), digestRunTimeout)
	defer cancel()

	stores, err := s.catalogRepository.ListStores(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lojas para o digest diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"stores": len(stores),
		"range":  s.config.RangeToken,
	}).Info("Iniciando digest diário de KPIs")

	for _, store := range stores {
		rollup, err := s.reporter.Rollup(ctx, domain.EqualTo(store.ID), domain.Unfiltered(), s.config.RangeToken)
		if err != nil {
			logrus.WithError(err).WithField("store_id", store.ID).Error("Erro ao calcular o digest da loja")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"store_id":    store.ID,
			"store_name":  store.Name,
			"range":       s.config.RangeToken,
			"revenue":     rollup.Revenue.String(),
			"orders":      rollup.Orders,
			"aov":         rollup.AverageOrderValue.String(),
			"cancel_rate": rollup.CancelRate.String(),
		}).Info("Digest diário de KPIs da loja")
	}

	logrus.Info("Digest diário de KPIs concluído")
}
