package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/config"
)

// ExpirationSweepConfig representa a configuração da rotina de expiração
type ExpirationSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SweepResult resume uma execução da rotina
type SweepResult struct {
	OffersDeactivated int64 `json:"offers_deactivated"`
	EventsDeactivated int64 `json:"events_deactivated"`
}

// ExpirationSweepService desativa ofertas e eventos vencidos
type ExpirationSweepService struct {
	scheduler           *gocron.Scheduler
	config              ExpirationSweepConfig
	offerRepo           repository.OfferRepository
	eventRepo           repository.EventRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          SweepResult
}

func NewExpirationSweepService(
	offerRepo repository.OfferRepository,
	eventRepo repository.EventRepository,
	appConfig *config.Config,
	now func() time.Time,
) *ExpirationSweepService {
	sweepConfig := ExpirationSweepConfig{
		CronSchedule: appConfig.ExpirationSweep.CronSchedule,
		SyncEnabled:  appConfig.ExpirationSweep.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sync_enabled":  sweepConfig.SyncEnabled,
	}).Info("Configuração da rotina de expiração carregada")

	return &ExpirationSweepService{
		scheduler: gocron.NewScheduler(location),
		config:    sweepConfig,
		offerRepo: offerRepo,
		eventRepo: eventRepo,
		now:       now,
	}
}

// Start agenda a rotina e a encerra junto com o contexto
func (s *ExpirationSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Rotina de expiração desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da rotina de expiração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotina de expiração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da rotina de expiração")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep executa a rotina se nenhuma outra estiver em andamento
func (s *ExpirationSweepService) sweep(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rotina de expiração já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result, err := s.RunSweep(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na rotina de expiração")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// RunSweep desativa o que venceu até agora; falha em ofertas não impede eventos
func (s *ExpirationSweepService) RunSweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	startTime := s.now()

	if err := ctx.Err(); err != nil {
		return result, err
	}

	offers, offerErr := s.offerRepo.DeactivateExpired(startTime)
	if offerErr != nil {
		logrus.WithError(offerErr).Error("Erro ao desativar ofertas vencidas")
	}
	result.OffersDeactivated = offers

	events, eventErr := s.eventRepo.DeactivateExpired(startTime)
	if eventErr != nil {
		logrus.WithError(eventErr).Error("Erro ao desativar eventos encerrados")
	}
	result.EventsDeactivated = events

	logrus.WithFields(logrus.Fields{
		"offers_deactivated": result.OffersDeactivated,
		"events_deactivated": result.EventsDeactivated,
		"reference":          startTime.Format(time.RFC3339),
	}).Info("Rotina de expiração concluída")

	if offerErr != nil {
		return result, offerErr
	}
	return result, eventErr
}

// TriggerManualSync inicia manualmente a rotina de expiração
func (s *ExpirationSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rotina de expiração já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual da rotina de expiração")
	go s.sweep(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ExpirationSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
