// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
)

type WeekLockConfig struct {
	CronSchedule string
	SyncEnabled  bool
	AfterDays    int
}

// WeekLockService bloqueia automaticamente as semanas encerradas há mais de
// AfterDays dias, para todas as empresas.
type WeekLockService struct {
	scheduler           *gocron.Scheduler
	companyRepo         repository.CompanyRepository
	lockRepo            repository.LockedWeekRepository
	config              WeekLockConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastLockedWeek      string
	lastLockedCount     int
}

func NewWeekLockService(
	companyRepo repository.CompanyRepository,
	lockRepo repository.LockedWeekRepository,
	cfg *config.Config,
) *WeekLockService {
	lockConfig := WeekLockConfig{
		CronSchedule: cfg.WeekLock.CronSchedule, // Default: segundas às 2h
		SyncEnabled:  cfg.WeekLock.Enabled,      // Default: desabilitado
		AfterDays:    cfg.WeekLock.AfterDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": lockConfig.CronSchedule,
		"after_days":    lockConfig.AfterDays,
	}).Info("Configuração do bloqueio automático de semanas carregada")

	return &WeekLockService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		lockRepo:    lockRepo,
		config:      lockConfig,
		now:         time.Now,
	}
}

func (s *WeekLockService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de bloqueio de semanas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de bloqueio de semanas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.LockExpiredWeeks(ctx); err != nil {
			logrus.WithError(err).Error("Erro no bloqueio automático de semanas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar bloqueio de semanas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de bloqueio de semanas")
		s.scheduler.Stop()
	}()

	return nil
}

// ExpiredWeekStart retorna a segunda-feira da última semana totalmente
// anterior a now - afterDays.
func ExpiredWeekStart(now time.Time, afterDays int) time.Time {
	if afterDays < 0 {
		afterDays = 0
	}
	cutoff := now.AddDate(0, 0, -afterDays)
	return grid.WeekStart(cutoff).AddDate(0, 0, -7)
}

// LockExpiredWeeks bloqueia a semana expirada de cada empresa e retorna
// quantas empresas foram processadas. Semanas já bloqueadas não mudam.
func (s *WeekLockService) LockExpiredWeeks(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Bloqueio de semanas já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	locked := 0
	weekStart := ExpiredWeekStart(s.now(), s.config.AfterDays).Format(grid.DateLayout)
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastLockedWeek = weekStart
		s.lastLockedCount = locked
		s.syncMutex.Unlock()
	}()

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas para bloqueio de semanas")
		return 0, err
	}

	for _, company := range companies {
		week := &domain.LockedWeek{
			CompanyID:     company.ID,
			WeekStartDate: weekStart,
		}
		if err := s.lockRepo.Lock(ctx, week); err != nil {
			logrus.WithError(err).WithField("company_id", company.ID).Errorf("Erro ao bloquear semana %s", weekStart)
			continue
		}
		locked++
	}

	logrus.Infof("Bloqueio automático concluído: semana %s, %d de %d empresas", weekStart, locked, len(companies))
	return locked, nil
}

// TriggerManualSync inicia manualmente o bloqueio de semanas
func (s *WeekLockService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Bloqueio de semanas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando bloqueio manual de semanas")
	go func() {
		if _, err := s.LockExpiredWeeks(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no bloqueio manual de semanas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *WeekLockService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"after_days":             s.config.AfterDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_locked_week":       s.lastLockedWeek,
		"last_locked_count":      s.lastLockedCount,
	}
}
