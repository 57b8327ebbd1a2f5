package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
)

type SalesImportConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SalesImportService preenche as vendas estimadas da próxima semana com as
// vendas do PDV da semana corrente, dia a dia. Dias já preenchidos não mudam.
type SalesImportService struct {
	scheduler           *gocron.Scheduler
	companyRepo         repository.CompanyRepository
	salesRepo           repository.DailySalesRepository
	posService          pos.SalesIntegrator
	config              SalesImportConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastTargetWeek      string
	lastImportedDays    int
}

func NewSalesImportService(
	companyRepo repository.CompanyRepository,
	salesRepo repository.DailySalesRepository,
	posService pos.SalesIntegrator,
	cfg *config.Config,
) *SalesImportService {
	importConfig := SalesImportConfig{
		CronSchedule: cfg.SalesImport.CronSchedule,
		SyncEnabled:  cfg.SalesImport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": importConfig.CronSchedule,
		"sync_enabled":  importConfig.SyncEnabled,
	}).Info("Configuração da importação de vendas do PDV carregada")

	return &SalesImportService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		salesRepo:   salesRepo,
		posService:  posService,
		config:      importConfig,
		now:         time.Now,
	}
}

func (s *SalesImportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Importação de vendas do PDV desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de importação de vendas do PDV")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.ImportNextWeek(ctx); err != nil {
			logrus.WithError(err).Error("Erro na importação de vendas do PDV")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de importação de vendas do PDV")
		s.scheduler.Stop()
	}()

	return nil
}

// ImportNextWeek importa a semana seguinte à atual para todas as empresas e
// retorna quantos dias foram preenchidos.
func (s *SalesImportService) ImportNextWeek(ctx context.Context) (int, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Importação de vendas já está em execução")
		return 0, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	imported := 0
	target := grid.WeekStart(s.now()).AddDate(0, 0, 7)
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastTargetWeek = target.Format(grid.DateLayout)
		s.lastImportedDays = imported
		s.syncMutex.Unlock()
	}()

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas para importação de vendas")
		return 0, err
	}

	for _, company := range companies {
		days, err := s.ImportWeek(ctx, company.ID, target)
		if err != nil {
			logrus.WithError(err).WithField("company_id", company.ID).Error("Erro ao importar vendas do PDV")
			continue
		}
		imported += days
	}

	logrus.Infof("Importação de vendas concluída: semana %s, %d dias em %d empresas", target.Format(grid.DateLayout), imported, len(companies))
	return imported, nil
}

// ImportWeek usa as vendas do PDV da semana anterior a weekStart como
// estimativa de cada dia da semana. O custo por hora vem do mesmo dia da
// semana de referência, quando cadastrado.
func (s *SalesImportService) ImportWeek(ctx context.Context, companyID string, weekStart time.Time) (int, error) {
	weekStart = grid.WeekStart(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)
	reference := weekStart.AddDate(0, 0, -7)
	referenceEnd := reference.AddDate(0, 0, 6)

	totals, err := s.posService.DailyNetSales(ctx, companyID, reference, referenceEnd)
	if err != nil {
		return 0, fmt.Errorf("erro ao consultar vendas do PDV: %w", err)
	}

	current, err := s.salesRepo.ListByRange(ctx, companyID, weekStart.Format(grid.DateLayout), weekEnd.Format(grid.DateLayout))
	if err != nil {
		return 0, err
	}
	filled := make(map[string]bool, len(current))
	for _, sales := range current {
		filled[sales.Date] = true
	}

	previous, err := s.salesRepo.ListByRange(ctx, companyID, reference.Format(grid.DateLayout), referenceEnd.Format(grid.DateLayout))
	if err != nil {
		return 0, err
	}
	hourlyCost := make(map[string]*domain.DailySales, len(previous))
	for _, sales := range previous {
		hourlyCost[sales.Date] = sales
	}

	imported := 0
	for _, total := range totals {
		day, err := grid.ParseDate(total.Date)
		if err != nil {
			logrus.WithField("company_id", companyID).Warnf("Data inválida retornada pelo PDV: %s", total.Date)
			continue
		}

		date := day.AddDate(0, 0, 7).Format(grid.DateLayout)
		if filled[date] {
			continue
		}

		sales := &domain.DailySales{
			CompanyID:      companyID,
			Date:           date,
			EstimatedSales: total.Amount.Round(2),
		}
		if ref, ok := hourlyCost[total.Date]; ok {
			sales.HourlyEmployeeCost = ref.HourlyEmployeeCost
		}

		if err := s.salesRepo.Upsert(ctx, sales); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

// TriggerManualSync inicia manualmente a importação de vendas
func (s *SalesImportService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando importação manual de vendas do PDV")
	go func() {
		if _, err := s.ImportNextWeek(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na importação manual de vendas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SalesImportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_target_week":       s.lastTargetWeek,
		"last_imported_days":     s.lastImportedDays,
	}
}
