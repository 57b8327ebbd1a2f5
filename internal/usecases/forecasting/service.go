// Package forecasting guarda a venda estimada de cada dia e calcula o custo
// de mão de obra a partir das horas escaladas.
package forecasting

import (
	"context"

	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Forecaster interface {
	UpsertDailySales(ctx context.Context, companyID string, req *domain.DailySalesRequest) (*domain.DailySales, error)
	WeeklySales(ctx context.Context, companyID, weekStartDate string) ([]*domain.DailySales, error)
}

type Service struct {
	salesRepo repository.DailySalesRepository
	shiftRepo repository.ShiftRepository
}

func NewService(salesRepo repository.DailySalesRepository, shiftRepo repository.ShiftRepository) Forecaster {
	return &Service{
		salesRepo: salesRepo,
		shiftRepo: shiftRepo,
	}
}

func (s *Service) UpsertDailySales(ctx context.Context, companyID string, req *domain.DailySalesRequest) (*domain.DailySales, error) {
	if companyID == "" {
		return nil, NewForecastError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, req.Date, "")
	}
	day, err := grid.ParseDate(req.Date)
	if err != nil {
		return nil, NewForecastError(ErrInvalidDate, apiErrors.ErrInvalidFormat, req.Date, "")
	}
	if req.EstimatedSales.IsNegative() || req.HourlyEmployeeCost.IsNegative() {
		return nil, NewForecastError(ErrNegativeAmount, apiErrors.ErrInvalidRequest, req.Date, "")
	}

	date := day.Format(grid.DateLayout)
	sales := &domain.DailySales{
		CompanyID:          companyID,
		Date:               date,
		EstimatedSales:     req.EstimatedSales,
		HourlyEmployeeCost: req.HourlyEmployeeCost,
	}

	if err := s.salesRepo.Upsert(ctx, sales); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar venda diária")
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, date, "Falha ao salvar venda diária")
	}

	hours, err := s.scheduledHours(ctx, companyID, date, date)
	if err != nil {
		return nil, err
	}
	sales.ApplyScheduledHours(hours[date])

	return sales, nil
}

// WeeklySales lista as vendas da semana com o percentual de mão de obra
// calculado sobre os turnos cadastrados em cada dia.
func (s *Service) WeeklySales(ctx context.Context, companyID, weekStartDate string) ([]*domain.DailySales, error) {
	if companyID == "" {
		return nil, NewForecastError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, weekStartDate, "")
	}
	day, err := grid.ParseDate(weekStartDate)
	if err != nil {
		return nil, NewForecastError(ErrInvalidDate, apiErrors.ErrInvalidFormat, weekStartDate, "")
	}

	monday := grid.WeekStart(day)
	start := monday.Format(grid.DateLayout)
	end := monday.AddDate(0, 0, 6).Format(grid.DateLayout)

	sales, err := s.salesRepo.ListByRange(ctx, companyID, start, end)
	if err != nil {
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, start, "Falha ao listar vendas diárias")
	}

	hours, err := s.scheduledHours(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	for _, daily := range sales {
		daily.ApplyScheduledHours(hours[daily.Date])
	}

	return sales, nil
}

// scheduledHours soma as horas escaladas por data. Turnos que atravessam a
// meia-noite contam inteiros no dia em que começam.
func (s *Service) scheduledHours(ctx context.Context, companyID, start, end string) (map[string]float64, error) {
	shifts, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, NewForecastError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, start, "Falha ao listar turnos")
	}

	hours := make(map[string]float64)
	for _, shift := range shifts {
		hours[shift.Date] += shift.Hours()
	}
	return hours, nil
}
