// Package exporting gera a planilha da escala semanal de uma empresa.
package exporting

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	ErrCompanyIDRequired = errors.New("empresa é obrigatória")
	ErrInvalidWeekStart  = errors.New("início de semana inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrBuildSpreadsheet  = errors.New("erro ao gerar planilha")
)

var weekdayNames = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// ExportError carrega o código de API do erro de exportação
type ExportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExportError) Unwrap() error     { return e.Err }
func (e *ExportError) ErrorCode() string { return e.Code }

// Export é o arquivo gerado pronto para download.
type Export struct {
	FileName string
	Content  []byte
}

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Exporter interface {
	WeeklySchedule(ctx context.Context, companyID, weekStartDate string) (*Export, error)
}

type Service struct {
	employeeRepo repository.EmployeeRepository
	shiftRepo    repository.ShiftRepository
}

func NewService(employeeRepo repository.EmployeeRepository, shiftRepo repository.ShiftRepository) Exporter {
	return &Service{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

// WeeklySchedule monta uma linha por funcionário ativo e uma coluna por dia
// da semana, com o total de horas do funcionário na última coluna e o total
// de cada dia na última linha.
func (s *Service) WeeklySchedule(ctx context.Context, companyID, weekStartDate string) (*Export, error) {
	if companyID == "" {
		return nil, &ExportError{Err: ErrCompanyIDRequired, Code: apiErrors.ErrMissingRequiredData}
	}
	day, err := grid.ParseDate(weekStartDate)
	if err != nil {
		return nil, &ExportError{Err: ErrInvalidWeekStart, Code: apiErrors.ErrInvalidFormat, Details: weekStartDate}
	}
	monday := grid.WeekStart(day)
	dates := grid.WeekDates(monday)

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, true)
	if err != nil {
		return nil, &ExportError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "Falha ao listar funcionários"}
	}

	shifts, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		CompanyID: companyID,
		StartDate: dates[0].Format(grid.DateLayout),
		EndDate:   dates[len(dates)-1].Format(grid.DateLayout),
	})
	if err != nil {
		return nil, &ExportError{Err: ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "Falha ao listar turnos"}
	}

	content, err := buildWorkbook(monday.Format(grid.DateLayout), dates, employees, groupShifts(shifts))
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("Erro ao gerar planilha da escala")
		return nil, &ExportError{Err: ErrBuildSpreadsheet, Code: apiErrors.ErrInternalServer, Details: err.Error()}
	}

	return &Export{
		FileName: fmt.Sprintf("escala-%s.xlsx", monday.Format(grid.DateLayout)),
		Content:  content,
	}, nil
}

// groupShifts indexa os turnos por funcionário e data, ordenados pelo início.
func groupShifts(shifts []*domain.Shift) map[string]map[string][]*domain.Shift {
	grouped := make(map[string]map[string][]*domain.Shift)
	for _, shift := range shifts {
		byDate, ok := grouped[shift.EmployeeID]
		if !ok {
			byDate = make(map[string][]*domain.Shift)
			grouped[shift.EmployeeID] = byDate
		}
		byDate[shift.Date] = append(byDate[shift.Date], shift)
	}

	for _, byDate := range grouped {
		for _, list := range byDate {
			sort.Slice(list, func(i, j int) bool { return list[i].StartTime < list[j].StartTime })
		}
	}
	return grouped
}
