// Package staffing cuida do cadastro de empresas e funcionários e do resumo
// de horas semanais de cada funcionário.
package staffing

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type StaffService interface {
	CreateCompany(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)

	CreateEmployee(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string, onlyActive bool) ([]*domain.Employee, error)
	WeeklySummaries(ctx context.Context, companyID, weekStartDate string) ([]domain.EmployeeWeeklySummary, error)
}

type Service struct {
	companyRepo  repository.CompanyRepository
	employeeRepo repository.EmployeeRepository
	shiftRepo    repository.ShiftRepository
	generateID   func() (string, error)
}

func NewService(
	companyRepo repository.CompanyRepository,
	employeeRepo repository.EmployeeRepository,
	shiftRepo repository.ShiftRepository,
) StaffService {
	return &Service{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		generateID:   utils.GenerateID,
	}
}

func (s *Service) CreateCompany(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewStaffError(ErrCompanyNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewStaffError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para empresa")
	}

	company := &domain.Company{ID: id, Name: name}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, postgres.ErrAlreadyExists) {
			return nil, NewStaffErrorWithID(err, apiErrors.ErrAlreadyExists, id, "Empresa já cadastrada")
		}
		logrus.WithError(err).Error("Erro ao criar empresa")
		return nil, NewStaffError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar empresa")
	}

	return company, nil
}

func (s *Service) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewStaffErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar empresa")
	}
	if company == nil {
		return nil, NewStaffErrorWithID(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, id, "")
	}
	return company, nil
}

func (s *Service) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, NewStaffError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas")
	}
	return companies, nil
}

func (s *Service) CreateEmployee(ctx context.Context, req *domain.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.CompanyID == "" {
		return nil, NewStaffError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewStaffError(ErrEmployeeNameRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if req.MaxHoursPerWeek < 0 {
		return nil, NewStaffError(ErrInvalidMaxHours, apiErrors.ErrInvalidRequest, "")
	}

	if _, err := s.GetCompany(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewStaffError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para funcionário")
	}

	employee := &domain.Employee{
		ID:              id,
		CompanyID:       req.CompanyID,
		Name:            name,
		Role:            strings.TrimSpace(req.Role),
		MaxHoursPerWeek: req.MaxHoursPerWeek,
		Active:          true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		logrus.WithError(err).WithField("company_id", req.CompanyID).Error("Erro ao criar funcionário")
		return nil, NewStaffError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar funcionário")
	}

	return employee, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, req *domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.GetEmployee(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewStaffError(ErrEmployeeNameRequired, apiErrors.ErrMissingRequiredData, "")
		}
		employee.Name = name
	}
	if req.Role != nil {
		employee.Role = strings.TrimSpace(*req.Role)
	}
	if req.MaxHoursPerWeek != nil {
		if *req.MaxHoursPerWeek < 0 {
			return nil, NewStaffError(ErrInvalidMaxHours, apiErrors.ErrInvalidRequest, "")
		}
		employee.MaxHoursPerWeek = *req.MaxHoursPerWeek
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, translateEmployeeError(err, employee.ID, "Falha ao atualizar funcionário")
	}

	return employee, nil
}

// DeleteEmployee remove o funcionário e, por cascata no banco, os seus turnos.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return translateEmployeeError(err, id, "Falha ao remover funcionário")
	}
	return nil
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewStaffErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar funcionário")
	}
	if employee == nil {
		return nil, NewStaffErrorWithID(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, id, "")
	}
	return employee, nil
}

func (s *Service) ListEmployees(ctx context.Context, companyID string, onlyActive bool) ([]*domain.Employee, error) {
	if companyID == "" {
		return nil, NewStaffError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, onlyActive)
	if err != nil {
		return nil, NewStaffError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar funcionários")
	}
	return employees, nil
}

// WeeklySummaries soma as horas escaladas de cada funcionário na semana que
// contém weekStartDate. A data informada é ajustada para a segunda-feira.
func (s *Service) WeeklySummaries(ctx context.Context, companyID, weekStartDate string) ([]domain.EmployeeWeeklySummary, error) {
	day, err := grid.ParseDate(weekStartDate)
	if err != nil {
		return nil, NewStaffError(ErrInvalidWeekStart, apiErrors.ErrInvalidFormat, weekStartDate)
	}
	monday := grid.WeekStart(day)
	start := monday.Format(grid.DateLayout)
	end := monday.AddDate(0, 0, 6).Format(grid.DateLayout)

	employees, err := s.ListEmployees(ctx, companyID, false)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, NewStaffError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar turnos da semana")
	}

	hours := make(map[string]float64, len(employees))
	for _, shift := range shifts {
		hours[shift.EmployeeID] += shift.Hours()
	}

	summaries := make([]domain.EmployeeWeeklySummary, 0, len(employees))
	for _, employee := range employees {
		summaries = append(summaries, domain.NewEmployeeWeeklySummary(*employee, start, hours[employee.ID]))
	}

	return summaries, nil
}

func translateEmployeeError(err error, id, details string) error {
	if errors.Is(err, postgres.ErrNotFound) {
		return NewStaffErrorWithID(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, id, "")
	}
	logrus.WithError(err).WithField("employee_id", id).Error(details)
	return NewStaffErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, details)
}
