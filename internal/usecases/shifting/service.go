// Package shifting contém as regras de criação, edição e remoção de turnos,
// incluindo a criação em lote a partir de uma seleção da grade.
package shifting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Shifter interface {
	ShiftCreator
	GetShift(ctx context.Context, id string) (*domain.Shift, error)
	ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
	UpdateShift(ctx context.Context, req *domain.UpdateShiftRequest) (*domain.Shift, error)
	DeleteShift(ctx context.Context, id string) error
	CreateFromSelection(ctx context.Context, req *domain.BulkShiftRequest) (*domain.BulkResult, error)
	GridSlots(startHour, endHour *int) grid.Slots
}

type Service struct {
	shiftRepo    repository.ShiftRepository
	employeeRepo repository.EmployeeRepository
	lockRepo     repository.LockedWeekRepository
	cfg          *config.Config
	generateID   func() (string, error)
}

func NewService(
	shiftRepo repository.ShiftRepository,
	employeeRepo repository.EmployeeRepository,
	lockRepo repository.LockedWeekRepository,
	cfg *config.Config,
) Shifter {
	return &Service{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		lockRepo:     lockRepo,
		cfg:          cfg,
		generateID:   utils.GenerateID,
	}
}

func (s *Service) GetShift(ctx context.Context, id string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewShiftErrorWithID(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, id, "Falha ao buscar turno")
	}
	if shift == nil {
		return nil, NewShiftErrorWithID(ErrShiftNotFound, apiErrors.ErrShiftNotFound, id, "")
	}
	return shift, nil
}

func (s *Service) ListShifts(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	shifts, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return nil, NewShiftError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, "Falha ao listar turnos")
	}
	return shifts, nil
}

// CreateShift valida e grava um turno. Horários "24:00" são normalizados
// para "00:00" antes de gravar.
func (s *Service) CreateShift(ctx context.Context, req *domain.ShiftRequest) (*domain.Shift, error) {
	shift := &domain.Shift{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	}

	if err := normalizeShift(shift); err != nil {
		return nil, err
	}

	employee, err := s.getEmployee(ctx, shift.EmployeeID)
	if err != nil {
		return nil, err
	}
	shift.CompanyID = employee.CompanyID

	if err := s.ensureWeekUnlocked(ctx, shift.CompanyID, shift.Date); err != nil {
		return nil, err
	}

	if err := s.ensureNoOverlap(ctx, shift); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewShiftError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	shift.ID = id

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, translateRepoError(err, shift.ID, "Falha ao criar turno")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"shift_id":    shift.ID,
		"employee_id": shift.EmployeeID,
		"date":        shift.Date,
	}).Debugf("Turno criado %s-%s", shift.StartTime, shift.EndTime)

	return shift, nil
}

func (s *Service) UpdateShift(ctx context.Context, req *domain.UpdateShiftRequest) (*domain.Shift, error) {
	shift, err := s.GetShift(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureWeekUnlocked(ctx, shift.CompanyID, shift.Date); err != nil {
		return nil, err
	}

	if req.Date != nil {
		shift.Date = *req.Date
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if err := normalizeShift(shift); err != nil {
		return nil, err
	}

	if req.Date != nil {
		if err := s.ensureWeekUnlocked(ctx, shift.CompanyID, shift.Date); err != nil {
			return nil, err
		}
	}

	if err := s.ensureNoOverlap(ctx, shift); err != nil {
		return nil, err
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, translateRepoError(err, shift.ID, "Falha ao atualizar turno")
	}

	return shift, nil
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	shift, err := s.GetShift(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ensureWeekUnlocked(ctx, shift.CompanyID, shift.Date); err != nil {
		return err
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, id, "Falha ao remover turno")
	}

	return nil
}

// CreateFromSelection consolida os rótulos selecionados em turnos contíguos
// e cria cada um deles. Falhas individuais não desfazem os turnos criados.
func (s *Service) CreateFromSelection(ctx context.Context, req *domain.BulkShiftRequest) (*domain.BulkResult, error) {
	if req.EmployeeID == "" {
		return nil, NewShiftError(ErrEmployeeIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if _, err := grid.ParseDate(req.Date); err != nil {
		return nil, NewShiftError(ErrInvalidDate, apiErrors.ErrInvalidFormat, req.Date)
	}

	slots := s.GridSlots(req.StartHour, req.EndHour)
	ranges := grid.Consolidate(slots, req.Labels)
	if len(ranges) == 0 {
		return nil, NewShiftError(ErrEmptySelection, apiErrors.ErrInvalidShift, "")
	}

	result := PersistRanges(ctx, s, req.EmployeeID, req.Date, ranges, s.cfg.Shifts.BulkCreateMaxConcurrency)

	log.ForContext(ctx).WithFields(log.Fields{
		"employee_id": req.EmployeeID,
		"date":        req.Date,
	}).Infof("Criação em lote concluída: %d criados, %d erros, %d total", result.Added, result.Errors, result.Total)

	return result, nil
}

// GridSlots monta a grade com as horas informadas ou as horas padrão da
// configuração.
func (s *Service) GridSlots(startHour, endHour *int) grid.Slots {
	start, end := s.cfg.Grid.StartHour, s.cfg.Grid.EndHour
	if startHour != nil {
		start = *startHour
	}
	if endHour != nil {
		end = *endHour
	}
	return grid.NewSlots(start, end)
}

func normalizeShift(shift *domain.Shift) error {
	if shift.EmployeeID == "" {
		return NewShiftError(ErrEmployeeIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if _, err := grid.ParseDate(shift.Date); err != nil {
		return NewShiftError(ErrInvalidDate, apiErrors.ErrInvalidFormat, shift.Date)
	}

	start, err := grid.NormalizeTime(shift.StartTime)
	if err != nil {
		return NewShiftError(ErrInvalidTime, apiErrors.ErrInvalidShift, err.Error())
	}
	end, err := grid.NormalizeTime(shift.EndTime)
	if err != nil {
		return NewShiftError(ErrInvalidTime, apiErrors.ErrInvalidShift, err.Error())
	}
	if start == end {
		return NewShiftError(ErrEmptyShift, apiErrors.ErrInvalidShift, start)
	}

	shift.StartTime = start
	shift.EndTime = end
	return nil
}

func (s *Service) getEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, NewShiftError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, "Falha ao buscar funcionário")
	}
	if employee == nil {
		return nil, NewShiftError(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, employeeID)
	}
	return employee, nil
}

func (s *Service) ensureWeekUnlocked(ctx context.Context, companyID, date string) error {
	day, err := grid.ParseDate(date)
	if err != nil {
		return NewShiftError(ErrInvalidDate, apiErrors.ErrInvalidFormat, date)
	}

	weekStart := grid.WeekStart(day).Format(grid.DateLayout)
	locked, err := s.lockRepo.IsLocked(ctx, companyID, weekStart)
	if err != nil {
		return NewShiftError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, "Falha ao consultar bloqueio da semana")
	}
	if locked {
		return NewShiftError(ErrWeekLocked, apiErrors.ErrWeekLocked, weekStart)
	}
	return nil
}

// ensureNoOverlap compara o turno com os turnos do funcionário do dia
// anterior ao dia seguinte, cobrindo turnos que atravessam a meia-noite.
func (s *Service) ensureNoOverlap(ctx context.Context, shift *domain.Shift) error {
	day, err := grid.ParseDate(shift.Date)
	if err != nil {
		return NewShiftError(ErrInvalidDate, apiErrors.ErrInvalidFormat, shift.Date)
	}

	existing, err := s.shiftRepo.List(ctx, domain.ShiftFilter{
		EmployeeID: shift.EmployeeID,
		StartDate:  day.AddDate(0, 0, -1).Format(grid.DateLayout),
		EndDate:    day.AddDate(0, 0, 1).Format(grid.DateLayout),
	})
	if err != nil {
		return NewShiftError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, "Falha ao listar turnos do funcionário")
	}

	for _, other := range existing {
		if other.ID == shift.ID {
			continue
		}
		if shift.Overlaps(other) {
			return NewShiftErrorWithID(ErrShiftOverlap, apiErrors.ErrShiftOverlap, other.ID, other.StartTime+"-"+other.EndTime)
		}
	}
	return nil
}

func translateRepoError(err error, shiftID, details string) error {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		return NewShiftErrorWithID(ErrShiftNotFound, apiErrors.ErrShiftNotFound, shiftID, "")
	case errors.Is(err, postgres.ErrForeignKey):
		return NewShiftErrorWithID(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, shiftID, "")
	case errors.Is(err, postgres.ErrAlreadyExists):
		return NewShiftErrorWithID(ErrShiftOverlap, apiErrors.ErrShiftOverlap, shiftID, "")
	}
	return NewShiftErrorWithID(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, shiftID, details)
}
