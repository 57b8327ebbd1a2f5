// Package locking bloqueia e desbloqueia semanas de escala de uma empresa.
package locking

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type WeekLocker interface {
	Lock(ctx context.Context, companyID, weekStartDate string, lockedBy *int) (*domain.LockedWeek, error)
	Unlock(ctx context.Context, companyID, weekStartDate string) error
	Check(ctx context.Context, companyID, weekStartDate string) (*domain.WeekLockStatus, error)
	List(ctx context.Context, companyID string) ([]*domain.LockedWeek, error)
}

type Service struct {
	lockRepo repository.LockedWeekRepository
}

func NewService(lockRepo repository.LockedWeekRepository) WeekLocker {
	return &Service{lockRepo: lockRepo}
}

// Lock é idempotente. Qualquer dia da semana é aceito e convertido para a
// segunda-feira correspondente.
func (s *Service) Lock(ctx context.Context, companyID, weekStartDate string, lockedBy *int) (*domain.LockedWeek, error) {
	monday, err := normalizeWeek(companyID, weekStartDate)
	if err != nil {
		return nil, err
	}

	week := &domain.LockedWeek{
		CompanyID:     companyID,
		WeekStartDate: monday,
		LockedBy:      lockedBy,
	}
	if err := s.lockRepo.Lock(ctx, week); err != nil {
		return nil, NewLockError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, monday, "Falha ao bloquear semana")
	}

	log.ForContext(ctx).WithField("company_id", companyID).Infof("Semana %s bloqueada", monday)
	return week, nil
}

func (s *Service) Unlock(ctx context.Context, companyID, weekStartDate string) error {
	monday, err := normalizeWeek(companyID, weekStartDate)
	if err != nil {
		return err
	}

	if err := s.lockRepo.Unlock(ctx, companyID, monday); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return NewLockError(ErrWeekNotLocked, apiErrors.ErrWeekNotLocked, monday, "")
		}
		return NewLockError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, monday, "Falha ao desbloquear semana")
	}

	log.ForContext(ctx).WithField("company_id", companyID).Infof("Semana %s desbloqueada", monday)
	return nil
}

func (s *Service) Check(ctx context.Context, companyID, weekStartDate string) (*domain.WeekLockStatus, error) {
	monday, err := normalizeWeek(companyID, weekStartDate)
	if err != nil {
		return nil, err
	}

	locked, err := s.lockRepo.IsLocked(ctx, companyID, monday)
	if err != nil {
		return nil, NewLockError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, monday, "Falha ao consultar bloqueio")
	}

	return &domain.WeekLockStatus{
		CompanyID:     companyID,
		WeekStartDate: monday,
		IsLocked:      locked,
	}, nil
}

func (s *Service) List(ctx context.Context, companyID string) ([]*domain.LockedWeek, error) {
	if companyID == "" {
		return nil, NewLockError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	weeks, err := s.lockRepo.List(ctx, companyID)
	if err != nil {
		return nil, NewLockError(errors.Wrap(ErrDatabaseOperation, err.Error()), apiErrors.ErrDatabaseOperation, "", "Falha ao listar semanas bloqueadas")
	}
	return weeks, nil
}

func normalizeWeek(companyID, weekStartDate string) (string, error) {
	if companyID == "" {
		return "", NewLockError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, weekStartDate, "")
	}

	day, err := grid.ParseDate(weekStartDate)
	if err != nil {
		return "", NewLockError(ErrInvalidWeekStart, apiErrors.ErrInvalidFormat, weekStartDate, "")
	}

	return grid.WeekStart(day).Format(grid.DateLayout), nil
}
