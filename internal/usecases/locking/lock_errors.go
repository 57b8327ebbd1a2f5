package locking

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyIDRequired = errors.New("empresa é obrigatória")
	ErrInvalidWeekStart  = errors.New("início de semana inválido")
	ErrWeekNotLocked     = errors.New("semana não está bloqueada")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// LockError é um erro com contexto adicional para bloqueio de semanas
type LockError struct {
	Err           error
	Code          string
	WeekStartDate string
	Details       string
}

func (e *LockError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LockError) Unwrap() error {
	return e.Err
}

func (e *LockError) ErrorCode() string {
	return e.Code
}

func NewLockError(err error, code string, weekStartDate string, details string) *LockError {
	return &LockError{
		Err:           err,
		Code:          code,
		WeekStartDate: weekStartDate,
		Details:       details,
	}
}
