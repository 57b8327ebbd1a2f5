package staffing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de empresas e funcionários
var (
	// Erros de validação
	ErrCompanyNameRequired  = errors.New("nome da empresa é obrigatório")
	ErrCompanyIDRequired    = errors.New("empresa é obrigatória")
	ErrEmployeeNameRequired = errors.New("nome do funcionário é obrigatório")
	ErrInvalidMaxHours      = errors.New("limite de horas semanais inválido")
	ErrInvalidWeekStart     = errors.New("início de semana inválido")

	// Erros de regra de negócio
	ErrCompanyNotFound  = errors.New("empresa não encontrada")
	ErrEmployeeNotFound = errors.New("funcionário não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// StaffError é um erro com contexto adicional para empresas e funcionários
type StaffError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID da empresa ou funcionário (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *StaffError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StaffError) Unwrap() error {
	return e.Err
}

func (e *StaffError) ErrorCode() string {
	return e.Code
}

func NewStaffError(err error, code string, details string) *StaffError {
	return &StaffError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewStaffErrorWithID(err error, code string, entityID string, details string) *StaffError {
	return &StaffError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
