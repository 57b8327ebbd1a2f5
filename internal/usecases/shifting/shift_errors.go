package shifting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de turnos
var (
	// Erros de validação
	ErrEmployeeIDRequired = errors.New("funcionário é obrigatório")
	ErrInvalidDate        = errors.New("data inválida")
	ErrInvalidTime        = errors.New("horário inválido")
	ErrEmptyShift         = errors.New("turno sem duração")
	ErrEmptySelection     = errors.New("nenhum horário selecionado")

	// Erros de regra de negócio
	ErrShiftNotFound    = errors.New("turno não encontrado")
	ErrEmployeeNotFound = errors.New("funcionário não encontrado")
	ErrWeekLocked       = errors.New("semana bloqueada para edição")
	ErrShiftOverlap     = errors.New("turno sobrepõe outro turno do funcionário")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// ShiftError é um erro com contexto adicional para turnos
type ShiftError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ShiftID string // ID do turno envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ShiftError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ShiftError) Unwrap() error {
	return e.Err
}

// ErrorCode retorna o código de API do erro
func (e *ShiftError) ErrorCode() string {
	return e.Code
}

// NewShiftError cria um novo ShiftError
func NewShiftError(err error, code string, details string) *ShiftError {
	return &ShiftError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewShiftErrorWithID cria um novo ShiftError com o ID do turno
func NewShiftErrorWithID(err error, code string, shiftID string, details string) *ShiftError {
	return &ShiftError{
		Err:     err,
		Code:    code,
		ShiftID: shiftID,
		Details: details,
	}
}
