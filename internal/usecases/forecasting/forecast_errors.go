package forecasting

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyIDRequired = errors.New("empresa é obrigatória")
	ErrInvalidDate       = errors.New("data inválida")
	ErrNegativeAmount    = errors.New("valores não podem ser negativos")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ForecastError é um erro com contexto adicional para vendas diárias
type ForecastError struct {
	Err     error
	Code    string
	Date    string
	Details string
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func (e *ForecastError) ErrorCode() string {
	return e.Code
}

func NewForecastError(err error, code string, date string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Date:    date,
		Details: details,
	}
}
