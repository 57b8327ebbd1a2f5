package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrPasswordExpired       = "AUTH_005" // Senha expirada
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de escala (3000-3999)
	ErrShiftNotFound       = "SCH_001" // Turno não encontrado
	ErrEmployeeNotFound    = "SCH_002" // Funcionário não encontrado
	ErrWeekLocked          = "SCH_003" // Semana bloqueada para edição
	ErrShiftOverlap        = "SCH_004" // Turno sobrepõe outro do mesmo funcionário
	ErrInvalidShift        = "SCH_005" // Turno inválido (horário ou duração)
	ErrCompanyNotFound     = "SCH_006" // Empresa não encontrada
	ErrWeekNotLocked       = "SCH_007" // Semana não está bloqueada
	ErrAlreadyExists       = "SCH_008" // Registro já existe
	ErrCompanyAccessDenied = "SCH_009" // Usuário sem acesso à empresa
	ErrBulkCreateFailed    = "SCH_010" // Nenhum turno do lote foi criado

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrShiftNotFound:         http.StatusNotFound,
	ErrEmployeeNotFound:      http.StatusNotFound,
	ErrWeekLocked:            http.StatusLocked,
	ErrShiftOverlap:          http.StatusConflict,
	ErrInvalidShift:          http.StatusBadRequest,
	ErrCompanyNotFound:       http.StatusNotFound,
	ErrWeekNotLocked:         http.StatusNotFound,
	ErrAlreadyExists:         http.StatusConflict,
	ErrCompanyAccessDenied:   http.StatusForbidden,
	ErrBulkCreateFailed:      http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e APIError) ErrorCode() string { return e.Code }

// CodedError é implementado pelos erros dos casos de uso que carregam um
// código de API.
type CodedError interface {
	error
	ErrorCode() string
}

// StatusFor retorna o status HTTP do código.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError escreve a resposta a partir de um erro de caso de uso.
// Erros sem código viram fallbackCode.
func WriteFromError(w http.ResponseWriter, err error, fallbackCode string, fallbackMessage string) {
	var coded CodedError
	if errors.As(err, &coded) {
		WriteError(w, coded.ErrorCode(), coded.Error(), nil)
		return
	}

	WriteError(w, fallbackCode, fallbackMessage, nil)
}
