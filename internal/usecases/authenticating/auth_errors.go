package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Login e token
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrNoAdminPrivileges  = errors.New("apenas administradores podem realizar esta ação")

	// Cadastro
	ErrUserAlreadyExists   = errors.New("usuário já existe")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrCompanyNotFound     = errors.New("empresa não encontrada")

	// Senha
	ErrWeakPassword    = errors.New("senha fraca")
	ErrSamePassword    = errors.New("nova senha deve ser diferente da atual")
	ErrCurrentPassword = errors.New("senha atual incorreta")
)

// AuthError carrega o código de API e, quando houver, o usuário envolvido.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) ErrorCode() string { return e.Code }

// IsCredentialsError indica falha de login que não deve revelar se o email
// existe.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserNotFound)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
