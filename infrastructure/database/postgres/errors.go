package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	ErrNotFound      = errors.New("registro não encontrado")
	ErrAlreadyExists = errors.New("registro já existe")
	ErrForeignKey    = errors.New("registro relacionado não existe")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// TranslateError converte erros do driver nos erros do pacote, preservando a
// mensagem original como contexto.
func TranslateError(err error, message string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return errors.Wrap(ErrAlreadyExists, pqErr.Message)
		case foreignKeyViolation:
			return errors.Wrap(ErrForeignKey, pqErr.Message)
		}
	}

	return errors.Wrap(err, message)
}
