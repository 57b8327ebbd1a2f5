package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// claimsFrom retorna as claims do usuário ou escreve 401.
func claimsFrom(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// authorizeCompany garante que o usuário enxerga a empresa informada.
func authorizeCompany(w http.ResponseWriter, claims *domain.Claims, companyID string) bool {
	if companyID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "companyId é obrigatório", nil)
		return false
	}
	if !claims.CanAccessCompany(companyID) {
		logrus.Warnf("Usuário %d sem acesso à empresa %s", claims.UserID, companyID)
		apiErrors.WriteError(w, apiErrors.ErrCompanyAccessDenied, "Sem acesso a esta empresa", nil)
		return false
	}
	return true
}

// requireDate valida datas recebidas na query ou no corpo.
func requireDate(w http.ResponseWriter, name, value string) bool {
	if value == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, name+" é obrigatório", nil)
		return false
	}
	if _, err := grid.ParseDate(value); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" deve estar no formato YYYY-MM-DD", nil)
		return false
	}
	return true
}
