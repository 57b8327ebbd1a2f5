package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// ListCompanies retorna todas as empresas para administradores e apenas a
// empresa do usuário para os demais perfis.
func ListCompanies(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		if claims.UserRoleID != domain.RoleAdmin {
			companies := []*domain.Company{}
			if claims.UserCompanyID != nil {
				company, err := service.GetCompany(r.Context(), *claims.UserCompanyID)
				if err != nil {
					apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa")
					return
				}
				companies = append(companies, company)
			}
			writeJSON(w, http.StatusOK, companies)
			return
		}

		companies, err := service.ListCompanies(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao listar empresas")
			return
		}

		writeJSON(w, http.StatusOK, companies)
	}
}

func CreateCompany(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompany")

		var req domain.CreateCompanyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		company, err := service.CreateCompany(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao criar empresa")
			return
		}

		writeJSON(w, http.StatusCreated, company)
	}
}
