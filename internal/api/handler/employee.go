package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// ListEmployees lista os funcionários da empresa. Com weekStartDate a
// resposta traz o resumo de horas da semana de cada funcionário.
func ListEmployees(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		companyID := query.Get("companyId")
		if !authorizeCompany(w, claims, companyID) {
			return
		}

		if weekStartDate := query.Get("weekStartDate"); weekStartDate != "" {
			if !requireDate(w, "weekStartDate", weekStartDate) {
				return
			}

			summaries, err := service.WeeklySummaries(r.Context(), companyID, weekStartDate)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao calcular horas da semana")
				return
			}

			writeJSON(w, http.StatusOK, summaries)
			return
		}

		employees, err := service.ListEmployees(r.Context(), companyID, query.Get("active") == "true")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao listar funcionários")
			return
		}

		writeJSON(w, http.StatusOK, employees)
	}
}

func CreateEmployee(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEmployee")

		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateEmployeeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if !authorizeCompany(w, claims, req.CompanyID) {
			return
		}

		employee, err := service.CreateEmployee(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao criar funcionário")
			return
		}

		writeJSON(w, http.StatusCreated, employee)
	}
}

func UpdateEmployee(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEmployee")

		employee, ok := loadEmployee(w, r, service)
		if !ok {
			return
		}

		var req domain.UpdateEmployeeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = employee.ID

		updated, err := service.UpdateEmployee(r.Context(), &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar funcionário")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// DeleteEmployee remove o funcionário e, em cascata, os seus turnos.
func DeleteEmployee(service staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEmployee")

		employee, ok := loadEmployee(w, r, service)
		if !ok {
			return
		}

		if err := service.DeleteEmployee(r.Context(), employee.ID); err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao remover funcionário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// loadEmployee busca o funcionário do parâmetro :id e confere o acesso à
// empresa dele.
func loadEmployee(w http.ResponseWriter, r *http.Request, service staffing.StaffService) (*domain.Employee, bool) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return nil, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
		return nil, false
	}

	employee, err := service.GetEmployee(r.Context(), id)
	if err != nil {
		apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar funcionário")
		return nil, false
	}

	if !authorizeCompany(w, claims, employee.CompanyID) {
		return nil, false
	}
	return employee, true
}
