package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/forecasting"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// companyParam lê o :id da rota e confere o acesso do usuário à empresa.
func companyParam(w http.ResponseWriter, r *http.Request) (string, *domain.Claims, bool) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return "", nil, false
	}

	companyID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if !authorizeCompany(w, claims, companyID) {
		return "", nil, false
	}
	return companyID, claims, true
}

func UpsertDailySales(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertDailySales")

		companyID, _, ok := companyParam(w, r)
		if !ok {
			return
		}

		var req domain.DailySalesRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		sales, err := service.UpsertDailySales(r.Context(), companyID, &req)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao salvar venda diária")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}

// ListDailySales retorna os sete dias da semana com o percentual de custo de
// mão de obra calculado.
func ListDailySales(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, _, ok := companyParam(w, r)
		if !ok {
			return
		}

		weekStartDate := r.URL.Query().Get("weekStartDate")
		if !requireDate(w, "weekStartDate", weekStartDate) {
			return
		}

		sales, err := service.WeeklySales(r.Context(), companyID, weekStartDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas da semana")
			return
		}

		writeJSON(w, http.StatusOK, sales)
	}
}
