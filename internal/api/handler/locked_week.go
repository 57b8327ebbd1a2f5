package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/locking"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

func CheckWeekLock(service locking.WeekLocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, _, ok := companyParam(w, r)
		if !ok {
			return
		}

		weekStartDate := r.URL.Query().Get("weekStartDate")
		if !requireDate(w, "weekStartDate", weekStartDate) {
			return
		}

		status, err := service.Check(r.Context(), companyID, weekStartDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao consultar bloqueio da semana")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func ListLockedWeeks(service locking.WeekLocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, _, ok := companyParam(w, r)
		if !ok {
			return
		}

		weeks, err := service.List(r.Context(), companyID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao listar semanas bloqueadas")
			return
		}

		writeJSON(w, http.StatusOK, weeks)
	}
}

func LockWeek(service locking.WeekLocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LockWeek")

		companyID, claims, ok := companyParam(w, r)
		if !ok {
			return
		}

		var req domain.LockWeekRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if !requireDate(w, "weekStartDate", req.WeekStartDate) {
			return
		}

		lockedBy := claims.UserID
		week, err := service.Lock(r.Context(), companyID, req.WeekStartDate, &lockedBy)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao bloquear semana")
			return
		}

		writeJSON(w, http.StatusCreated, week)
	}
}

func UnlockWeek(service locking.WeekLocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UnlockWeek")

		companyID, _, ok := companyParam(w, r)
		if !ok {
			return
		}

		weekStartDate := httprouter.ParamsFromContext(r.Context()).ByName("weekStartDate")
		if !requireDate(w, "weekStartDate", weekStartDate) {
			return
		}

		if err := service.Unlock(r.Context(), companyID, weekStartDate); err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao desbloquear semana")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
