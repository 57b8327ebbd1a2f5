package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/scheduler"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWeekLock    = "week-lock"
	CronJobTypeSalesImport = "sales-import"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeekLockService    *scheduler.WeekLockService
	SalesImportService *scheduler.SalesImportService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWeekLock:
			if services.WeekLockService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de bloqueio de semanas não disponível", nil)
				return
			}
			services.WeekLockService.TriggerManualSync()
		case CronJobTypeSalesImport:
			if services.SalesImportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de importação de vendas não disponível", nil)
				return
			}
			services.SalesImportService.TriggerManualSync()
		case CronJobTypeAll:
			if services.WeekLockService != nil {
				services.WeekLockService.TriggerManualSync()
			}
			if services.SalesImportService != nil {
				services.SalesImportService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: week-lock, sales-import, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.WeekLockService != nil {
			status[CronJobTypeWeekLock] = services.WeekLockService.GetStatus()
		}
		if services.SalesImportService != nil {
			status[CronJobTypeSalesImport] = services.SalesImportService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
