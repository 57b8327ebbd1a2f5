package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/exporting"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// ExportSchedule devolve a escala da semana como planilha XLSX.
func ExportSchedule(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportSchedule")

		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		companyID := query.Get("companyId")
		if !authorizeCompany(w, claims, companyID) {
			return
		}

		weekStartDate := query.Get("weekStartDate")
		if !requireDate(w, "weekStartDate", weekStartDate) {
			return
		}

		export, err := service.WeeklySchedule(r.Context(), companyID, weekStartDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao exportar escala")
			return
		}

		w.Header().Set("Content-Type", exporting.ContentTypeXLSX)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(export.Content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar planilha")
		}
	}
}
