package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
)

type GridSlotsResponse struct {
	StartHour int      `json:"startHour"`
	EndHour   int      `json:"endHour"`
	Labels    []string `json:"labels"`
}

// ListShifts aceita date para um único dia ou startDate/endDate para um
// intervalo. Sem datas retorna todos os turnos da empresa.
func ListShifts(service shifting.Shifter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.ShiftFilter{
			CompanyID:  query.Get("companyId"),
			EmployeeID: query.Get("employeeId"),
			StartDate:  query.Get("startDate"),
			EndDate:    query.Get("endDate"),
		}
		if date := query.Get("date"); date != "" {
			filter.StartDate = date
			filter.EndDate = date
		}

		if !authorizeCompany(w, claims, filter.CompanyID) {
			return
		}
		if filter.StartDate != "" && !requireDate(w, "startDate", filter.StartDate) {
			return
		}
		if filter.EndDate != "" && !requireDate(w, "endDate", filter.EndDate) {
			return
		}

		shifts, err := service.ListShifts(r.Context(), filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao listar turnos")
			return
		}

		writeJSON(w, http.StatusOK, shifts)
	}
}

func CreateShift(service shifting.Shifter, staff staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateShift")

		var req domain.ShiftRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if !authorizeEmployee(w, r, staff, req.EmployeeID) {
			return
		}

		shift, err := service.CreateShift(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao criar turno")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao criar turno")
			return
		}

		writeJSON(w, http.StatusCreated, shift)
	}
}

// CreateShiftsBulk consolida os rótulos selecionados e cria um turno por
// intervalo. Responde 201 quando todos foram criados, 207 quando parte
// falhou e 422 quando nenhum foi criado.
func CreateShiftsBulk(service shifting.Shifter, staff staffing.StaffService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateShiftsBulk")

		var req domain.BulkShiftRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if !authorizeEmployee(w, r, staff, req.EmployeeID) {
			return
		}

		result, err := service.CreateFromSelection(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao criar turnos em lote")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao criar turnos")
			return
		}

		switch {
		case result.Added == 0:
			apiErrors.WriteError(w, apiErrors.ErrBulkCreateFailed, "Nenhum turno foi criado", result)
		case result.Errors > 0:
			writeJSON(w, http.StatusMultiStatus, result)
		default:
			writeJSON(w, http.StatusCreated, result)
		}
	}
}

func UpdateShift(service shifting.Shifter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateShift")

		shift, ok := loadShift(w, r, service)
		if !ok {
			return
		}

		var req domain.UpdateShiftRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = shift.ID

		updated, err := service.UpdateShift(r.Context(), &req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao atualizar turno")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar turno")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteShift(service shifting.Shifter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteShift")

		shift, ok := loadShift(w, r, service)
		if !ok {
			return
		}

		if err := service.DeleteShift(r.Context(), shift.ID); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao remover turno")
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao remover turno")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GridSlots retorna os rótulos da grade. Horas fora do domínio voltam ao
// intervalo padrão.
func GridSlots(service shifting.Shifter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		startHour, ok := optionalInt(w, "startHour", query.Get("startHour"))
		if !ok {
			return
		}
		endHour, ok := optionalInt(w, "endHour", query.Get("endHour"))
		if !ok {
			return
		}

		slots := service.GridSlots(startHour, endHour)
		writeJSON(w, http.StatusOK, GridSlotsResponse{
			StartHour: slots.StartHour(),
			EndHour:   slots.EndHour(),
			Labels:    slots.Labels(),
		})
	}
}

func optionalInt(w http.ResponseWriter, name, value string) (*int, bool) {
	if value == "" {
		return nil, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" deve ser um número inteiro", nil)
		return nil, false
	}
	return &n, true
}

func authorizeEmployee(w http.ResponseWriter, r *http.Request, staff staffing.StaffService, employeeID string) bool {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return false
	}
	if employeeID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "employeeId é obrigatório", nil)
		return false
	}

	employee, err := staff.GetEmployee(r.Context(), employeeID)
	if err != nil {
		apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar funcionário")
		return false
	}
	return authorizeCompany(w, claims, employee.CompanyID)
}

func loadShift(w http.ResponseWriter, r *http.Request, service shifting.Shifter) (*domain.Shift, bool) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return nil, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do turno não fornecido", nil)
		return nil, false
	}

	shift, err := service.GetShift(r.Context(), id)
	if err != nil {
		apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar turno")
		return nil, false
	}

	if !authorizeCompany(w, claims, shift.CompanyID) {
		return nil, false
	}
	return shift, true
}
