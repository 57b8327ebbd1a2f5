package handler

import (
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	shiftmocks "github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting/mocks"
	staffmocks "github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing/mocks"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListShifts(t *testing.T) {
	t.Run("filtra pelo dia informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().ListShifts(gomock.Any(), domain.ShiftFilter{
			CompanyID: "c1",
			StartDate: "2024-01-15",
			EndDate:   "2024-01-15",
		}).Return([]*domain.Shift{{ID: "s1", CompanyID: "c1"}}, nil)

		rec := serve(ListShifts(shifter), newRequest(t, http.MethodGet, "/v1/shifts?companyId=c1&date=2024-01-15", nil, managerClaims("c1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		shifts := decodeBody[[]domain.Shift](t, rec)
		require.Len(t, shifts, 1)
		assert.Equal(t, "s1", shifts[0].ID)
	})

	t.Run("gerente não vê outra empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		rec := serve(ListShifts(shifter), newRequest(t, http.MethodGet, "/v1/shifts?companyId=c2", nil, managerClaims("c1")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrCompanyAccessDenied, errorCode(t, rec))
	})

	t.Run("data malformada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		rec := serve(ListShifts(shifter), newRequest(t, http.MethodGet, "/v1/shifts?companyId=c1&date=15/01/2024", nil, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("sem companyId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		rec := serve(ListShifts(shifter), newRequest(t, http.MethodGet, "/v1/shifts", nil, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

func TestCreateShift(t *testing.T) {
	req := domain.ShiftRequest{EmployeeID: "e1", Date: "2024-01-15", StartTime: "09:00", EndTime: "12:00"}

	t.Run("cria turno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
		shifter.EXPECT().CreateShift(gomock.Any(), &req).Return(&domain.Shift{ID: "s1", EmployeeID: "e1", CompanyID: "c1"}, nil)

		rec := serve(CreateShift(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts", req, managerClaims("c1")))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "s1", decodeBody[domain.Shift](t, rec).ID)
	})

	t.Run("semana bloqueada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
		shifter.EXPECT().CreateShift(gomock.Any(), gomock.Any()).
			Return(nil, shifting.NewShiftError(shifting.ErrWeekLocked, apiErrors.ErrWeekLocked, "2024-01-15"))

		rec := serve(CreateShift(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts", req, managerClaims("c1")))

		assert.Equal(t, http.StatusLocked, rec.Code)
		assert.Equal(t, apiErrors.ErrWeekLocked, errorCode(t, rec))
	})

	t.Run("funcionário de outra empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c2"}, nil)

		rec := serve(CreateShift(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts", req, managerClaims("c1")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)
		staff := staffmocks.NewMockStaffService(ctrl)

		rec := serve(CreateShift(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts", "não é objeto", managerClaims("c1")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})
}

func TestCreateShiftsBulk(t *testing.T) {
	body := domain.BulkShiftRequest{
		EmployeeID: "e1",
		Date:       "2024-01-15",
		Labels:     []string{"09:00", "09:15", "14:00"},
	}

	tests := []struct {
		name       string
		result     *domain.BulkResult
		wantStatus int
	}{
		{
			name:       "todos criados",
			result:     &domain.BulkResult{Added: 2, Errors: 0, Total: 2},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "parte falhou",
			result:     &domain.BulkResult{Added: 1, Errors: 1, Total: 2},
			wantStatus: http.StatusMultiStatus,
		},
		{
			name:       "nenhum criado",
			result:     &domain.BulkResult{Added: 0, Errors: 2, Total: 2},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			shifter := shiftmocks.NewMockShifter(ctrl)
			staff := staffmocks.NewMockStaffService(ctrl)

			staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
			shifter.EXPECT().CreateFromSelection(gomock.Any(), &body).Return(tt.result, nil)

			rec := serve(CreateShiftsBulk(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts/bulk", body, managerClaims("c1")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnprocessableEntity {
				assert.Equal(t, apiErrors.ErrBulkCreateFailed, errorCode(t, rec))
				return
			}
			got := decodeBody[domain.BulkResult](t, rec)
			assert.Equal(t, tt.result.Added, got.Added)
			assert.Equal(t, tt.result.Errors, got.Errors)
			assert.Equal(t, tt.result.Total, got.Total)
		})
	}

	t.Run("seleção vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
		shifter.EXPECT().CreateFromSelection(gomock.Any(), gomock.Any()).
			Return(nil, shifting.NewShiftError(shifting.ErrEmptySelection, apiErrors.ErrInvalidShift, ""))

		rec := serve(CreateShiftsBulk(shifter, staff), newRequest(t, http.MethodPost, "/v1/shifts/bulk", body, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidShift, errorCode(t, rec))
	})
}

func TestUpdateShift(t *testing.T) {
	params := httprouter.Param{Key: "id", Value: "s1"}

	t.Run("atualiza horário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GetShift(gomock.Any(), "s1").Return(&domain.Shift{ID: "s1", CompanyID: "c1"}, nil)
		shifter.EXPECT().UpdateShift(gomock.Any(), &domain.UpdateShiftRequest{ID: "s1", EndTime: strPtr("18:00")}).
			Return(&domain.Shift{ID: "s1", CompanyID: "c1", EndTime: "18:00"}, nil)

		body := map[string]string{"endTime": "18:00"}
		rec := serve(UpdateShift(shifter), newRequest(t, http.MethodPut, "/v1/shifts/s1", body, managerClaims("c1"), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "18:00", decodeBody[domain.Shift](t, rec).EndTime)
	})

	t.Run("sobreposição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GetShift(gomock.Any(), "s1").Return(&domain.Shift{ID: "s1", CompanyID: "c1"}, nil)
		shifter.EXPECT().UpdateShift(gomock.Any(), gomock.Any()).
			Return(nil, shifting.NewShiftErrorWithID(shifting.ErrShiftOverlap, apiErrors.ErrShiftOverlap, "s2", "08:00-10:00"))

		body := map[string]string{"startTime": "09:00"}
		rec := serve(UpdateShift(shifter), newRequest(t, http.MethodPut, "/v1/shifts/s1", body, managerClaims("c1"), params))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrShiftOverlap, errorCode(t, rec))
	})

	t.Run("turno de outra empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GetShift(gomock.Any(), "s1").Return(&domain.Shift{ID: "s1", CompanyID: "c2"}, nil)

		body := map[string]string{"startTime": "09:00"}
		rec := serve(UpdateShift(shifter), newRequest(t, http.MethodPut, "/v1/shifts/s1", body, managerClaims("c1"), params))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteShift(t *testing.T) {
	params := httprouter.Param{Key: "id", Value: "s1"}

	t.Run("remove turno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GetShift(gomock.Any(), "s1").Return(&domain.Shift{ID: "s1", CompanyID: "c1"}, nil)
		shifter.EXPECT().DeleteShift(gomock.Any(), "s1").Return(nil)

		rec := serve(DeleteShift(shifter), newRequest(t, http.MethodDelete, "/v1/shifts/s1", nil, managerClaims("c1"), params))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("turno inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GetShift(gomock.Any(), "s1").
			Return(nil, shifting.NewShiftErrorWithID(shifting.ErrShiftNotFound, apiErrors.ErrShiftNotFound, "s1", ""))

		rec := serve(DeleteShift(shifter), newRequest(t, http.MethodDelete, "/v1/shifts/s1", nil, adminClaims(), params))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrShiftNotFound, errorCode(t, rec))
	})
}

func TestGridSlots(t *testing.T) {
	t.Run("horas informadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		shifter.EXPECT().GridSlots(gomock.Any(), gomock.Any()).DoAndReturn(func(start, end *int) grid.Slots {
			require.NotNil(t, start)
			require.NotNil(t, end)
			return grid.NewSlots(*start, *end)
		})

		rec := serve(GridSlots(shifter), newRequest(t, http.MethodGet, "/v1/grid/slots?startHour=8&endHour=10", nil, adminClaims()))

		assert.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[GridSlotsResponse](t, rec)
		assert.Equal(t, 8, got.StartHour)
		assert.Equal(t, 10, got.EndHour)
		assert.Len(t, got.Labels, 9)
		assert.Equal(t, "08:00", got.Labels[0])
	})

	t.Run("hora não numérica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		shifter := shiftmocks.NewMockShifter(ctrl)

		rec := serve(GridSlots(shifter), newRequest(t, http.MethodGet, "/v1/grid/slots?startHour=oito", nil, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
