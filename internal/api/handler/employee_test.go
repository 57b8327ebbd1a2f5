package handler

import (
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	staffmocks "github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing/mocks"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListEmployees(t *testing.T) {
	t.Run("lista apenas ativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().ListEmployees(gomock.Any(), "c1", true).Return([]*domain.Employee{{ID: "e1", CompanyID: "c1"}}, nil)

		rec := serve(ListEmployees(staff), newRequest(t, http.MethodGet, "/v1/employees?companyId=c1&active=true", nil, managerClaims("c1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]domain.Employee](t, rec), 1)
	})

	t.Run("com resumo semanal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		employee := domain.Employee{ID: "e1", CompanyID: "c1", MaxHoursPerWeek: 40}
		staff.EXPECT().WeeklySummaries(gomock.Any(), "c1", "2024-01-15").
			Return([]domain.EmployeeWeeklySummary{domain.NewEmployeeWeeklySummary(employee, "2024-01-15", 44)}, nil)

		rec := serve(ListEmployees(staff), newRequest(t, http.MethodGet, "/v1/employees?companyId=c1&weekStartDate=2024-01-15", nil, managerClaims("c1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		summaries := decodeBody[[]domain.EmployeeWeeklySummary](t, rec)
		require.Len(t, summaries, 1)
		assert.True(t, summaries[0].OverBudget)
		assert.Equal(t, -4.0, summaries[0].RemainingHours)
	})

	t.Run("semana malformada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		rec := serve(ListEmployees(staff), newRequest(t, http.MethodGet, "/v1/employees?companyId=c1&weekStartDate=semana", nil, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateEmployee(t *testing.T) {
	t.Run("cria funcionário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		req := domain.CreateEmployeeRequest{CompanyID: "c1", Name: "Ana", Role: "Caixa", MaxHoursPerWeek: 44}
		staff.EXPECT().CreateEmployee(gomock.Any(), &req).Return(&domain.Employee{ID: "e1", CompanyID: "c1", Name: "Ana"}, nil)

		rec := serve(CreateEmployee(staff), newRequest(t, http.MethodPost, "/v1/employees", req, managerClaims("c1")))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "e1", decodeBody[domain.Employee](t, rec).ID)
	})

	t.Run("sem empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		rec := serve(CreateEmployee(staff), newRequest(t, http.MethodPost, "/v1/employees", domain.CreateEmployeeRequest{Name: "Ana"}, adminClaims()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})
}

func TestUpdateEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	staff := staffmocks.NewMockStaffService(ctrl)

	staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
	staff.EXPECT().UpdateEmployee(gomock.Any(), &domain.UpdateEmployeeRequest{ID: "e1", Name: strPtr("Bia")}).
		Return(&domain.Employee{ID: "e1", CompanyID: "c1", Name: "Bia"}, nil)

	rec := serve(UpdateEmployee(staff), newRequest(t, http.MethodPut, "/v1/employees/e1", map[string]string{"name": "Bia"},
		managerClaims("c1"), httprouter.Param{Key: "id", Value: "e1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bia", decodeBody[domain.Employee](t, rec).Name)
}

func TestDeleteEmployee(t *testing.T) {
	param := httprouter.Param{Key: "id", Value: "e1"}

	t.Run("remove funcionário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c1"}, nil)
		staff.EXPECT().DeleteEmployee(gomock.Any(), "e1").Return(nil)

		rec := serve(DeleteEmployee(staff), newRequest(t, http.MethodDelete, "/v1/employees/e1", nil, managerClaims("c1"), param))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("funcionário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").
			Return(nil, staffing.NewStaffErrorWithID(staffing.ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, "e1", ""))

		rec := serve(DeleteEmployee(staff), newRequest(t, http.MethodDelete, "/v1/employees/e1", nil, adminClaims(), param))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrEmployeeNotFound, errorCode(t, rec))
	})

	t.Run("gerente de outra empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetEmployee(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1", CompanyID: "c2"}, nil)

		rec := serve(DeleteEmployee(staff), newRequest(t, http.MethodDelete, "/v1/employees/e1", nil, managerClaims("c1"), param))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestListCompanies(t *testing.T) {
	t.Run("admin vê todas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().ListCompanies(gomock.Any()).Return([]*domain.Company{{ID: "c1"}, {ID: "c2"}}, nil)

		rec := serve(ListCompanies(staff), newRequest(t, http.MethodGet, "/v1/companies", nil, adminClaims()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]domain.Company](t, rec), 2)
	})

	t.Run("gerente vê a própria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		staff.EXPECT().GetCompany(gomock.Any(), "c1").Return(&domain.Company{ID: "c1"}, nil)

		rec := serve(ListCompanies(staff), newRequest(t, http.MethodGet, "/v1/companies", nil, managerClaims("c1")))

		companies := decodeBody[[]domain.Company](t, rec)
		require.Len(t, companies, 1)
		assert.Equal(t, "c1", companies[0].ID)
	})

	t.Run("funcionário sem empresa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		staff := staffmocks.NewMockStaffService(ctrl)

		claims := &domain.Claims{UserID: 3, UserRoleID: domain.RoleEmployee}
		rec := serve(ListCompanies(staff), newRequest(t, http.MethodGet, "/v1/companies", nil, claims))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[[]domain.Company](t, rec))
	})
}

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	staff := staffmocks.NewMockStaffService(ctrl)

	staff.EXPECT().CreateCompany(gomock.Any(), &domain.CreateCompanyRequest{Name: ""}).
		Return(nil, staffing.NewStaffError(staffing.ErrCompanyNameRequired, apiErrors.ErrMissingRequiredData, ""))

	rec := serve(CreateCompany(staff), newRequest(t, http.MethodPost, "/v1/companies", domain.CreateCompanyRequest{}, adminClaims()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
