package exporting

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestService_WeeklySchedule(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	employees := mocks.NewMockEmployeeRepository(ctrl)
	shifts := mocks.NewMockShiftRepository(ctrl)
	service := NewService(employees, shifts)

	employees.EXPECT().ListByCompany(ctx, "c1", true).Return([]*domain.Employee{
		{ID: "e1", Name: "Ana"},
		{ID: "e2", Name: "Bruno"},
	}, nil)
	shifts.EXPECT().
		List(ctx, domain.ShiftFilter{CompanyID: "c1", StartDate: "2024-01-15", EndDate: "2024-01-21"}).
		Return([]*domain.Shift{
			{EmployeeID: "e1", Date: "2024-01-15", StartTime: "14:00", EndTime: "18:00"},
			{EmployeeID: "e1", Date: "2024-01-15", StartTime: "08:00", EndTime: "12:00"},
			{EmployeeID: "e2", Date: "2024-01-21", StartTime: "22:00", EndTime: "02:00"},
		}, nil)

	export, err := service.WeeklySchedule(ctx, "c1", "2024-01-19")
	require.NoError(t, err)
	assert.Equal(t, "escala-2024-01-15.xlsx", export.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(t, err)
	defer f.Close()

	value := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Escala da semana 2024-01-15", value("A1"))
	assert.Equal(t, "Funcionário", value("A3"))
	assert.Equal(t, "Seg 15/01", value("B3"))
	assert.Equal(t, "Dom 21/01", value("H3"))
	assert.Equal(t, "Total (h)", value("I3"))

	assert.Equal(t, "Ana", value("A4"))
	assert.Equal(t, "08:00-12:00\n14:00-18:00", value("B4"))
	assert.Equal(t, "8", value("I4"))

	assert.Equal(t, "Bruno", value("A5"))
	assert.Equal(t, "22:00-02:00", value("H5"))
	assert.Equal(t, "4", value("I5"))

	assert.Equal(t, "Total (h)", value("A6"))
	assert.Equal(t, "8", value("B6"))
	assert.Equal(t, "12", value("I6"))
}

func TestService_WeeklySchedule_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("semana inválida", func(t *testing.T) {
		service := NewService(nil, nil)
		_, err := service.WeeklySchedule(ctx, "c1", "semana-1")
		assert.ErrorIs(t, err, ErrInvalidWeekStart)
	})

	t.Run("empresa obrigatória", func(t *testing.T) {
		service := NewService(nil, nil)
		_, err := service.WeeklySchedule(ctx, "", "2024-01-15")
		assert.ErrorIs(t, err, ErrCompanyIDRequired)
	})

	t.Run("erro ao listar funcionários", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := mocks.NewMockEmployeeRepository(ctrl)
		service := NewService(employees, mocks.NewMockShiftRepository(ctrl))

		employees.EXPECT().ListByCompany(ctx, "c1", true).Return(nil, errors.New("timeout"))

		_, err := service.WeeklySchedule(ctx, "c1", "2024-01-15")
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
