package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	posmocks "github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/mocks"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/posdomain"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newSalesImportService(t *testing.T) (*SalesImportService, *mocks.MockCompanyRepository, *mocks.MockDailySalesRepository, *posmocks.MockSalesIntegrator) {
	ctrl := gomock.NewController(t)
	companies := mocks.NewMockCompanyRepository(ctrl)
	sales := mocks.NewMockDailySalesRepository(ctrl)
	integrator := posmocks.NewMockSalesIntegrator(ctrl)

	service := &SalesImportService{
		companyRepo: companies,
		salesRepo:   sales,
		posService:  integrator,
		now:         func() time.Time { return time.Date(2024, 1, 17, 3, 0, 0, 0, time.UTC) },
	}
	return service, companies, sales, integrator
}

func TestSalesImportService_ImportWeek(t *testing.T) {
	ctx := context.Background()
	service, _, sales, integrator := newSalesImportService(t)

	reference := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	integrator.EXPECT().DailyNetSales(ctx, "c1", reference, reference.AddDate(0, 0, 6)).Return([]posdomain.DailyTotal{
		{Date: "2024-01-15", Amount: decimal.RequireFromString("100.456"), Orders: 3},
		{Date: "2024-01-16", Amount: decimal.RequireFromString("200"), Orders: 5},
		{Date: "2024-01-17", Amount: decimal.RequireFromString("80"), Orders: 1},
	}, nil)
	sales.EXPECT().ListByRange(ctx, "c1", "2024-01-22", "2024-01-28").Return([]*domain.DailySales{
		{CompanyID: "c1", Date: "2024-01-23"},
	}, nil)
	sales.EXPECT().ListByRange(ctx, "c1", "2024-01-15", "2024-01-21").Return([]*domain.DailySales{
		{CompanyID: "c1", Date: "2024-01-15", HourlyEmployeeCost: decimal.NewFromInt(25)},
	}, nil)

	sales.EXPECT().Upsert(ctx, gomock.Cond(func(s *domain.DailySales) bool {
		return s.Date == "2024-01-22" && s.EstimatedSales.String() == "100.46" && s.HourlyEmployeeCost.String() == "25"
	})).Return(nil)
	sales.EXPECT().Upsert(ctx, gomock.Cond(func(s *domain.DailySales) bool {
		return s.Date == "2024-01-24" && s.EstimatedSales.String() == "80" && s.HourlyEmployeeCost.IsZero()
	})).Return(nil)

	imported, err := service.ImportWeek(ctx, "c1", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 2, imported)
}

func TestSalesImportService_ImportWeek_ErroNoPDV(t *testing.T) {
	ctx := context.Background()
	service, _, _, integrator := newSalesImportService(t)

	integrator.EXPECT().DailyNetSales(ctx, "c1", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	imported, err := service.ImportWeek(ctx, "c1", time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.Zero(t, imported)
}

func TestSalesImportService_ImportNextWeek(t *testing.T) {
	ctx := context.Background()
	service, companies, sales, integrator := newSalesImportService(t)

	companies.EXPECT().List(ctx).Return([]*domain.Company{{ID: "c1"}, {ID: "c2"}}, nil)

	integrator.EXPECT().DailyNetSales(ctx, "c1", gomock.Any(), gomock.Any()).Return(nil, errors.New("loja não encontrada"))
	integrator.EXPECT().DailyNetSales(ctx, "c2", gomock.Any(), gomock.Any()).Return([]posdomain.DailyTotal{
		{Date: "2024-01-20", Amount: decimal.NewFromInt(500)},
	}, nil)
	sales.EXPECT().ListByRange(ctx, "c2", gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	sales.EXPECT().Upsert(ctx, gomock.Cond(func(s *domain.DailySales) bool {
		return s.CompanyID == "c2" && s.Date == "2024-01-27"
	})).Return(nil)

	imported, err := service.ImportNextWeek(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	status := service.GetStatus()
	assert.Equal(t, "2024-01-22", status["last_target_week"])
	assert.Equal(t, 1, status["last_imported_days"])
	assert.Equal(t, false, status["running"])
}
