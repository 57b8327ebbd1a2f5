package pos

import (
	"context"
	"time"

	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/posdomain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type SalesIntegrator interface {
	DailyNetSales(ctx context.Context, storeCode string, start, end time.Time) ([]posdomain.DailyTotal, error)
}

type POSService struct {
	Client posclient.Client
}

func New(client posclient.Client) SalesIntegrator {
	return &POSService{
		Client: client,
	}
}

// DailyNetSales retorna o total líquido por dia da loja no período,
// incluindo as duas pontas.
func (s *POSService) DailyNetSales(ctx context.Context, storeCode string, start, end time.Time) ([]posdomain.DailyTotal, error) {
	orders, err := s.Client.GetSales(ctx, posclient.SalesConsultationParams{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
		StoreCode: storeCode,
	})
	if err != nil {
		return nil, err
	}

	return posdomain.SumNetAmountByDate(orders), nil
}
