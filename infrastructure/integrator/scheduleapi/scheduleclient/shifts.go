package scheduleclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

// CreateShift cria um turno pela API, satisfazendo shifting.ShiftCreator.
func (c *ScheduleClient) CreateShift(ctx context.Context, req *domain.ShiftRequest) (*domain.Shift, error) {
	var shift domain.Shift
	if err := c.do(ctx, http.MethodPost, "/v1/shifts", nil, req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *ScheduleClient) ListShifts(ctx context.Context, companyID, date string) ([]*domain.Shift, error) {
	query := url.Values{}
	query.Set("companyId", companyID)
	if date != "" {
		query.Set("date", date)
	}

	var shifts []*domain.Shift
	if err := c.do(ctx, http.MethodGet, "/v1/shifts", query, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}
