package scheduleclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

func (c *ScheduleClient) CheckWeekLock(ctx context.Context, companyID, weekStartDate string) (*domain.WeekLockStatus, error) {
	query := url.Values{}
	query.Set("weekStartDate", weekStartDate)

	var status domain.WeekLockStatus
	endpoint := "/v1/companies/" + companyID + "/locked-weeks/check"
	if err := c.do(ctx, http.MethodGet, endpoint, query, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
