package shifting

import (
	"context"

	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// ShiftCreator cria um único turno. É implementado pelo Service e pelo
// cliente REST do schedulectl.
type ShiftCreator interface {
	CreateShift(ctx context.Context, req *domain.ShiftRequest) (*domain.Shift, error)
}

// PersistRanges cria um turno por intervalo consolidado, no máximo limit ao
// mesmo tempo. Uma falha não cancela as demais e nada é desfeito: o
// resultado traz a contagem e o estado final de cada intervalo. Intervalos
// que começam após a meia-noite da grade são gravados no dia seguinte.
func PersistRanges(ctx context.Context, creator ShiftCreator, employeeID, date string, ranges []grid.Range, limit int) *domain.BulkResult {
	outcomes := make([]domain.ShiftOutcome, len(ranges))
	for i, r := range ranges {
		outcomes[i] = domain.ShiftOutcome{
			Date:      grid.ShiftDate(date, r.DayOffset),
			StartTime: r.Start,
			EndTime:   r.End,
			Status:    domain.ShiftStatusPending,
		}
	}

	if limit <= 0 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, r := range ranges {
		g.Go(func() error {
			shift, err := creator.CreateShift(ctx, &domain.ShiftRequest{
				EmployeeID: employeeID,
				Date:       outcomes[i].Date,
				StartTime:  r.Start,
				EndTime:    r.End,
			})
			if err != nil {
				log.ForContext(ctx).WithError(err).Warnf("Falha ao criar turno %s-%s do funcionário %s", r.Start, r.End, employeeID)
				outcomes[i].Status = domain.ShiftStatusFailed
				outcomes[i].Error = err.Error()
				return nil
			}

			outcomes[i].Status = domain.ShiftStatusConfirmed
			outcomes[i].ShiftID = shift.ID
			return nil
		})
	}

	_ = g.Wait()

	result := &domain.BulkResult{
		Total:    len(ranges),
		Outcomes: outcomes,
	}
	for _, outcome := range outcomes {
		if outcome.Status == domain.ShiftStatusConfirmed {
			result.Added++
		} else {
			result.Errors++
		}
	}

	return result
}
