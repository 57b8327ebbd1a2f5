package shifting

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/grid"
)

type fakeCreator struct {
	mu       sync.Mutex
	failAt   map[string]bool
	requests []domain.ShiftRequest
}

func (f *fakeCreator) CreateShift(_ context.Context, req *domain.ShiftRequest) (*domain.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, *req)
	if f.failAt[req.StartTime] {
		return nil, errors.New("semana bloqueada para edição")
	}
	return &domain.Shift{ID: "id-" + req.StartTime}, nil
}

func TestPersistRanges_PartialFailure(t *testing.T) {
	creator := &fakeCreator{failAt: map[string]bool{"14:00": true}}
	ranges := []grid.Range{
		{Start: "09:00", End: "10:00"},
		{Start: "14:00", End: "15:30"},
		{Start: "22:00", End: "02:00"},
	}

	result := PersistRanges(context.Background(), creator, "e1", "2024-01-15", ranges, 2)

	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Errors)
	assert.Equal(t, 3, result.Total)

	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, domain.ShiftStatusConfirmed, result.Outcomes[0].Status)
	assert.Equal(t, "id-09:00", result.Outcomes[0].ShiftID)
	assert.Equal(t, domain.ShiftStatusFailed, result.Outcomes[1].Status)
	assert.Equal(t, "semana bloqueada para edição", result.Outcomes[1].Error)
	assert.Empty(t, result.Outcomes[1].ShiftID)
	assert.Equal(t, domain.ShiftStatusConfirmed, result.Outcomes[2].Status)
	assert.Equal(t, "22:00", result.Outcomes[2].StartTime)
	assert.Equal(t, "02:00", result.Outcomes[2].EndTime)
}

func TestPersistRanges_RequestShape(t *testing.T) {
	creator := &fakeCreator{}

	result := PersistRanges(context.Background(), creator, "e1", "2024-01-15", []grid.Range{{Start: "06:00", End: "06:15"}}, 0)

	assert.Equal(t, 1, result.Added)
	require.Len(t, creator.requests, 1)
	assert.Equal(t, domain.ShiftRequest{
		EmployeeID: "e1",
		Date:       "2024-01-15",
		StartTime:  "06:00",
		EndTime:    "06:15",
		Notes:      "",
	}, creator.requests[0])
}

func TestPersistRanges_Empty(t *testing.T) {
	result := PersistRanges(context.Background(), &fakeCreator{}, "e1", "2024-01-15", nil, 4)

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 0, result.Errors)
	assert.Empty(t, result.Outcomes)
}

func TestPersistRanges_AllFail(t *testing.T) {
	creator := &fakeCreator{failAt: map[string]bool{"09:00": true, "11:00": true}}
	ranges := []grid.Range{{Start: "09:00", End: "10:00"}, {Start: "11:00", End: "12:00"}}

	result := PersistRanges(context.Background(), creator, "e1", "2024-01-15", ranges, 4)

	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 2, result.Errors)
	for _, outcome := range result.Outcomes {
		assert.Equal(t, domain.ShiftStatusFailed, outcome.Status)
	}
}

func TestPersistRanges_DayOffset(t *testing.T) {
	creator := &fakeCreator{}
	ranges := []grid.Range{
		{Start: "22:00", End: "00:00"},
		{Start: "00:30", End: "01:00", DayOffset: 1},
	}

	result := PersistRanges(context.Background(), creator, "e1", "2024-01-15", ranges, 1)

	assert.Equal(t, 2, result.Added)
	require.Len(t, creator.requests, 2)
	assert.Equal(t, "2024-01-15", creator.requests[0].Date)
	assert.Equal(t, "2024-01-16", creator.requests[1].Date)
	assert.Equal(t, "2024-01-16", result.Outcomes[1].Date)
}
