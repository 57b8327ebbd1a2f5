package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

type fakeClient struct {
	mu       sync.Mutex
	created  []domain.ShiftRequest
	failAt   string
	shifts   []*domain.Shift
	isLocked bool
}

func (f *fakeClient) CreateShift(_ context.Context, req *domain.ShiftRequest) (*domain.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if req.StartTime == f.failAt {
		return nil, errors.New("SCH_004: sobreposição")
	}
	f.created = append(f.created, *req)
	return &domain.Shift{ID: "s-" + req.StartTime}, nil
}

func (f *fakeClient) ListShifts(context.Context, string, string) ([]*domain.Shift, error) {
	return f.shifts, nil
}

func (f *fakeClient) CheckWeekLock(_ context.Context, companyID, weekStartDate string) (*domain.WeekLockStatus, error) {
	return &domain.WeekLockStatus{CompanyID: companyID, WeekStartDate: weekStartDate, IsLocked: f.isLocked}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Grid:   config.Grid{StartHour: 6, EndHour: 24},
		Shifts: config.Shifts{BulkCreateMaxConcurrency: 2},
	}
}

func runApp(t *testing.T, client *fakeClient, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(client, testConfig())
	app.SetOutput(&out)
	app.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func TestSlotsCmd(t *testing.T) {
	out, err := runApp(t, &fakeClient{}, "slots", "--start-hour=8", "--end-hour=9")

	require.NoError(t, err)
	assert.Equal(t, "08:00 08:15 08:30 08:45 09:00\n", out)
}

func TestFillCmd(t *testing.T) {
	t.Run("cria um turno por intervalo", func(t *testing.T) {
		client := &fakeClient{}
		out, err := runApp(t, client, "fill", "--employee=e1", "--date=2024-01-15", "--labels=09:00,09:15,14:00")

		require.NoError(t, err)
		assert.Contains(t, out, "2024-01-15 09:00-09:30")
		assert.Contains(t, out, "2024-01-15 14:00-14:15")
		assert.Len(t, client.created, 2)
	})

	t.Run("atravessa a meia-noite", func(t *testing.T) {
		client := &fakeClient{}
		out, err := runApp(t, client, "fill", "--employee=e1", "--date=2024-01-15", "--labels=23:30,23:45,00:00", "--end-hour=25")

		require.NoError(t, err)
		assert.Contains(t, out, "23:30-00:15")
		require.Len(t, client.created, 1)
	})

	t.Run("madrugada vai para o dia seguinte e imprime o relatório", func(t *testing.T) {
		client := &fakeClient{}
		out, err := runApp(t, client, "fill", "--employee=e1", "--date=2024-01-15", "--labels=00:30,00:45", "--start-hour=20", "--end-hour=26")

		require.NoError(t, err)
		assert.Contains(t, out, "2024-01-16 00:30-01:00")
		assert.Contains(t, out, "\n  \"added\": 1,")
		require.Len(t, client.created, 1)
		assert.Equal(t, "2024-01-16", client.created[0].Date)
	})

	t.Run("dry-run não chama a API", func(t *testing.T) {
		client := &fakeClient{}
		_, err := runApp(t, client, "fill", "--employee=e1", "--date=2024-01-15", "--labels=10:00", "--dry-run")

		require.NoError(t, err)
		assert.Empty(t, client.created)
	})

	t.Run("falha parcial retorna erro com contagem", func(t *testing.T) {
		client := &fakeClient{failAt: "14:00"}
		out, err := runApp(t, client, "fill", "--employee=e1", "--date=2024-01-15", "--labels=09:00,14:00")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 de 2 turnos falharam: 14:00-14:15")
		assert.Contains(t, out, `"added": 1`)
		assert.Len(t, client.created, 1)
	})

	t.Run("rótulos desconhecidos", func(t *testing.T) {
		_, err := runApp(t, &fakeClient{}, "fill", "--employee=e1", "--date=2024-01-15", "--labels=09:10")

		require.Error(t, err)
	})
}

func TestLockedCmd(t *testing.T) {
	out, err := runApp(t, &fakeClient{isLocked: true}, "locked", "--company=c1", "--week=2024-01-15")

	require.NoError(t, err)
	assert.Equal(t, "Semana 2024-01-15 da empresa c1: bloqueada\n", out)
}

func TestShiftsCmd(t *testing.T) {
	client := &fakeClient{shifts: []*domain.Shift{{ID: "s1", EmployeeID: "e1", Date: "2024-01-15", StartTime: "09:00", EndTime: "12:00"}}}
	out, err := runApp(t, client, "shifts", "--company=c1")

	require.NoError(t, err)
	assert.Contains(t, out, "s1")
	assert.Contains(t, out, "3.00")
}
