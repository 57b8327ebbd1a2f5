package domain

import (
	"time"

	"github.com/vfg2006/shift-scheduler-api/internal/grid"
)

// Shift é um turno persistido. EndTime menor ou igual a StartTime indica que
// o turno termina no dia seguinte.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	CompanyID  string    `json:"companyId,omitempty"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Hours retorna a duração do turno em horas.
func (s *Shift) Hours() float64 {
	return grid.CalculateHoursBetween(s.StartTime, s.EndTime)
}

// Span projeta o turno na grade.
func (s *Shift) Span() grid.ShiftSpan {
	return grid.ShiftSpan{EmployeeID: s.EmployeeID, Start: s.StartTime, End: s.EndTime}
}

// Bounds retorna o início e o fim absolutos do turno.
func (s *Shift) Bounds() (time.Time, time.Time, error) {
	return grid.ShiftBounds(s.Date, s.StartTime, s.EndTime)
}

// Overlaps indica se os dois turnos se sobrepõem no tempo, considerando a
// virada da meia-noite.
func (s *Shift) Overlaps(other *Shift) bool {
	from, to, err := s.Bounds()
	if err != nil {
		return false
	}
	otherFrom, otherTo, err := other.Bounds()
	if err != nil {
		return false
	}
	return from.Before(otherTo) && otherFrom.Before(to)
}

type ShiftRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Notes      string `json:"notes"`
}

type UpdateShiftRequest struct {
	ID        string  `json:"id"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Notes     *string `json:"notes"`
}

type ShiftFilter struct {
	CompanyID  string
	EmployeeID string
	StartDate  string
	EndDate    string
}

// BulkShiftRequest carrega a seleção de rótulos de um funcionário em um dia.
// Os rótulos são consolidados em turnos antes de serem criados.
type BulkShiftRequest struct {
	EmployeeID string   `json:"employeeId"`
	Date       string   `json:"date"`
	Labels     []string `json:"labels"`
	StartHour  *int     `json:"startHour"`
	EndHour    *int     `json:"endHour"`
}

type ShiftStatus string

const (
	ShiftStatusPending   ShiftStatus = "pending"
	ShiftStatusConfirmed ShiftStatus = "confirmed"
	ShiftStatusFailed    ShiftStatus = "failed"
)

// ShiftOutcome é o resultado individual de cada turno de uma criação em lote.
type ShiftOutcome struct {
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Status    ShiftStatus `json:"status"`
	ShiftID   string      `json:"shiftId,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type BulkResult struct {
	Added    int            `json:"added"`
	Errors   int            `json:"errors"`
	Total    int            `json:"total"`
	Outcomes []ShiftOutcome `json:"outcomes"`
}
