package domain

import (
	"time"

	"github.com/vfg2006/shift-scheduler-api/pkg/utils"
)

type Employee struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"companyId"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	MaxHoursPerWeek float64   `json:"maxHoursPerWeek"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateEmployeeRequest struct {
	CompanyID       string  `json:"companyId"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	MaxHoursPerWeek float64 `json:"maxHoursPerWeek"`
}

type UpdateEmployeeRequest struct {
	ID              string   `json:"id"`
	Name            *string  `json:"name"`
	Role            *string  `json:"role"`
	MaxHoursPerWeek *float64 `json:"maxHoursPerWeek"`
	Active          *bool    `json:"active"`
}

// EmployeeWeeklySummary compara as horas escaladas na semana com o limite
// semanal do funcionário.
type EmployeeWeeklySummary struct {
	Employee
	WeekStartDate  string  `json:"weekStartDate"`
	ScheduledHours float64 `json:"scheduledHours"`
	RemainingHours float64 `json:"remainingHours"`
	OverBudget     bool    `json:"overBudget"`
}

// NewEmployeeWeeklySummary monta o resumo a partir das horas já somadas.
// Sem limite configurado (0) o funcionário nunca fica acima do orçamento.
func NewEmployeeWeeklySummary(employee Employee, weekStartDate string, scheduledHours float64) EmployeeWeeklySummary {
	summary := EmployeeWeeklySummary{
		Employee:       employee,
		WeekStartDate:  weekStartDate,
		ScheduledHours: utils.RoundWithTwoDecimalPlace(scheduledHours),
	}

	if employee.MaxHoursPerWeek > 0 {
		summary.RemainingHours = utils.RoundWithTwoDecimalPlace(employee.MaxHoursPerWeek - scheduledHours)
		summary.OverBudget = scheduledHours > employee.MaxHoursPerWeek
	}

	return summary
}
