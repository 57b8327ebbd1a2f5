package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DailySales guarda a venda estimada de um dia e o custo por hora de
// funcionário usado no cálculo do custo de mão de obra.
type DailySales struct {
	CompanyID           string          `json:"companyId"`
	Date                string          `json:"date"`
	EstimatedSales      decimal.Decimal `json:"estimatedSales"`
	HourlyEmployeeCost  decimal.Decimal `json:"hourlyEmployeeCost"`
	ScheduledHours      float64         `json:"scheduledHours"`
	LaborCost           decimal.Decimal `json:"laborCost"`
	LaborCostPercentage decimal.Decimal `json:"laborCostPercentage"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

type DailySalesRequest struct {
	Date               string          `json:"date"`
	EstimatedSales     decimal.Decimal `json:"estimatedSales"`
	HourlyEmployeeCost decimal.Decimal `json:"hourlyEmployeeCost"`
}

// ApplyScheduledHours calcula custo e percentual de mão de obra a partir das
// horas escaladas no dia.
func (d *DailySales) ApplyScheduledHours(hours float64) {
	d.ScheduledHours = hours
	d.LaborCost = d.HourlyEmployeeCost.Mul(decimal.NewFromFloat(hours)).Round(2)
	d.LaborCostPercentage = LaborCostPercentage(hours, d.HourlyEmployeeCost, d.EstimatedSales)
}

// LaborCostPercentage = horas × custo por hora / venda estimada × 100, com
// duas casas decimais. Venda zerada resulta em 0.
func LaborCostPercentage(hours float64, hourlyCost, estimatedSales decimal.Decimal) decimal.Decimal {
	if !estimatedSales.IsPositive() {
		return decimal.Zero
	}

	cost := hourlyCost.Mul(decimal.NewFromFloat(hours))
	return cost.Div(estimatedSales).Mul(hundred).Round(2)
}
