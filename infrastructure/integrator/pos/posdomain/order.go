package posdomain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StatusCanceled marca vendas canceladas no PDV, que não entram nos totais.
const StatusCanceled = "CANCELADA"

type Order struct {
	ID        int             `json:"id,omitempty"`
	Date      string          `json:"data,omitempty"`
	Time      string          `json:"hora,omitempty"`
	Status    string          `json:"status,omitempty"`
	Number    int             `json:"numero,omitempty"`
	Gross     decimal.Decimal `json:"valor_bruto"`
	Discount  decimal.Decimal `json:"desconto"`
	NetAmount decimal.Decimal `json:"valor_liquido"`
}

// DailyTotal é a soma líquida das vendas de um dia.
type DailyTotal struct {
	Date   string
	Amount decimal.Decimal
	Orders int
}

// SumNetAmountByDate agrupa as vendas por data, ignorando canceladas. O
// resultado vem ordenado por data.
func SumNetAmountByDate(orders []Order) []DailyTotal {
	totals := map[string]*DailyTotal{}
	for _, order := range orders {
		if order.Status == StatusCanceled || order.Date == "" {
			continue
		}
		total, ok := totals[order.Date]
		if !ok {
			total = &DailyTotal{Date: order.Date}
			totals[order.Date] = total
		}
		total.Amount = total.Amount.Add(order.NetAmount)
		total.Orders++
	}

	result := make([]DailyTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, *total)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}
