package dashboard

import (
	"clearview-backend/client"

	"github.com/shopspring/decimal"
)

// MonthTotal is one month of the revenue view with its computed total.
type MonthTotal struct {
	Month  string
	Paid   decimal.Decimal
	Unpaid decimal.Decimal
	Total  decimal.Decimal
}

// RevenueSummary is the monthly breakdown plus grand totals across all
// months.
type RevenueSummary struct {
	Months []MonthTotal

	Paid   decimal.Decimal
	Unpaid decimal.Decimal
	Total  decimal.Decimal
}

// SummarizeRevenue computes per-month and grand totals from the backend's
// monthly aggregates. The backend owns the month grouping; nothing is
// re-bucketed here.
func SummarizeRevenue(months []client.MonthRevenue) RevenueSummary {
	summary := RevenueSummary{
		Months: make([]MonthTotal, 0, len(months)),
		Paid:   decimal.Zero,
		Unpaid: decimal.Zero,
	}

	for _, month := range months {
		paid := decimal.NewFromFloat(month.Paid)
		unpaid := decimal.NewFromFloat(month.Unpaid)

		summary.Months = append(summary.Months, MonthTotal{
			Month:  month.Month,
			Paid:   paid,
			Unpaid: unpaid,
			Total:  paid.Add(unpaid),
		})
		summary.Paid = summary.Paid.Add(paid)
		summary.Unpaid = summary.Unpaid.Add(unpaid)
	}

	summary.Total = summary.Paid.Add(summary.Unpaid)
	return summary
}
