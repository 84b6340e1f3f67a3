package dashboard

import (
	"testing"

	"clearview-backend/client"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeRevenueSingleMonth(t *testing.T) {
	summary := SummarizeRevenue([]client.MonthRevenue{
		{Month: "May 2025", Paid: 2000, Unpaid: 1000},
	})

	require.Len(t, summary.Months, 1)
	assert.Equal(t, "May 2025", summary.Months[0].Month)
	assert.True(t, summary.Months[0].Total.Equal(decimal.NewFromInt(3000)))

	assert.True(t, summary.Paid.Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.Unpaid.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(3000)))
}

func TestSummarizeRevenueGrandTotals(t *testing.T) {
	summary := SummarizeRevenue([]client.MonthRevenue{
		{Month: "January 2025", Paid: 1000, Unpaid: 500},
		{Month: "February 2025", Paid: 1500, Unpaid: 300},
	})

	require.Len(t, summary.Months, 2)
	assert.True(t, summary.Paid.Equal(decimal.NewFromInt(2500)))
	assert.True(t, summary.Unpaid.Equal(decimal.NewFromInt(800)))
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(3300)))
}

func TestSummarizeRevenueEmpty(t *testing.T) {
	summary := SummarizeRevenue(nil)

	assert.Empty(t, summary.Months)
	assert.True(t, summary.Total.IsZero())
}
