package controllers

import (
	"testing"

	"clearview-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRevenueGroupsByCalendarMonth(t *testing.T) {
	jobs := []models.Job{
		{JobDate: "2025-05-01", Price: 1200, Paid: true},
		{JobDate: "2025-05-20T14:00:00", Price: 800, Paid: true},
		{JobDate: "2025-05-28", Price: 1000, Paid: false},
		{JobDate: "2025-06-03", Price: 400, Paid: false},
	}

	report, err := monthlyRevenue(jobs)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "May 2025", report[0].Month)
	assert.Equal(t, 2000.0, report[0].Paid)
	assert.Equal(t, 1000.0, report[0].Unpaid)

	assert.Equal(t, "June 2025", report[1].Month)
	assert.Equal(t, 0.0, report[1].Paid)
	assert.Equal(t, 400.0, report[1].Unpaid)
}

func TestMonthlyRevenueOrdersMonthsChronologically(t *testing.T) {
	jobs := []models.Job{
		{JobDate: "2025-06-03", Price: 1, Paid: false},
		{JobDate: "2024-12-20", Price: 2, Paid: true},
		{JobDate: "2025-01-15", Price: 3, Paid: false},
	}

	report, err := monthlyRevenue(jobs)
	require.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, "December 2024", report[0].Month)
	assert.Equal(t, "January 2025", report[1].Month)
	assert.Equal(t, "June 2025", report[2].Month)
}

func TestMonthlyRevenueFailsOnCorruptDate(t *testing.T) {
	_, err := monthlyRevenue([]models.Job{{JobDate: "bogus", Price: 1}})
	assert.Error(t, err)
}

func TestMonthlyRevenueEmpty(t *testing.T) {
	report, err := monthlyRevenue(nil)
	require.NoError(t, err)
	assert.Empty(t, report)
}
