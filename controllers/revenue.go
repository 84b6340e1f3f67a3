// controllers/revenue.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"clearview-backend/config"
	"clearview-backend/models"
	"clearview-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MonthRevenue is one row of the monthly revenue report
type MonthRevenue struct {
	Month  string  `json:"month"`
	Paid   float64 `json:"paid"`
	Unpaid float64 `json:"unpaid"`
}

// GetRevenue returns per-month paid/unpaid totals for the signed-in user.
// The route allows anonymous access; without a user there is nothing to sum.
func GetRevenue(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusOK, []MonthRevenue{})
		return
	}

	var jobs []models.Job
	if err := config.DB.Where("created_by_id = ?", userID).
		Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}

	report, err := monthlyRevenue(jobs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to aggregate revenue")
		return
	}

	c.JSON(http.StatusOK, report)
}

type monthTotals struct {
	start  time.Time
	paid   decimal.Decimal
	unpaid decimal.Decimal
}

// monthlyRevenue buckets jobs by calendar month of their job date and sums
// paid and unpaid prices per month, oldest month first.
func monthlyRevenue(jobs []models.Job) ([]MonthRevenue, error) {
	byMonth := make(map[string]*monthTotals)

	for _, job := range jobs {
		date, err := utils.ParseJobDate(job.JobDate)
		if err != nil {
			return nil, err
		}
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		key := utils.MonthLabel(start)

		totals, found := byMonth[key]
		if !found {
			totals = &monthTotals{start: start}
			byMonth[key] = totals
		}

		price := decimal.NewFromFloat(job.Price)
		if job.Paid {
			totals.paid = totals.paid.Add(price)
		} else {
			totals.unpaid = totals.unpaid.Add(price)
		}
	}

	months := make([]*monthTotals, 0, len(byMonth))
	for _, totals := range byMonth {
		months = append(months, totals)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].start.Before(months[j].start)
	})

	report := make([]MonthRevenue, 0, len(months))
	for _, totals := range months {
		report = append(report, MonthRevenue{
			Month:  utils.MonthLabel(totals.start),
			Paid:   totals.paid.InexactFloat64(),
			Unpaid: totals.unpaid.InexactFloat64(),
		})
	}
	return report, nil
}
