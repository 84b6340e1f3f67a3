// Package dashboard holds the job dashboard core: bucket classification,
// revenue aggregation, the confirm/mutate/refresh workflow and the form
// validation used by the create and edit screens.
package dashboard

import (
	"time"

	"clearview-backend/client"
	"clearview-backend/utils"

	"github.com/shopspring/decimal"
)

// Buckets is a strict partition of a job collection: every job lands in
// exactly one of the four slices. Input order is preserved within each
// bucket. UnpaidTotal covers all three unpaid buckets, including jobs
// dated today; PaidTotal covers the paid bucket.
type Buckets struct {
	Today      []client.Job
	Upcoming   []client.Job
	UnpaidPast []client.Job
	Paid       []client.Job

	UnpaidTotal decimal.Decimal
	PaidTotal   decimal.Decimal
}

// Classify partitions jobs against the reference instant now. Rules are
// evaluated in order, first match wins:
//
//  1. paid jobs go to Paid regardless of date
//  2. unpaid jobs on now's calendar day go to Today — so a job from
//     earlier today is Today, not UnpaidPast
//  3. unpaid jobs strictly after now go to Upcoming
//  4. everything else goes to UnpaidPast
//
// A job with an unparseable date fails the whole classification; the
// caller must surface the error instead of showing a wrong bucket.
func Classify(jobs []client.Job, now time.Time) (Buckets, error) {
	buckets := Buckets{
		UnpaidTotal: decimal.Zero,
		PaidTotal:   decimal.Zero,
	}

	for _, job := range jobs {
		price := decimal.NewFromFloat(job.Price)

		if job.Paid {
			buckets.Paid = append(buckets.Paid, job)
			buckets.PaidTotal = buckets.PaidTotal.Add(price)
			continue
		}

		date, err := utils.ParseJobDate(job.JobDate)
		if err != nil {
			return Buckets{}, err
		}

		switch {
		case utils.IsSameDay(date, now):
			buckets.Today = append(buckets.Today, job)
		case date.After(now):
			buckets.Upcoming = append(buckets.Upcoming, job)
		default:
			buckets.UnpaidPast = append(buckets.UnpaidPast, job)
		}
		buckets.UnpaidTotal = buckets.UnpaidTotal.Add(price)
	}

	return buckets, nil
}
