// services/overdue_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"clearview-backend/models"
	"clearview-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// OverdueService sends each user a daily digest of unpaid jobs whose date
// has passed, over SMS when Twilio is configured and into the log otherwise.
type OverdueService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewOverdueService(db *gorm.DB) *OverdueService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &OverdueService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *OverdueService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendDailyDigests)

	c.Start()
	log.Println("Overdue digest scheduler started")
}

func (s *OverdueService) SendDailyDigests() {
	log.Println("Starting overdue digest processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserDigest(user)
	}

	log.Println("Overdue digest processing completed")
}

func (s *OverdueService) ProcessUserDigest(user models.User) {
	overdue, total, err := s.overdueJobs(user.ID, time.Now())
	if err != nil {
		log.Printf("User %d: failed to collect overdue jobs: %v", user.ID, err)
		return
	}
	if len(overdue) == 0 {
		return
	}

	message := fmt.Sprintf("ClearView: %d unpaid past job(s) totalling $%s. Oldest: %s on %s.",
		len(overdue), total.StringFixed(2), displayName(overdue[0]), overdue[0].JobDate)

	if s.from == "" || user.Phone == "" {
		log.Printf("User %d: %s", user.ID, message)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("User %d: failed to send digest SMS: %v", user.ID, err)
	}
}

// overdueJobs returns the user's unpaid jobs dated before today, oldest
// first, with their summed price.
func (s *OverdueService) overdueJobs(userID uint, now time.Time) ([]models.Job, decimal.Decimal, error) {
	var jobs []models.Job
	if err := s.db.Preload("Customer").
		Where("created_by_id = ? AND paid = ?", userID, false).
		Order("job_date").
		Find(&jobs).Error; err != nil {
		return nil, decimal.Zero, err
	}

	today := utils.BeginningOfDay(now)
	total := decimal.Zero
	var overdue []models.Job
	for _, job := range jobs {
		date, err := utils.ParseJobDate(job.JobDate)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if utils.BeginningOfDay(date).Before(today) {
			overdue = append(overdue, job)
			total = total.Add(decimal.NewFromFloat(job.Price))
		}
	}
	return overdue, total, nil
}

func displayName(job models.Job) string {
	if job.Customer != nil {
		return job.Customer.Name
	}
	return job.CustomerName
}
