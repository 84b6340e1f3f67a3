// controllers/job.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"clearview-backend/config"
	"clearview-backend/models"
	"clearview-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateJobInput defines the expected JSON structure for creating a job.
// Either customerId links an existing customer, or customerName/address
// describe a manual entry.
type CreateJobInput struct {
	Service      string  `json:"service"`
	JobDate      string  `json:"jobDate" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Notes        string  `json:"notes"`
	CustomerID   *uint   `json:"customerId"`
	CustomerName *string `json:"customerName"`
	Address      *string `json:"address"`
}

// UpdateJobInput uses pointer fields so the edit screen can send explicit
// nulls; nil fields leave the stored value untouched.
type UpdateJobInput struct {
	Service      *string  `json:"service"`
	JobDate      *string  `json:"jobDate"`
	Price        *float64 `json:"price"`
	Notes        *string  `json:"notes"`
	CustomerName *string  `json:"customerName"`
	Address      *string  `json:"address"`
}

// JobDto is the wire shape for a job. Linked customers contribute the
// display name and address.
type JobDto struct {
	ID            uint    `json:"id"`
	Service       string  `json:"service"`
	CustomerName  string  `json:"customerName"`
	Address       string  `json:"address"`
	JobDate       string  `json:"jobDate"`
	Price         float64 `json:"price"`
	Notes         string  `json:"notes"`
	Paid          bool    `json:"paid"`
	CustomerID    *uint   `json:"customerId,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`
}

func toJobDto(job models.Job) JobDto {
	dto := JobDto{
		ID:            job.ID,
		Service:       job.Service,
		CustomerName:  job.CustomerName,
		Address:       job.Address,
		JobDate:       job.JobDate,
		Price:         job.Price,
		Notes:         job.Notes,
		Paid:          job.Paid,
		CustomerID:    job.CustomerID,
		InvoiceNumber: job.InvoiceNumber,
	}
	if job.Customer != nil {
		dto.CustomerName = job.Customer.Name
		dto.Address = job.Customer.Address
	}
	return dto
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return 0, false
	}
	return userID.(uint), true
}

func jobParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return 0, false
	}
	return uint(id), true
}

// CreateJob creates a new job for the signed-in user
func CreateJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Reject unparseable dates here so every stored job classifies cleanly
	if _, err := utils.ParseJobDate(input.JobDate); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job date")
		return
	}

	service := input.Service
	if service == "" {
		service = "Window Cleaning"
	}

	job := models.Job{
		CreatedByID: userID,
		Service:     service,
		JobDate:     input.JobDate,
		Price:       input.Price,
		Notes:       input.Notes,
	}

	var linked *models.Customer
	if input.CustomerID != nil {
		// From-customer tab: the link must point at one of the user's customers
		var customer models.Customer
		if err := config.DB.Where("created_by_id = ? AND id = ?", userID, *input.CustomerID).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		job.CustomerID = &customer.ID
		linked = &customer
	} else {
		// Manual entry
		if input.CustomerName == nil || strings.TrimSpace(*input.CustomerName) == "" ||
			input.Address == nil || strings.TrimSpace(*input.Address) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer name and address are required")
			return
		}
		job.CustomerName = strings.TrimSpace(*input.CustomerName)
		job.Address = strings.TrimSpace(*input.Address)
	}

	if err := config.DB.Create(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}
	job.Customer = linked

	c.JSON(http.StatusCreated, toJobDto(job))
}

// GetJobs retrieves all jobs for the signed-in user
func GetJobs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var jobs []models.Job
	if err := config.DB.Preload("Customer").
		Where("created_by_id = ?", userID).
		Order("id").
		Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}

	dtos := make([]JobDto, 0, len(jobs))
	for _, job := range jobs {
		dtos = append(dtos, toJobDto(job))
	}

	c.JSON(http.StatusOK, dtos)
}

// GetJob retrieves a specific job by ID
func GetJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobParam(c)
	if !ok {
		return
	}

	var job models.Job
	if err := config.DB.Preload("Customer").
		Where("created_by_id = ? AND id = ?", userID, jobID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, toJobDto(job))
}

// UpdateJob replaces the provided fields of an existing job
func UpdateJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobParam(c)
	if !ok {
		return
	}

	var input UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var job models.Job
	if err := config.DB.Where("created_by_id = ? AND id = ?", userID, jobID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Service != nil {
		job.Service = *input.Service
	}
	if input.JobDate != nil {
		if _, err := utils.ParseJobDate(*input.JobDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid job date")
			return
		}
		job.JobDate = *input.JobDate
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
			return
		}
		job.Price = *input.Price
	}
	if input.Notes != nil {
		job.Notes = *input.Notes
	}
	if input.CustomerName != nil {
		job.CustomerName = *input.CustomerName
	}
	if input.Address != nil {
		job.Address = *input.Address
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, toJobDto(job))
}

// MarkJobPaid transitions a job to paid and stamps its invoice number
func MarkJobPaid(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobParam(c)
	if !ok {
		return
	}

	var job models.Job
	if err := config.DB.Preload("Customer").
		Where("created_by_id = ? AND id = ?", userID, jobID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	job.Paid = true
	if job.InvoiceNumber == "" {
		job.InvoiceNumber = fmt.Sprintf("INV-%d", job.ID)
	}

	if err := config.DB.Omit("Customer").Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, toJobDto(job))
}

// DeleteJob removes a job
func DeleteJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	jobID, ok := jobParam(c)
	if !ok {
		return
	}

	result := config.DB.Where("created_by_id = ? AND id = ?", userID, jobID).
		Delete(&models.Job{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		return
	}

	c.Status(http.StatusNoContent)
}
