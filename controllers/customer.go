// controllers/customer.go
package controllers

import (
	"net/http"
	"strings"

	"clearview-backend/config"
	"clearview-backend/models"
	"clearview-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address" binding:"required"`
}

// CreateCustomer creates a new customer for the signed-in user
func CreateCustomer(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name and address are required")
		return
	}

	customer := models.Customer{
		CreatedByID: userID.(uint),
		Name:        strings.TrimSpace(input.Name),
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     strings.TrimSpace(input.Address),
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers for the signed-in user
func GetCustomers(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var customers []models.Customer
	if err := config.DB.Where("created_by_id = ?", userID).
		Order("name").
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}
