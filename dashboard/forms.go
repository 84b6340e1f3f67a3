package dashboard

import (
	"context"
	"strconv"
	"strings"

	"clearview-backend/client"
	"clearview-backend/utils"
)

// FieldErrors maps field name to error message. All errors for a submit
// are collected and shown together.
type FieldErrors map[string]string

type CustomerCreator interface {
	CreateCustomer(ctx context.Context, req client.CustomerRequest) (*client.Customer, error)
}

type JobCreator interface {
	CreateJob(ctx context.Context, req client.JobRequest) (*client.Job, error)
}

type JobUpdater interface {
	UpdateJob(ctx context.Context, id uint, update client.JobUpdate) (*client.Job, error)
}

// NewCustomerForm holds the add-customer screen's uncommitted field values.
type NewCustomerForm struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

func (f *NewCustomerForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Address is required"
	}
	return errs
}

// Submit validates and creates the customer. When validation fails the
// errors come back and no call is made; field values are never cleared.
func (f *NewCustomerForm) Submit(ctx context.Context, api CustomerCreator, notify Notifier) (*client.Customer, FieldErrors, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	customer, err := api.CreateCustomer(ctx, client.CustomerRequest{
		Name:    f.Name,
		Phone:   f.Phone,
		Email:   f.Email,
		Address: f.Address,
	})
	if err != nil {
		notify.Error("Failed to save customer")
		return nil, nil, err
	}
	notify.Success("Customer created successfully!")
	return customer, nil, nil
}

type JobFormMode int

const (
	// ModeManual types the customer name and address by hand.
	ModeManual JobFormMode = iota
	// ModeFromCustomer links an existing customer instead.
	ModeFromCustomer
)

// NewJobForm holds the create-job screen's uncommitted field values.
// Price is kept as entered so a bad number can be reported instead of
// silently coerced.
type NewJobForm struct {
	Mode JobFormMode

	CustomerName string
	Address      string
	Customer     *client.Customer

	Service string
	JobDate string
	Price   string
	Notes   string
}

func (f *NewJobForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if f.Mode == ModeManual {
		if strings.TrimSpace(f.CustomerName) == "" {
			errs["customerName"] = "Customer name is required"
		}
		if strings.TrimSpace(f.Address) == "" {
			errs["address"] = "Address is required"
		}
	} else if f.Customer == nil {
		errs["selectedCustomer"] = "Please select a customer"
	}

	if f.JobDate == "" {
		errs["jobDate"] = "Job date is required"
	} else if _, err := utils.ParseJobDate(f.JobDate); err != nil {
		errs["jobDate"] = "Job date is invalid"
	}

	if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Price must be greater than 0"
	}

	return errs
}

// Payload builds the creation request. Manual mode carries the typed
// name and address; from-customer mode carries only the link, with the
// unused fields as explicit nulls.
func (f *NewJobForm) Payload() client.JobRequest {
	price, _ := strconv.ParseFloat(f.Price, 64)

	service := f.Service
	if service == "" {
		service = "Window Cleaning"
	}

	req := client.JobRequest{
		Service: service,
		JobDate: f.JobDate,
		Price:   price,
		Notes:   f.Notes,
	}
	if f.Mode == ModeFromCustomer {
		req.CustomerID = &f.Customer.ID
	} else {
		name := f.CustomerName
		address := f.Address
		req.CustomerName = &name
		req.Address = &address
	}
	return req
}

func (f *NewJobForm) Submit(ctx context.Context, api JobCreator, notify Notifier) (*client.Job, FieldErrors, error) {
	if errs := f.Validate(); len(errs) > 0 {
		notify.Error("Please fill out all required fields correctly.")
		return nil, errs, nil
	}

	job, err := api.CreateJob(ctx, f.Payload())
	if err != nil {
		notify.Error("Failed to create job")
		return nil, nil, err
	}
	notify.Success("Job created!")
	return job, nil, nil
}

// EditJobForm holds the edit screen's field values. Nil fields were left
// untouched and go to the backend as explicit nulls; there is no client
// side validation here, the backend decides.
type EditJobForm struct {
	JobID uint

	CustomerName *string
	Service      *string
	JobDate      *string
	Price        *float64
	Notes        *string
	Address      *string
}

func (f *EditJobForm) Submit(ctx context.Context, api JobUpdater, notify Notifier) (*client.Job, error) {
	job, err := api.UpdateJob(ctx, f.JobID, client.JobUpdate{
		CustomerName: f.CustomerName,
		Service:      f.Service,
		JobDate:      f.JobDate,
		Price:        f.Price,
		Notes:        f.Notes,
		Address:      f.Address,
	})
	if err != nil {
		notify.Error("Error saving job")
		return nil, err
	}
	notify.Success("Job updated successfully")
	return job, nil
}
