package dashboard

import (
	"context"
	"errors"
	"testing"

	"clearview-backend/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreatorAPI struct {
	createJobCalls      int
	createCustomerCalls int
	updateJobCalls      int

	createJobErr error

	lastJobRequest client.JobRequest
	lastJobUpdate  client.JobUpdate
}

func (f *fakeCreatorAPI) CreateJob(ctx context.Context, req client.JobRequest) (*client.Job, error) {
	f.createJobCalls++
	f.lastJobRequest = req
	if f.createJobErr != nil {
		return nil, f.createJobErr
	}
	return &client.Job{ID: 7, JobDate: req.JobDate, Price: req.Price}, nil
}

func (f *fakeCreatorAPI) CreateCustomer(ctx context.Context, req client.CustomerRequest) (*client.Customer, error) {
	f.createCustomerCalls++
	return &client.Customer{ID: 3, Name: req.Name, Address: req.Address}, nil
}

func (f *fakeCreatorAPI) UpdateJob(ctx context.Context, id uint, update client.JobUpdate) (*client.Job, error) {
	f.updateJobCalls++
	f.lastJobUpdate = update
	return &client.Job{ID: id}, nil
}

func TestNewJobFormAllFieldsInvalidYieldsFourErrors(t *testing.T) {
	form := &NewJobForm{
		Mode:  ModeManual,
		Price: "0",
	}
	api := &fakeCreatorAPI{}
	notify := &fakeNotifier{}

	job, errs, err := form.Submit(context.Background(), api, notify)
	require.NoError(t, err)

	assert.Nil(t, job)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "customerName")
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "jobDate")
	assert.Contains(t, errs, "price")
	assert.Zero(t, api.createJobCalls, "no network call on validation failure")
}

func TestNewJobFormValidationCases(t *testing.T) {
	tests := []struct {
		name      string
		form      NewJobForm
		wantField string
	}{
		{
			name: "negative price",
			form: NewJobForm{Mode: ModeManual, CustomerName: "A", Address: "B",
				JobDate: "2025-06-15", Price: "-5"},
			wantField: "price",
		},
		{
			name: "price not a number",
			form: NewJobForm{Mode: ModeManual, CustomerName: "A", Address: "B",
				JobDate: "2025-06-15", Price: "abc"},
			wantField: "price",
		},
		{
			name: "whitespace-only customer name",
			form: NewJobForm{Mode: ModeManual, CustomerName: "   ", Address: "B",
				JobDate: "2025-06-15", Price: "10"},
			wantField: "customerName",
		},
		{
			name: "unparseable date",
			form: NewJobForm{Mode: ModeManual, CustomerName: "A", Address: "B",
				JobDate: "15/06/2025", Price: "10"},
			wantField: "jobDate",
		},
		{
			name:      "missing customer selection",
			form:      NewJobForm{Mode: ModeFromCustomer, JobDate: "2025-06-15", Price: "10"},
			wantField: "selectedCustomer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestNewJobFormManualPayload(t *testing.T) {
	form := &NewJobForm{
		Mode:         ModeManual,
		CustomerName: "Greenwood Residence",
		Address:      "1234 Maple St",
		JobDate:      "2025-06-20",
		Price:        "120.50",
		Notes:        "side gate",
	}
	api := &fakeCreatorAPI{}
	notify := &fakeNotifier{}

	created, errs, err := form.Submit(context.Background(), api, notify)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, created)

	req := api.lastJobRequest
	assert.Equal(t, "Window Cleaning", req.Service)
	assert.Equal(t, 120.50, req.Price)
	require.NotNil(t, req.CustomerName)
	assert.Equal(t, "Greenwood Residence", *req.CustomerName)
	assert.Nil(t, req.CustomerID)
	assert.Equal(t, []string{"Job created!"}, notify.successes)
}

func TestNewJobFormFromCustomerPayloadSendsLinkOnly(t *testing.T) {
	form := &NewJobForm{
		Mode:     ModeFromCustomer,
		Customer: &client.Customer{ID: 9, Name: "Harper Dental", Address: "88 W 8th Ave"},
		JobDate:  "2025-06-20",
		Price:    "180",
	}
	api := &fakeCreatorAPI{}

	_, errs, err := form.Submit(context.Background(), api, &fakeNotifier{})
	require.NoError(t, err)
	require.Empty(t, errs)

	req := api.lastJobRequest
	require.NotNil(t, req.CustomerID)
	assert.Equal(t, uint(9), *req.CustomerID)
	assert.Nil(t, req.CustomerName, "name travels as explicit null")
	assert.Nil(t, req.Address)
}

func TestNewJobFormKeepsValuesOnRequestFailure(t *testing.T) {
	form := &NewJobForm{
		Mode:         ModeManual,
		CustomerName: "A",
		Address:      "B",
		JobDate:      "2025-06-20",
		Price:        "10",
	}
	api := &fakeCreatorAPI{createJobErr: errors.New("boom")}
	notify := &fakeNotifier{}

	job, errs, err := form.Submit(context.Background(), api, notify)
	assert.Error(t, err)
	assert.Nil(t, job)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"Failed to create job"}, notify.errors)
	assert.Equal(t, "A", form.CustomerName, "entered values stay intact")
	assert.Equal(t, "10", form.Price)
}

func TestNewCustomerFormValidation(t *testing.T) {
	form := &NewCustomerForm{Name: "  ", Address: ""}
	api := &fakeCreatorAPI{}

	customer, errs, err := form.Submit(context.Background(), api, &fakeNotifier{})
	require.NoError(t, err)
	assert.Nil(t, customer)
	assert.Len(t, errs, 2)
	assert.Zero(t, api.createCustomerCalls)
}

func TestNewCustomerFormSubmit(t *testing.T) {
	form := &NewCustomerForm{Name: "Riverview Apartments", Address: "512 River Rd"}
	api := &fakeCreatorAPI{}
	notify := &fakeNotifier{}

	customer, errs, err := form.Submit(context.Background(), api, notify)
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, customer)
	assert.Equal(t, 1, api.createCustomerCalls)
	assert.Equal(t, []string{"Customer created successfully!"}, notify.successes)
}

func TestEditJobFormSendsExplicitNulls(t *testing.T) {
	service := "Gutter Cleaning"
	form := &EditJobForm{
		JobID:   5,
		Service: &service,
		// everything else deliberately nil
	}
	api := &fakeCreatorAPI{}

	_, err := form.Submit(context.Background(), api, &fakeNotifier{})
	require.NoError(t, err)

	update := api.lastJobUpdate
	require.NotNil(t, update.Service)
	assert.Equal(t, "Gutter Cleaning", *update.Service)
	assert.Nil(t, update.Notes)
	assert.Nil(t, update.Price)
	assert.Nil(t, update.JobDate)
}
