package client

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id uint) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, req JobRequest) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id uint, update JobUpdate) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), update, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) MarkJobPaid(ctx context.Context, id uint) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/jobs/%d/mark-paid", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil)
}

// Revenue fetches the backend's monthly aggregates. The backend owns the
// month grouping; clients only sum.
func (c *Client) Revenue(ctx context.Context) ([]MonthRevenue, error) {
	var months []MonthRevenue
	if err := c.do(ctx, http.MethodGet, "/api/jobs/revenue", nil, &months); err != nil {
		return nil, err
	}
	return months, nil
}
