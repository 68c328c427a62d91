package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/common"
)

func (c *Client) ApplicationsByEmployee(ctx context.Context, email string) ([]models.Application, error) {
	var apps []models.Application
	if err := c.get(ctx, "/applications/employee/"+url.PathEscape(email), &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) ApplicationsByRecruiter(ctx context.Context, email string) ([]models.Application, error) {
	var apps []models.Application
	if err := c.get(ctx, "/applications/recruiter/"+url.PathEscape(email), &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Apply submits one application. Each call carries a fresh idempotency key so
// the server can collapse an accidental double submit; the client itself does
// not deduplicate.
func (c *Client) Apply(ctx context.Context, req models.ApplyRequest) (*models.Application, error) {
	headers := http.Header{}
	headers.Set(common.IdempotencyKeyHeaderName, uuid.NewString())

	var app models.Application
	if err := c.post(ctx, "/applications/apply", req, &app, headers); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	var app models.Application
	req := models.StatusUpdateRequest{ApplicationID: id, Status: status}
	if err := c.put(ctx, "/applications/status", req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
