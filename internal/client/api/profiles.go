package api

import (
	"context"
	"net/url"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

func (c *Client) EmployeeProfile(ctx context.Context, email string) (*models.EmployeeProfile, error) {
	var p models.EmployeeProfile
	if err := c.get(ctx, "/employees/"+url.PathEscape(email), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateEmployeeProfile(ctx context.Context, p models.EmployeeProfile) (*models.EmployeeProfile, error) {
	var saved models.EmployeeProfile
	if err := c.post(ctx, "/employees/update", p, &saved, nil); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) RecruiterProfile(ctx context.Context, email string) (*models.RecruiterProfile, error) {
	var p models.RecruiterProfile
	if err := c.get(ctx, "/recruiters/"+url.PathEscape(email), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) SaveRecruiterProfile(ctx context.Context, p models.RecruiterProfile) (*models.RecruiterProfile, error) {
	var saved models.RecruiterProfile
	if err := c.post(ctx, "/recruiters/save", p, &saved, nil); err != nil {
		return nil, err
	}
	return &saved, nil
}
