package api

import (
	"context"
	"net/url"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

func (c *Client) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.get(ctx, "/jobposts", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) SearchJobs(ctx context.Context, term string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.get(ctx, "/jobposts/search/"+url.PathEscape(term), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) JobsByRecruiter(ctx context.Context, email string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := c.get(ctx, "/jobposts/recruiters/"+url.PathEscape(email), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, job models.NewJobPosting) (*models.JobPosting, error) {
	var created models.JobPosting
	if err := c.post(ctx, "/jobposts", job, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}
