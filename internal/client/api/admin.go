package api

import (
	"context"
	"net/url"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/admins/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	path := "/admins/users/role?role=" + url.QueryEscape(string(role))
	if err := c.get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type userStatusRequest struct {
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) SetUserStatus(ctx context.Context, email string, isActive bool) error {
	return c.put(ctx, "/admins/users/status", userStatusRequest{Email: email, IsActive: isActive}, nil)
}

func (c *Client) SystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	var status models.SystemStatus
	if err := c.get(ctx, "/admins/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
