package api

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	Token string      `json:"token"`
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// User returns the summary snapshot carried by the response.
func (r *AuthResponse) User() models.UserSummary {
	return models.UserSummary{ID: r.ID, Name: r.Name, Email: r.Email, Role: r.Role}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) (*AuthResponse, error) {
	var resp AuthResponse
	req := registerRequest{Name: name, Email: email, Password: password, Role: role}
	if err := c.post(ctx, "/auth/register", req, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}
