package api

import (
	"context"
	"net/http"

	"github.com/MahirAsef999/E-Buy/internal/session"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type LoginResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

func (ac *AuthClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := ac.c.Call(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

type RegisterRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Address   *string `json:"address"`
}

func (ac *AuthClient) Register(ctx context.Context, req RegisterRequest) error {
	return ac.c.Call(ctx, http.MethodPost, "/auth/register", req, nil)
}
