package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/optifit/web/internal/model"
)

var ErrMissingToken = errors.New("backend returned no token")

type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	data, err := c.do(ctx, nil, http.MethodPost, "/auth/register", nil, in)
	if err != nil {
		return nil, err
	}
	return decodeAuth(data)
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	data, err := c.do(ctx, nil, http.MethodPost, "/auth/login", nil, loginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeAuth(data)
}

func decodeAuth(data []byte) (*AuthResult, error) {
	var res AuthResult
	err := decode(data, "", &res)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, ErrMissingToken
	}
	return &res, nil
}
