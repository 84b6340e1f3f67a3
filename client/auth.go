package client

import (
	"context"
	"net/http"
	"net/url"
)

// Login exchanges credentials for a bearer token and saves it in the
// session store.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", form, &resp); err != nil {
		return err
	}
	return c.session.Save(resp.Token)
}

// Register creates a new account. It does not sign in; call Login after.
func (c *Client) Register(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return c.do(ctx, http.MethodPost, "/api/auth/register", form, nil)
}

// Logout clears the stored credential.
func (c *Client) Logout() error {
	return c.session.Clear()
}
