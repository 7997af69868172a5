// Package client is a Go client for the storefront API. Cart and wishlist
// state is mirrored locally and mutated optimistically: a mutation lands in
// the mirror first, then the matching request is sent. A failed request does
// not roll the mirror back; the mirrors are refetched only when the identity
// changes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrLoginRequired is returned by operations that need an authenticated
// identity before any request is issued.
var ErrLoginRequired = errors.New("login required")

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
	user  *User

	Cart     *CartMirror
	Wishlist *WishlistMirror
}

func New(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	c.Cart = &CartMirror{client: c}
	c.Wishlist = &WishlistMirror{client: c}
	return c
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  User `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	c.setIdentity(ctx, res.Token, res.User)
	return &res.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	c.setIdentity(ctx, res.Token, res.User)
	return &res.User, nil
}

// Logout drops the identity and empties both mirrors.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()

	c.Cart.clear()
	c.Wishlist.clear()
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) User() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Client) authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// setIdentity installs the new identity and refetches both mirrors; this is
// the only point where server state overwrites the optimistic local state.
func (c *Client) setIdentity(ctx context.Context, token string, user User) {
	c.mu.Lock()
	c.token = token
	c.user = &user
	c.mu.Unlock()

	_ = c.Cart.Refresh(ctx)
	_ = c.Wishlist.Refresh(ctx)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
