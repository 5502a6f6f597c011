package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"katalog/internal/models"
)

// Client is an HTTP implementation of Service against the REST backend.
// It holds the session token obtained from Signup or Login and sends it as
// a bearer token on every product request.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken installs a session token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

// Logout clears the session token. This is purely client-side; the backend
// keeps no revocation list and the token stays valid until it expires.
func (c *Client) Logout() {
	c.token = ""
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type listResponse struct {
	Products []models.Product `json:"products"`
}

type productResponse struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup registers a new account and stores the issued session token.
func (c *Client) Signup(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// Login authenticates and stores the issued session token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// List retrieves all products, newest first.
func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// Mine retrieves the caller's own products, newest first.
func (c *Client) Mine(ctx context.Context) ([]models.Product, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/api/products/user/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// Get retrieves a single product by its ID.
func (c *Client) Get(ctx context.Context, id string) (*models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// Create creates a product owned by the authenticated user.
func (c *Client) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodPost, "/api/products", product, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// Update replaces the non-identity fields of a product the caller owns.
func (c *Client) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodPut, "/api/products/"+id, product, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// Delete removes a product the caller owns.
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp messageResponse
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, &resp)
}

// do performs one JSON request/response round trip and maps error statuses
// to the package's sentinel errors.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrUnauthorized
		case http.StatusForbidden:
			return ErrForbidden
		case http.StatusNotFound:
			return ErrNotFound
		}
		if msg.Message != "" {
			return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, msg.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
