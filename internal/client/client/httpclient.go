package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ratemystore/internal/client/models"
	"github.com/dmitrijs2005/ratemystore/internal/common"
	"github.com/dmitrijs2005/ratemystore/internal/logging"
)

// HTTPClient talks JSON over REST to the backend. One instance is shared by
// every screen; it holds no per-user state beyond the TokenSource callback.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type usersResponse struct {
	Data []models.User `json:"data"`
}

type storesResponse struct {
	Data []models.Store `json:"data"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.User, string, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, false, &out)
	if err != nil {
		return models.User{}, "", err
	}
	return out.User, out.Token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", nil, req, false, nil)
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	var out messageResponse
	body := updatePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/auth/update-password", nil, body, true, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) AdminDashboard(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, true, &out); err != nil {
		return models.DashboardSummary{}, err
	}
	return out, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, filters map[string]string) ([]models.User, error) {
	params := url.Values{}
	for k, v := range filters {
		params.Set(k, v)
	}
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", params, nil, true, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(id), nil, nil, true, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/users", nil, req, true, nil)
}

func (c *HTTPClient) OwnerStoreRatings(ctx context.Context) ([]models.Store, error) {
	var out storesResponse
	if err := c.do(ctx, http.MethodGet, "/owner/stores/ratings", nil, nil, true, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// do performs one request/response cycle: encode the body, attach headers
// (and the bearer token for authenticated calls), execute, and decode
// either the payload or the backend's {message} error envelope.
func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any, authed bool, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if authed {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, common.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		c.log.Debug(ctx, "api error response", "status", resp.StatusCode, "request_id", requestID)
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
		}
	}
	return nil
}
