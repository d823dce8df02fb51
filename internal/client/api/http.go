package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/forcreators/forcreators-cli/internal/client/models"
)

// HTTPClient implements Client against a fixed base origin.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a gateway for the given base origin (no trailing
// slash required). A zero timeout means requests wait indefinitely, which is
// the historical behavior of the app; context cancellation still applies.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues one JSON request. body and out may be nil. Every failure comes
// back as *Error; on success the response body is decoded into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Message: GenericMessage, Err: err}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: GenericMessage, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: GenericMessage, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: GenericMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindHTTP, Status: resp.StatusCode, Message: detailMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindDecode, Message: GenericMessage, Err: err}
		}
	}
	return nil
}

// detailMessage lifts the optional "detail" field out of an error body.
// Anything unparsable or empty falls back to the generic message.
func detailMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return GenericMessage
	}
	return payload.Detail
}

func userQuery(userID string) url.Values {
	return url.Values{"user_id": []string{userID}}
}

// Signup creates an account and returns the new user id.
func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	var res struct {
		UserID string `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/signup", nil, req, &res); err != nil {
		return "", err
	}
	return res.UserID, nil
}

// Login resolves credentials to a user id.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var res struct {
		UserID string `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, req, &res); err != nil {
		return "", err
	}
	return res.UserID, nil
}

// GetUser fetches the identity record, including the nested plan.
func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/user", userQuery(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMediaKit fetches a fresh media kit snapshot for the user.
func (c *HTTPClient) GetMediaKit(ctx context.Context, userID string) (*models.MediaKit, error) {
	var kit models.MediaKit
	if err := c.do(ctx, http.MethodGet, "/api/media-kit", userQuery(userID), nil, &kit); err != nil {
		return nil, err
	}
	return &kit, nil
}

// GetProfileTips fetches the advisory tips for the user.
func (c *HTTPClient) GetProfileTips(ctx context.Context, userID string) (*models.ProfileTips, error) {
	var tips models.ProfileTips
	if err := c.do(ctx, http.MethodGet, "/api/profile-tips", userQuery(userID), nil, &tips); err != nil {
		return nil, err
	}
	return &tips, nil
}

// SendContact submits the contact form. The success body is irrelevant and
// is discarded.
func (c *HTTPClient) SendContact(ctx context.Context, req models.ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/api/contact", nil, req, nil)
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
