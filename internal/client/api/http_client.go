package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// HTTPClient talks to the backend over its JSON API. A cookie jar carries the
// session cookie between calls, matching how a browser would hold it.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the backend at baseURL.
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

type authPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// SignIn exchanges credentials for a session. The session cookie lands in the
// jar; the user and token are returned for the caller to persist.
func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var res authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signin", body, &res); err != nil {
		return nil, err
	}
	return &Session{User: res.User, Token: res.Token}, nil
}

// SignUp registers a new account and, when the backend establishes a session
// for it, returns that session.
func (c *HTTPClient) SignUp(ctx context.Context, email, name, password string) (*Session, error) {
	body := map[string]string{"email": email, "name": name, "password": password}

	var res authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", body, &res); err != nil {
		return nil, err
	}
	return &Session{User: res.User, Token: res.Token}, nil
}

// SignOut tears down the server-side session. Signing out without a session
// is not an error.
func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

// Me returns the user bound to the current session.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies a partial profile update to the signed-in user and returns
// the updated user.
func (c *HTTPClient) UpdateMe(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPatch, "/api/users/me", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// doJSON performs one request/response cycle: marshals body (if any), issues
// the request, maps error statuses to sentinel errors, and unmarshals the
// response into out (if non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// mapError converts an error response into a sentinel the caller can match
// with errors.Is.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var ep errorPayload
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&ep); err == nil && ep.Error != "" {
		msg = ep.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if msg == common.ErrInvalidCredentials.Error() {
			return common.ErrInvalidCredentials
		}
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return common.ErrUserNotFound
	case http.StatusConflict:
		return common.ErrEmailAlreadyInUse
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}
