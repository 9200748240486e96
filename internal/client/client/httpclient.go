package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/careerbridge/careerbridge/internal/client/models"
)

// sessionCookieName is the cookie the backend sets on login. Its value is
// additionally mirrored into an Authorization header on every credentialed
// request, matching the backend's bearer-token verification path.
const sessionCookieName = "token"

// HTTPClient implements Client against the backend's JSON API. It keeps a
// cookie jar so the session cookie set by the login endpoint is forwarded on
// every subsequent request (the equivalent of credentials: "include").
//
// All requests share a fixed timeout ceiling; a request exceeding it is
// reported as ErrUnavailable, the same as any other network failure, so a
// hung backend can never leave a caller waiting indefinitely.
type HTTPClient struct {
	base *url.URL
	http *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error { return nil }

// sessionToken returns the current session cookie value, or "" when anonymous.
func (c *HTTPClient) sessionToken() string {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == sessionCookieName {
			return ck.Value
		}
	}
	return ""
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.sessionToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// message pulls the backend's {"message": ...} out of a response body.
// Missing or unreadable bodies yield "".
func message(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return payload.Message
}

// Login posts credentials. A 2xx means the session cookie is now in the jar;
// any other status collapses to ErrUnauthorized without detail, so callers
// cannot tell (and cannot leak) whether the account exists.
func (c *HTTPClient) Login(ctx context.Context, email, password string) error {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return ErrUnauthorized
	}
	return nil
}

// Logout posts to the logout endpoint. The caller treats any failure as
// best-effort; this method just reports it.
func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return ErrUnauthorized
	}
	return nil
}

// Me performs the "who am I" check. The user object may arrive under either
// of the envelope keys the backend has been observed to use ("data" or
// "user"). Non-2xx statuses and malformed bodies both resolve to
// ErrUnauthorized: an unreadable session answer must fail closed to
// anonymous, never crash or guess.
func (c *HTTPClient) Me(ctx context.Context) (*models.SessionUser, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return nil, ErrUnauthorized
	}

	var env struct {
		Data *models.SessionUser `json:"data"`
		User *models.SessionUser `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, ErrUnauthorized
	}
	user := env.Data
	if user == nil {
		user = env.User
	}
	if user == nil || user.UserID == "" {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Register creates an account. The backend message is surfaced both on
// success and on rejection (wrapped in ErrRejected) so the UI can show it.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	msg := message(resp)
	if !ok(resp) {
		if msg == "" {
			msg = "registration failed"
		}
		return "", fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return msg, nil
}

// ResendVerification asks the backend to send the verification email again.
func (c *HTTPClient) ResendVerification(ctx context.Context, email string) (string, error) {
	payload := struct {
		Email string `json:"email"`
	}{email}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/resend-verification-email", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	msg := message(resp)
	if !ok(resp) {
		if msg == "" {
			msg = "failed to resend verification email"
		}
		return "", fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return msg, nil
}

// VerifyEmail redeems an emailed verification token. The backend answers
// {"isVerified": bool, "message": ...} on both outcomes.
func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (bool, string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/auth/verify/"+url.PathEscape(token), nil)
	if err != nil {
		return false, "", err
	}
	defer resp.Body.Close()

	var payload struct {
		IsVerified bool   `json:"isVerified"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, "", ErrUnauthorized
	}
	return payload.IsVerified, payload.Message, nil
}

// Profile fetches the full profile of the logged-in user.
func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/users/profile", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return nil, ErrUnauthorized
	}

	var env struct {
		Data *models.Profile `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Data == nil {
		return nil, ErrUnauthorized
	}
	return env.Data, nil
}

// UpdateProfile replaces the whole profile object on the backend.
func (c *HTTPClient) UpdateProfile(ctx context.Context, p *models.Profile) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/users/profile", p)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		msg := message(resp)
		if msg == "" {
			msg = "profile update failed"
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return nil
}

// Jobs fetches the job feed.
func (c *HTTPClient) Jobs(ctx context.Context) ([]models.Job, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/jobs", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		return nil, ErrUnauthorized
	}

	var env struct {
		Data []models.Job `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, ErrUnauthorized
	}
	return env.Data, nil
}

// PostJob publishes a new posting and returns the stored copy.
func (c *HTTPClient) PostJob(ctx context.Context, job models.Job) (*models.Job, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/jobs", job)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if !ok(resp) {
		msg := message(resp)
		if msg == "" {
			msg = "job posting failed"
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	var env struct {
		Data *models.Job `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Data == nil {
		return nil, ErrUnauthorized
	}
	return env.Data, nil
}
