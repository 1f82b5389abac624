package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/client/models"
	"github.com/dmitrijs2005/bookmarks/internal/common"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type HTTPClient struct {
	baseURL     string
	http        *http.Client
	mu          sync.RWMutex
	accessToken string
}

// NewHTTPClient validates baseURL and returns a client without a token.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// SetToken replaces the bearer token. It is safe to call while requests
// are in flight.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

type apiErrorBody struct {
	Error *APIError `json:"error"`
}

// do sends in as JSON and decodes the response into out when the status is
// want. Anything else becomes an *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, want int) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var b apiErrorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&b); err != nil || b.Error == nil {
		return &APIError{Status: resp.StatusCode, Code: "unexpected_response", Message: http.StatusText(resp.StatusCode)}
	}
	b.Error.Status = resp.StatusCode
	if resp.StatusCode == http.StatusServiceUnavailable {
		return fmt.Errorf("%w: %w", ErrUnavailable, b.Error)
	}
	return b.Error
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", credentials{email, password}, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signin", credentials{email, password}, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) EditMe(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPatch, "/users", upd, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListBookmarks(ctx context.Context) ([]*models.Bookmark, error) {
	var out []*models.Bookmark
	if err := c.do(ctx, http.MethodGet, "/bookmark", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateBookmark(ctx context.Context, b models.NewBookmark) (*models.Bookmark, error) {
	var out models.Bookmark
	if err := c.do(ctx, http.MethodPost, "/bookmark", b, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func bookmarkPath(id int64) string {
	return "/bookmark/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) GetBookmark(ctx context.Context, id int64) (*models.Bookmark, error) {
	var out models.Bookmark
	if err := c.do(ctx, http.MethodGet, bookmarkPath(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) EditBookmark(ctx context.Context, id int64, upd models.BookmarkUpdate) (*models.Bookmark, error) {
	var out models.Bookmark
	if err := c.do(ctx, http.MethodPatch, bookmarkPath(id), upd, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteBookmark(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, bookmarkPath(id), nil, nil, http.StatusNoContent)
}
