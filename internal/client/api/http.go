package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TokenSource supplies the current bearer token, or "" when unauthenticated.
type TokenSource func() string

// HTTPClient is the net/http implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewHTTPClient constructs a Client that talks to the REST backend at baseURL.
// A nil token source is treated as always-empty.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

func (c *HTTPClient) Authenticate(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	var result SignupResult
	if err := c.do(ctx, http.MethodPost, "/api/signup", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListCustomers(ctx context.Context, page, pageSize int) (*CustomerPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var result CustomerPage
	if err := c.do(ctx, http.MethodGet, "/api/customers?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	var result Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (*Customer, error) {
	var result Customer
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+url.PathEscape(id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/customers/"+url.PathEscape(id), nil, nil)
}

// do performs one request/response round trip. Failures come back as *Error:
// non-2xx responses carry the status and body, transport failures carry only
// the underlying message. A nil out skips body decoding.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return newTransportError(err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newTransportError(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return newTransportError(fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}
