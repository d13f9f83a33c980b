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
	"strings"

	"github.com/Tharun-raj-u/speakout/internal/client/models"
)

// TokenSource supplies the bearer credential for authenticated calls.
// The session store satisfies it; an empty token means the call goes out
// unauthenticated (the server answers 401 and the guard takes over).
type TokenSource interface {
	Token(ctx context.Context) string
}

// HTTPClient implements Client against the REST contract of the suggestion
// service. The underlying http.Client carries no timeout: a hung request
// leaves its caller loading until the context is canceled.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:8080/api"). Pass nil httpClient to use
// http.DefaultClient.
func NewHTTPClient(baseURL string, tokens TokenSource, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    httpClient,
	}
}

// do executes one request and returns the response body for 2xx statuses.
// Transport failures map to ErrUnavailable, 401/403 to ErrUnauthorized and
// any other non-success status to *RequestError. A 204 returns a nil body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
}

// readErrorMessage pulls a human-readable message out of an error body,
// preferring a JSON {"message": ...} shape over the raw text.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	var result AuthResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	if result.Token == "" || result.Role == "" {
		return nil, fmt.Errorf("login response missing token or role")
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", req)
	return err
}

func (c *HTTPClient) ListSuggestions(ctx context.Context, page, size int, status models.Status) (*models.Page, error) {
	q := url.Values{}
	q.Set("paginated", "true")
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if status != "" {
		q.Set("status", string(status))
	}
	data, err := c.do(ctx, http.MethodGet, "/suggestions?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return models.DecodePage(data)
}

func (c *HTTPClient) ListOwnSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	data, err := c.do(ctx, http.MethodGet, "/suggestions/employee", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeSuggestions(data)
}

func (c *HTTPClient) CreateSuggestion(ctx context.Context, req SuggestionRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/suggestions", req)
	return err
}

func (c *HTTPClient) UpdateSuggestion(ctx context.Context, id int64, req SuggestionRequest) (*models.Suggestion, error) {
	data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/suggestions/%d", id), req)
	if err != nil {
		return nil, err
	}
	var s models.Suggestion
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding updated suggestion: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ToggleVote(ctx context.Context, suggestionID int64, deviceID string) (*ToggleResult, error) {
	body := struct {
		DeviceID string `json:"deviceId"`
	}{DeviceID: deviceID}

	data, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/votes/suggestion/%d/toggle", suggestionID), body)
	if err != nil {
		return nil, err
	}
	var result ToggleResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding toggle response: %w", err)
	}
	return &result, nil
}

func (c *HTTPClient) ChangeStatus(ctx context.Context, id int64, req StatusChangeRequest) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/suggestions/%d/status", id), req)
	return err
}

func (c *HTTPClient) DeleteSuggestion(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/suggestions/%d", id), nil)
	return err
}

func (c *HTTPClient) ListDeletedSuggestions(ctx context.Context) ([]models.DeletedSuggestion, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/suggestions/deleted", nil)
	if err != nil {
		return nil, err
	}
	var items []models.DeletedSuggestion
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding deleted suggestions: %w", err)
	}
	return items, nil
}

func (c *HTTPClient) HardDeleteAll(ctx context.Context) error {
	// The endpoint answers either 204 or a JSON body on success; do()
	// accepts both shapes.
	_, err := c.do(ctx, http.MethodDelete, "/admin/suggestions/hardDelete", nil)
	return err
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.DashboardSnapshot, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeDashboardSnapshot(data)
}

var _ Client = (*HTTPClient)(nil)
