// Package backend contains the HTTP adapter for the report backend: report
// creation and browsing, image upload, and the auth endpoints.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// Client implements secondary.ReportGateway over the backend's REST API.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu      sync.RWMutex
	session *models.Session
}

// NewClient creates a backend client. The timeout applies per request; a
// timed-out call surfaces as a network error, it is never converted into an
// offline-queue entry.
func NewClient(baseURL string, timeout time.Duration, session *models.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		session: session,
	}
}

// SetSession replaces the session used for authenticated calls.
func (c *Client) SetSession(session *models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = session
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// UploadImage stores the image binary and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	token := c.token()
	if token == "" {
		return "", secondary.ErrAuthRequired
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w: %w", secondary.ErrUpload, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write upload payload: %w: %w", secondary.ErrUpload, err)
	}
	if err := mw.WriteField("content_type", contentType); err != nil {
		return "", fmt.Errorf("failed to write upload field: %w: %w", secondary.ErrUpload, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload form: %w: %w", secondary.ErrUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w: %w", secondary.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload rejected: %w: %s", secondary.ErrUpload, readDetail(resp))
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w: %w", secondary.ErrUpload, err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload response missing url: %w", secondary.ErrUpload)
	}

	return out.URL, nil
}

// CreateReport registers a new damage report with an already-uploaded image
// reference.
func (c *Client) CreateReport(ctx context.Context, reportReq secondary.CreateReportRequest) (*models.Report, error) {
	payload := map[string]any{
		"category":    reportReq.Category,
		"severity":    reportReq.Severity,
		"description": reportReq.Description,
		"latitude":    reportReq.Latitude,
		"longitude":   reportReq.Longitude,
		"image_url":   reportReq.ImageURL,
	}

	var report models.Report
	if err := c.doJSON(ctx, http.MethodPost, "/api/reports", payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns reports, optionally restricted to a bounding box.
func (c *Client) ListReports(ctx context.Context, bounds *models.MapBounds) ([]*models.Report, error) {
	path := "/api/reports"
	if bounds != nil {
		params := url.Values{}
		params.Set("min_lat", strconv.FormatFloat(bounds.MinLat, 'f', -1, 64))
		params.Set("max_lat", strconv.FormatFloat(bounds.MaxLat, 'f', -1, 64))
		params.Set("min_lng", strconv.FormatFloat(bounds.MinLng, 'f', -1, 64))
		params.Set("max_lng", strconv.FormatFloat(bounds.MaxLng, 'f', -1, 64))
		path += "?" + params.Encode()
	}

	var reports []*models.Report
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches a single report by id.
func (c *Client) GetReport(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	if err := c.doJSON(ctx, http.MethodGet, "/api/reports/"+url.PathEscape(id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportStatus transitions a report's verification status.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, status models.Status) (*models.Report, error) {
	var report models.Report
	payload := map[string]any{"status": string(status)}
	if err := c.doJSON(ctx, http.MethodPatch, "/api/reports/"+url.PathEscape(id)+"/status", payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Stats returns the aggregate report summary.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/reports/stats/summary", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Session, error) {
	var session models.Session
	payload := map[string]any{"username": username, "password": password}
	if err := c.doUnauthenticatedJSON(ctx, http.MethodPost, "/api/auth/login", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates an account and returns its initial session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	var session models.Session
	payload := map[string]any{"username": username, "email": email, "password": password}
	if err := c.doUnauthenticatedJSON(ctx, http.MethodPost, "/api/auth/register", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// doJSON performs an authenticated JSON round trip.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	token := c.token()
	if token == "" {
		return secondary.ErrAuthRequired
	}
	return c.roundTrip(ctx, method, path, token, payload, out)
}

// doUnauthenticatedJSON performs a JSON round trip without a bearer token.
func (c *Client) doUnauthenticatedJSON(ctx context.Context, method, path string, payload, out any) error {
	return c.roundTrip(ctx, method, path, "", payload, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w: %w", method, path, secondary.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// checkStatus maps backend status codes onto the gateway error taxonomy.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", secondary.ErrAuthRequired, readDetail(resp))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", secondary.ErrNotFound, readDetail(resp))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", secondary.ErrBackendValidation, readDetail(resp))
	default:
		return fmt.Errorf("backend error (%d): %w: %s", resp.StatusCode, secondary.ErrNetwork, readDetail(resp))
	}
}

// readDetail extracts the backend's error detail, falling back to the status.
func readDetail(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Detail != "" {
			return eb.Detail
		}
	}
	return resp.Status
}

// Ensure Client implements the interface
var _ secondary.ReportGateway = (*Client)(nil)
