package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/common"
)

// envelope is the backend's uniform response shape: {"data": ...} on success,
// {"error": "..."} on failure.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// HTTPClient talks to the SupportPilot backend over HTTP+JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:5001/api"). The timeout bounds each request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues a single request and decodes the response envelope into out
// (out may be nil when the payload is not consumed). Transport-level errors
// map to common.ErrUnavailable, 401 to common.ErrUnauthorized, and any other
// non-2xx response to common.ErrRemote carrying the backend's error string.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && err != io.EOF {
		return fmt.Errorf("%w: decoding response for %s %s: %v", common.ErrRemote, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
		}
		return fmt.Errorf("%w: %s", common.ErrRemote, msg)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decoding payload for %s %s: %v", common.ErrRemote, method, path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"role":     string(role),
	}
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &res); err != nil {
		return nil, err
	}
	// The backend may omit the role for legacy accounts; fall back to the
	// requested one so routing still works.
	if res.Role == "" {
		res.Role = role
	}
	return &res, nil
}

func (c *HTTPClient) CreateAgent(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/create-agent", body, nil)
}

func (c *HTTPClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var payload struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	if err := c.do(ctx, http.MethodGet, "/tickets", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Tickets, nil
}

func (c *HTTPClient) CreateTicket(ctx context.Context, title, description string, priority models.Priority) (*models.Ticket, error) {
	body := map[string]string{
		"title":       title,
		"description": description,
		"priority":    string(priority),
	}
	var payload struct {
		Ticket models.Ticket `json:"ticket"`
	}
	if err := c.do(ctx, http.MethodPost, "/tickets", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Ticket, nil
}

// UpdateStatus changes a ticket's lifecycle state. The response body is
// ignored; callers reconcile via a full re-fetch.
func (c *HTTPClient) UpdateStatus(ctx context.Context, ticketID string, status models.Status) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, "/tickets/"+ticketID+"/status", body, nil)
}

// AssignTicket assigns a ticket to an agent. The response body is ignored;
// callers reconcile via a full re-fetch.
func (c *HTTPClient) AssignTicket(ctx context.Context, ticketID, agentID string) error {
	body := map[string]string{"agent_id": agentID}
	return c.do(ctx, http.MethodPost, "/tickets/"+ticketID+"/assign", body, nil)
}

func (c *HTTPClient) ListAgents(ctx context.Context) ([]models.Agent, error) {
	var payload struct {
		Agents []models.Agent `json:"agents"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/agents", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Agents, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, &stats); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
