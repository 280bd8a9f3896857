package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// ---- fake API client ----

type statusCall struct {
	TicketID string
	Status   models.Status
}

type assignCall struct {
	TicketID string
	AgentID  string
}

// fakeClient implements api.Client for unit tests: canned results plus
// argument capture.
type fakeClient struct {
	Token string

	LoginRet *api.AuthResult
	LoginErr error

	RegisterRet *api.AuthResult
	RegisterErr error

	CreateAgentErr   error
	LastCreateAgent  [3]string
	CreateAgentCalls int

	TicketsRet    []models.Ticket
	TicketsErr    error
	ListCallCount int

	CreateTicketRet *models.Ticket
	CreateTicketErr error

	UpdateStatusErr error
	StatusCalls     []statusCall

	AssignErr   error
	AssignCalls []assignCall

	AgentsRet []models.Agent
	AgentsErr error

	DashboardRet models.DashboardStats
	DashboardErr error
}

func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password, name string, role models.Role) (*api.AuthResult, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) CreateAgent(ctx context.Context, name, email, password string) error {
	f.LastCreateAgent = [3]string{name, email, password}
	f.CreateAgentCalls++
	return f.CreateAgentErr
}

func (f *fakeClient) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	f.ListCallCount++
	return append([]models.Ticket(nil), f.TicketsRet...), f.TicketsErr
}

func (f *fakeClient) CreateTicket(ctx context.Context, title, description string, priority models.Priority) (*models.Ticket, error) {
	return f.CreateTicketRet, f.CreateTicketErr
}

func (f *fakeClient) UpdateStatus(ctx context.Context, ticketID string, status models.Status) error {
	f.StatusCalls = append(f.StatusCalls, statusCall{ticketID, status})
	return f.UpdateStatusErr
}

func (f *fakeClient) AssignTicket(ctx context.Context, ticketID, agentID string) error {
	f.AssignCalls = append(f.AssignCalls, assignCall{ticketID, agentID})
	return f.AssignErr
}

func (f *fakeClient) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return f.AgentsRet, f.AgentsErr
}

func (f *fakeClient) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return f.DashboardRet, f.DashboardErr
}

// ---- recording notifier ----

type recordingNotifier struct {
	Successes []string
	Errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.Successes = append(n.Successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.Errors = append(n.Errors, msg) }

// ---- session helpers ----

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:services_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func tokenWithUserID(userID string) string {
	enc := base64.RawURLEncoding.EncodeToString
	header := enc([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := enc([]byte(`{"user_id":"` + userID + `"}`))
	return header + "." + payload + ".sig"
}

// newSession returns a session already bound to the given role, with an
// identity derived from the token when userID is non-empty.
func newSession(t *testing.T, role models.Role, userID string) *session.Session {
	t.Helper()
	s := session.New(setupSessionDB(t))
	if role == "" {
		return s
	}
	token := "garbage"
	if userID != "" {
		token = tokenWithUserID(userID)
	}
	require.NoError(t, s.Begin(context.Background(), token, role))
	return s
}

func testLogger() logging.Logger {
	return logging.New(io.Discard, "error")
}
