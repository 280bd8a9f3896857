package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/services"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// stubTextQueue replaces getSimpleText with a stub that returns the given
// answers in order, then io.EOF.
func stubTextQueue(t *testing.T, answers ...string) func() {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	return func() { getSimpleText = orig }
}

func stubPassword(t *testing.T, pw []byte) func() {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), pw...), nil }
	return func() { getPassword = orig }
}

func stubMultiline(t *testing.T, text string) func() {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	return func() { getMultiline = orig }
}

func stubConfirmation(t *testing.T, answer bool) func() {
	t.Helper()
	orig := getConfirmation
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) bool { return answer }
	return func() { getConfirmation = orig }
}

type fakeSessionState struct {
	authed bool
	r      models.Role
}

func (f *fakeSessionState) Authenticated() bool { return f.authed }
func (f *fakeSessionState) Role() models.Role   { return f.r }

type fakeAuthService struct {
	restored   bool
	restoreErr error

	loginEmail string
	loginPass  []byte
	loginErr   error

	regEmail string
	regName  string
	regRole  models.Role
	regErr   error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuthService) Restore(context.Context) (bool, error) { return f.restored, f.restoreErr }
func (f *fakeAuthService) Login(_ context.Context, email string, password []byte) error {
	f.loginEmail = email
	f.loginPass = append([]byte(nil), password...)
	return f.loginErr
}
func (f *fakeAuthService) Register(_ context.Context, email string, _ []byte, name string, role models.Role) error {
	f.regEmail, f.regName, f.regRole = email, name, role
	return f.regErr
}
func (f *fakeAuthService) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

type fakeTicketService struct {
	tickets    []models.Ticket
	refreshes  int
	refreshErr error

	createTitle    string
	createDesc     string
	createPriority models.Priority
	createRet      *models.Ticket
	createErr      error

	statusTicketID string
	statusValue    models.Status
	statusErr      error

	assignTicketID string
	assignAgentID  string
	assignErr      error

	selfAssignTicketID string
	selfAssignErr      error

	confirmAnswer bool
}

func (f *fakeTicketService) Tickets() []models.Ticket { return f.tickets }
func (f *fakeTicketService) Refresh(context.Context) error {
	f.refreshes++
	return f.refreshErr
}
func (f *fakeTicketService) Create(_ context.Context, title, description string, priority models.Priority) (*models.Ticket, error) {
	f.createTitle, f.createDesc, f.createPriority = title, description, priority
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createRet != nil {
		return f.createRet, nil
	}
	return &models.Ticket{ID: "t-new", Title: title, Status: models.StatusOpen}, nil
}
func (f *fakeTicketService) UpdateStatus(_ context.Context, ticketID string, newStatus models.Status, confirm services.ConfirmFunc) error {
	f.statusTicketID, f.statusValue = ticketID, newStatus
	if confirm != nil {
		f.confirmAnswer = confirm("sure?")
	}
	return f.statusErr
}
func (f *fakeTicketService) Assign(_ context.Context, ticketID, agentID string, confirm services.ConfirmFunc) error {
	f.assignTicketID, f.assignAgentID = ticketID, agentID
	if confirm != nil {
		f.confirmAnswer = confirm("sure?")
	}
	return f.assignErr
}
func (f *fakeTicketService) SelfAssign(_ context.Context, ticketID string, confirm services.ConfirmFunc) error {
	f.selfAssignTicketID = ticketID
	if confirm != nil {
		f.confirmAnswer = confirm("sure?")
	}
	return f.selfAssignErr
}

type fakeAgentService struct {
	agents    []models.Agent
	listErr   error
	listCalls int

	createName  string
	createEmail string
	createPass  string
	createErr   error
}

func (f *fakeAgentService) CreateAgent(_ context.Context, name, email, password string) error {
	f.createName, f.createEmail, f.createPass = name, email, password
	return f.createErr
}
func (f *fakeAgentService) ListAgents(context.Context) ([]models.Agent, error) {
	f.listCalls++
	return f.agents, f.listErr
}

type fakeAnalyticsService struct {
	stats models.DashboardStats
	err   error
}

func (f *fakeAnalyticsService) Dashboard(context.Context) (models.DashboardStats, error) {
	return f.stats, f.err
}

// newTestApp assembles an App over fakes for command-handler tests.
func newTestApp(role models.Role) (*App, *fakeAuthService, *fakeTicketService, *fakeAgentService) {
	auth := &fakeAuthService{}
	tickets := &fakeTicketService{}
	agents := &fakeAgentService{}
	a := &App{
		session:          &fakeSessionState{authed: role != "", r: role},
		authService:      auth,
		ticketService:    tickets,
		agentService:     agents,
		analyticsService: &fakeAnalyticsService{},
		log:              logging.New(io.Discard, "error"),
		reader:           bufio.NewReader(io.MultiReader()),
	}
	return a, auth, tickets, agents
}
