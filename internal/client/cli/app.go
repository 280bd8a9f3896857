package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/config"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/repositories"
	"github.com/dmitrijs2005/supportpilot/internal/client/services"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/client/store"
	"github.com/dmitrijs2005/supportpilot/internal/logging"

	_ "modernc.org/sqlite"
)

// authService, ticketService, agentService and analyticsService describe the
// slices of the application services the CLI consumes. The concrete types in
// internal/client/services satisfy them; tests substitute lightweight fakes.
type authService interface {
	Restore(ctx context.Context) (bool, error)
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte, name string, role models.Role) error
	Logout(ctx context.Context) error
}

type ticketService interface {
	Tickets() []models.Ticket
	Refresh(ctx context.Context) error
	Create(ctx context.Context, title, description string, priority models.Priority) (*models.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID string, newStatus models.Status, confirm services.ConfirmFunc) error
	Assign(ctx context.Context, ticketID, agentID string, confirm services.ConfirmFunc) error
	SelfAssign(ctx context.Context, ticketID string, confirm services.ConfirmFunc) error
}

type agentService interface {
	CreateAgent(ctx context.Context, name, email, password string) error
	ListAgents(ctx context.Context) ([]models.Agent, error)
}

type analyticsService interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}

// sessionState is the read-only session view the REPL needs for gating and
// for the prompt.
type sessionState interface {
	Authenticated() bool
	Role() models.Role
}

type App struct {
	config           *config.Config
	session          sessionState
	authService      authService
	ticketService    ticketService
	agentService     agentService
	analyticsService analyticsService
	log              logging.Logger
	reader           *bufio.Reader
	db               *sql.DB
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	sess := session.New(db)
	st := store.New()
	notifier := NewColorNotifier(os.Stdout)

	as := services.NewAuthService(apiClient, sess, log)
	ts := services.NewTicketService(apiClient, sess, st, notifier, log)
	ags := services.NewAgentService(apiClient, sess, notifier, log)
	ans := services.NewAnalyticsService(apiClient, sess, log)

	return &App{
		config:           c,
		session:          sess,
		authService:      as,
		ticketService:    ts,
		agentService:     ags,
		analyticsService: ans,
		log:              log,
		reader:           bufio.NewReader(os.Stdin),
		db:               db,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) role() models.Role {
	return a.session.Role()
}

// getStatus renders the prompt suffix, e.g. "(agent)" for an authenticated
// agent session and "" when not logged in.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Role())
}

// Run restores any persisted session, loads the initial ticket collection
// for authenticated users, and blocks in the REPL until the user exits.
// Unauthenticated sessions never touch the ticket endpoints.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	restored, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if restored {
		if err := a.ticketService.Refresh(ctx); err != nil {
			a.log.Warn(ctx, "initial ticket load failed", "error", err)
		}
	}

	fmt.Println("SupportPilot CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
