// Package api defines the remote SupportPilot API surface consumed by the
// client services, and its HTTP implementation. Services depend on the Client
// interface so tests can substitute fakes.
package api

import (
	"context"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

// AuthResult is the usable part of a login/register response.
type AuthResult struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

// Client is the remote API consumed by the dashboard. Every method issues at
// most one request; there are no retries and no cancellation of in-flight
// calls beyond the passed context.
type Client interface {
	// SetToken installs the bearer credential attached to subsequent
	// authenticated requests. An empty string detaches it.
	SetToken(token string)

	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, email, password, name string, role models.Role) (*AuthResult, error)
	CreateAgent(ctx context.Context, name, email, password string) error

	ListTickets(ctx context.Context) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, title, description string, priority models.Priority) (*models.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID string, status models.Status) error
	AssignTicket(ctx context.Context, ticketID, agentID string) error

	ListAgents(ctx context.Context) ([]models.Agent, error)
	Dashboard(ctx context.Context) (models.DashboardStats, error)
}
