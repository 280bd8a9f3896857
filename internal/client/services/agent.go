package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/rolegate"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/common"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// AgentService covers admin-side agent management: creating agent accounts
// and listing them for the assignment picker.
type AgentService struct {
	api      api.Client
	session  *session.Session
	notifier Notifier
	log      logging.Logger
}

func NewAgentService(apiClient api.Client, sess *session.Session, n Notifier, log logging.Logger) *AgentService {
	return &AgentService{api: apiClient, session: sess, notifier: n, log: log}
}

// CreateAgent provisions a new agent account. Admin only; the creation
// endpoint does not return a token, so the current session is unaffected.
func (a *AgentService) CreateAgent(ctx context.Context, name, email, password string) error {
	if !rolegate.IsAllowed(a.session.Role(), rolegate.ActionCreateAgent) {
		a.notifier.Error("Only admins can create agents")
		return fmt.Errorf("%w: role %q may not create agents", common.ErrDenied, a.session.Role())
	}
	if name == "" || email == "" || password == "" {
		a.notifier.Error("Name, email and password are required")
		return fmt.Errorf("%w: name, email and password are required", common.ErrValidation)
	}

	if err := a.api.CreateAgent(ctx, name, email, password); err != nil {
		a.notifier.Error("Failed to create agent")
		return fmt.Errorf("creating agent: %w", err)
	}

	a.notifier.Success("Agent created")
	a.log.Info(ctx, "agent created", "email", email)
	return nil
}

// ListAgents returns the known agents. Admin only.
func (a *AgentService) ListAgents(ctx context.Context) ([]models.Agent, error) {
	if !rolegate.IsAllowed(a.session.Role(), rolegate.ActionListAgents) {
		return nil, fmt.Errorf("%w: role %q may not list agents", common.ErrDenied, a.session.Role())
	}

	agents, err := a.api.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return agents, nil
}
