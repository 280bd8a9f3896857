// Package services contains the application services of the SupportPilot
// client: authentication, the ticket lifecycle engine with its optimistic
// mutation controller, agent management and analytics.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/common"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// AuthService drives login, signup and logout, and keeps the Session and the
// API client's bearer credential in step.
type AuthService struct {
	api     api.Client
	session *session.Session
	log     logging.Logger
}

func NewAuthService(apiClient api.Client, sess *session.Session, log logging.Logger) *AuthService {
	return &AuthService{api: apiClient, session: sess, log: log}
}

// Restore re-attaches a previously persisted session, if one exists.
// Returns true when the client starts out authenticated.
func (a *AuthService) Restore(ctx context.Context) (bool, error) {
	ok, err := a.session.Restore(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		a.api.SetToken(a.session.Token())
		a.log.Info(ctx, "session restored", "role", a.session.Role())
	}
	return ok, nil
}

// Login authenticates against the backend and begins a session. The password
// slice is not retained; callers should wipe it afterwards.
func (a *AuthService) Login(ctx context.Context, email string, password []byte) error {
	if email == "" || len(password) == 0 {
		return fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	res, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := a.session.Begin(ctx, res.Token, res.Role); err != nil {
		return err
	}
	a.api.SetToken(res.Token)

	a.log.Info(ctx, "logged in", "role", res.Role)
	return nil
}

// Register creates an account and begins a session with the returned
// credential, exactly as a login would.
func (a *AuthService) Register(ctx context.Context, email string, password []byte, name string, role models.Role) error {
	if email == "" || len(password) == 0 || name == "" {
		return fmt.Errorf("%w: name, email and password are required", common.ErrValidation)
	}
	if role == "" {
		role = models.RoleCustomer
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}

	res, err := a.api.Register(ctx, email, string(password), name, role)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if err := a.session.Begin(ctx, res.Token, res.Role); err != nil {
		return err
	}
	a.api.SetToken(res.Token)

	a.log.Info(ctx, "registered", "role", res.Role)
	return nil
}

// Logout ends the session and detaches the credential from the API client.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.session.End(ctx); err != nil {
		return err
	}
	a.api.SetToken("")
	a.log.Info(ctx, "logged out")
	return nil
}
