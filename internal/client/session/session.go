// Package session holds the current principal: role, bearer credential and a
// best-effort identity derived from the credential payload.
//
// The credential is decoded without signature verification — the client has
// no key material and never needs any. The derived identity is a display and
// gating hint only; the backend independently verifies identity on every
// mutating call.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/supportpilot/internal/common"
	"github.com/dmitrijs2005/supportpilot/internal/dbx"
)

// Session is the single owner of the principal for the running client.
// It is set exactly once per login/signup and cleared exactly once on logout.
// Token and role are persisted in the local metadata store so a session
// survives process restarts, mirroring the web dashboard's page reloads.
type Session struct {
	mu        sync.RWMutex
	db        *sql.DB
	principal *models.Principal
}

func New(db *sql.DB) *Session {
	return &Session{db: db}
}

func (s *Session) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Restore loads a previously persisted session, if any. Returns true when a
// credential was found and the principal is now set.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	token, err := s.repo().Get(ctx, common.SessionTokenKey)
	if err != nil {
		return false, err
	}
	if len(token) == 0 {
		return false, nil
	}
	role, err := s.repo().Get(ctx, common.SessionRoleKey)
	if err != nil {
		return false, err
	}

	s.set(string(token), models.Role(role))
	return true, nil
}

// Begin installs the principal after a successful login or signup and
// persists token and role together so a half-written session can never be
// restored.
func (s *Session) Begin(ctx context.Context, token string, role models.Role) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionRoleKey, []byte(role))
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.set(token, role)
	return nil
}

// End clears the persisted session and drops the in-memory principal.
func (s *Session) End(ctx context.Context) error {
	if err := s.repo().Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	s.mu.Lock()
	s.principal = nil
	s.mu.Unlock()
	return nil
}

func (s *Session) set(token string, role models.Role) {
	userID, _ := DeriveUserID(token) // decode failure leaves the id empty

	s.mu.Lock()
	s.principal = &models.Principal{UserID: userID, Role: role, Token: token}
	s.mu.Unlock()
}

// Authenticated reports whether a principal is bound to this session.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// Role returns the principal's role, or "" when unauthenticated.
func (s *Session) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return ""
	}
	return s.principal.Role
}

// Token returns the bearer credential, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return ""
	}
	return s.principal.Token
}

// UserID returns the identity derived from the credential payload, or ""
// when unauthenticated or when the payload could not be decoded. An empty
// id makes self-assign actions unavailable; nothing else breaks.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return ""
	}
	return s.principal.UserID
}

// DeriveUserID extracts the user id from the non-cryptographic payload
// segment of a JWT. No signature verification is performed. The backend's
// tokens carry a "user_id" claim; "sub" is accepted as a fallback.
func DeriveUserID(token string) (string, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	if id, ok := claims["user_id"].(string); ok && id != "" {
		return id, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("%w: no user id claim", common.ErrDecode)
}
