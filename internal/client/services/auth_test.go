package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/common"
)

func TestLogin_BeginsSessionAndInstallsToken(t *testing.T) {
	tok := tokenWithUserID("u1")
	f := &fakeClient{LoginRet: &api.AuthResult{Token: tok, Role: models.RoleAgent}}
	sess := session.New(setupSessionDB(t))
	svc := NewAuthService(f, sess, testLogger())

	require.NoError(t, svc.Login(context.Background(), "a@b.c", []byte("pw")))

	assert.True(t, sess.Authenticated())
	assert.Equal(t, models.RoleAgent, sess.Role())
	assert.Equal(t, "u1", sess.UserID())
	assert.Equal(t, tok, f.Token, "bearer token installed on the API client")
}

func TestLogin_Validation(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, session.New(setupSessionDB(t)), testLogger())

	err := svc.Login(context.Background(), "", []byte("pw"))
	require.ErrorIs(t, err, common.ErrValidation)

	err = svc.Login(context.Background(), "a@b.c", nil)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_RemoteFailure(t *testing.T) {
	f := &fakeClient{LoginErr: common.ErrRemote}
	sess := session.New(setupSessionDB(t))
	svc := NewAuthService(f, sess, testLogger())

	err := svc.Login(context.Background(), "a@b.c", []byte("bad"))
	require.ErrorIs(t, err, common.ErrRemote)
	assert.False(t, sess.Authenticated())
}

func TestRegister_DefaultsToCustomer(t *testing.T) {
	f := &fakeClient{RegisterRet: &api.AuthResult{Token: tokenWithUserID("u2"), Role: models.RoleCustomer}}
	sess := session.New(setupSessionDB(t))
	svc := NewAuthService(f, sess, testLogger())

	require.NoError(t, svc.Register(context.Background(), "a@b.c", []byte("pw"), "Alice", ""))
	assert.Equal(t, models.RoleCustomer, sess.Role())
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, session.New(setupSessionDB(t)), testLogger())

	err := svc.Register(context.Background(), "a@b.c", []byte("pw"), "Alice", "root")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestLogout_ClearsSessionAndToken(t *testing.T) {
	f := &fakeClient{LoginRet: &api.AuthResult{Token: tokenWithUserID("u1"), Role: models.RoleAdmin}}
	sess := session.New(setupSessionDB(t))
	svc := NewAuthService(f, sess, testLogger())

	require.NoError(t, svc.Login(context.Background(), "a@b.c", []byte("pw")))
	require.NoError(t, svc.Logout(context.Background()))

	assert.False(t, sess.Authenticated())
	assert.Empty(t, f.Token)
}

func TestRestore_ReattachesPersistedSession(t *testing.T) {
	db := setupSessionDB(t)
	tok := tokenWithUserID("u3")

	first := session.New(db)
	require.NoError(t, first.Begin(context.Background(), tok, models.RoleAdmin))

	// New process: fresh session over the same local database.
	f := &fakeClient{}
	sess := session.New(db)
	svc := NewAuthService(f, sess, testLogger())

	ok, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, sess.Role())
	assert.Equal(t, tok, f.Token)
}

func TestRestore_NothingPersisted(t *testing.T) {
	f := &fakeClient{}
	svc := NewAuthService(f, session.New(setupSessionDB(t)), testLogger())

	ok, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, f.Token)
}
