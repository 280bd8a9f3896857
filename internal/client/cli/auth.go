package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/supportpilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a customer
// account via the AuthService. A successful registration signs the user in
// immediately. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password, name, ""); err != nil {
		a.log.Warn(ctx, "registration failed", "error", err)
		return err
	}

	return a.ticketService.Refresh(ctx)
}

// Login prompts the user for credentials and tries to authenticate. On
// success the ticket collection is loaded for the freshly established role.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	return a.ticketService.Refresh(ctx)
}

// Logout ends the session, clearing the persisted credential and the
// in-memory state.
func (a *App) Logout(ctx context.Context) error {
	return a.authService.Logout(ctx)
}
