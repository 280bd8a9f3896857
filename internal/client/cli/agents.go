package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/supportpilot/internal/common"
)

// Agents lists the known agent accounts (admins only).
func (a *App) Agents(ctx context.Context) error {
	agents, err := a.agentService.ListAgents(ctx)
	if err != nil {
		a.log.Warn(ctx, "listing agents failed", "error", err)
		return err
	}
	if len(agents) == 0 {
		fmt.Println("No agents.")
		return nil
	}
	for _, ag := range agents {
		fmt.Printf("%s  %s <%s>\n", ag.ID, ag.Name, ag.Email)
	}
	return nil
}

// CreateAgent provisions a new agent account (admins only). It prompts for
// the agent's name, email and an initial password; the password is wiped
// before returning.
func (a *App) CreateAgent(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter agent name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter agent email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.agentService.CreateAgent(ctx, name, email, string(password))
}
