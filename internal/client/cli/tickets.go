package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/supportpilot/internal/client/display"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/services"
)

// getConfirmation and getMultiline are indirections over the interactive
// input helpers, swapped in tests.
var getConfirmation = GetConfirmation
var getMultiline = GetMultiline

// confirm adapts the interactive yes/no prompt to the services.ConfirmFunc
// callback the ticket engine expects.
func (a *App) confirm() services.ConfirmFunc {
	return func(prompt string) bool {
		return getConfirmation(a.reader, prompt, os.Stdout)
	}
}

// List re-fetches the ticket collection and prints one line per ticket.
// Customers see their own tickets; agents and admins see the triage view.
func (a *App) List(ctx context.Context) error {
	if err := a.ticketService.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "refresh failed", "error", err)
		return err
	}

	tickets := a.ticketService.Tickets()
	if len(tickets) == 0 {
		fmt.Println("No tickets.")
		return nil
	}
	for i := range tickets {
		fmt.Println(display.TicketRow(&tickets[i]))
	}
	return nil
}

// Create files a new ticket. It prompts for a title, a multi-line
// description and an optional priority, then prints the backend's triage
// predictions for the created record.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := getSimpleText(a.reader, "Enter priority (low|medium|high, default medium)", os.Stdout)
	if err != nil {
		return err
	}

	ticket, err := a.ticketService.Create(ctx, title, description, models.Priority(priority))
	if err != nil {
		return err
	}

	for _, line := range display.PredictionSummary(ticket) {
		fmt.Println(line)
	}
	return nil
}

// Status changes a ticket's lifecycle status (agents only). Resolving or
// closing asks for confirmation first; the local view updates immediately
// and is reverted if the backend refuses.
func (a *App) Status(ctx context.Context) error {
	ticketID, err := getSimpleText(a.reader, "Enter ticket id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter new status (open|in_progress|pending|resolved|closed)", os.Stdout)
	if err != nil {
		return err
	}

	return a.ticketService.UpdateStatus(ctx, ticketID, models.Status(status), a.confirm())
}

// AssignToMe assigns a ticket to the calling agent.
func (a *App) AssignToMe(ctx context.Context) error {
	ticketID, err := getSimpleText(a.reader, "Enter ticket id", os.Stdout)
	if err != nil {
		return err
	}
	return a.ticketService.SelfAssign(ctx, ticketID, a.confirm())
}

// Assign assigns a ticket to a chosen agent (admins only). The known agents
// are listed first so the user can pick an id.
func (a *App) Assign(ctx context.Context) error {
	agents, err := a.agentService.ListAgents(ctx)
	if err != nil {
		a.log.Warn(ctx, "listing agents failed", "error", err)
		return err
	}
	for _, ag := range agents {
		fmt.Printf("%s  %s <%s>\n", ag.ID, ag.Name, ag.Email)
	}

	ticketID, err := getSimpleText(a.reader, "Enter ticket id", os.Stdout)
	if err != nil {
		return err
	}
	agentID, err := getSimpleText(a.reader, "Enter agent id", os.Stdout)
	if err != nil {
		return err
	}

	return a.ticketService.Assign(ctx, ticketID, agentID, a.confirm())
}
