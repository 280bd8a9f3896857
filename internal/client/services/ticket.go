package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/rolegate"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/client/store"
	"github.com/dmitrijs2005/supportpilot/internal/common"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// ConfirmFunc asks the user to confirm a destructive-leaning action before it
// is attempted. Returning false aborts the operation with ErrCancelled and no
// side effects.
type ConfirmFunc func(prompt string) bool

// TicketService is the ticket lifecycle engine. It validates and executes
// status transitions and assignments, gating every action through the role
// matrix, and applies the optimistic-update/rollback discipline to status
// changes:
//
//  1. capture the ticket's current status
//  2. apply the new status to the local store synchronously
//  3. issue the remote mutation
//  4. on success, notify and re-fetch the collection to reconcile
//  5. on failure, revert to the captured status and notify; never retry
//
// This is a single-step pattern, not a transaction log: two mutations on the
// same ticket issued before the first resolves are not ordered relative to
// each other, and the next full re-fetch settles the state.
type TicketService struct {
	api      api.Client
	session  *session.Session
	store    *store.TicketStore
	notifier Notifier
	log      logging.Logger
}

func NewTicketService(apiClient api.Client, sess *session.Session, st *store.TicketStore, n Notifier, log logging.Logger) *TicketService {
	return &TicketService{api: apiClient, session: sess, store: st, notifier: n, log: log}
}

// Tickets returns the store's current view of the collection.
func (t *TicketService) Tickets() []models.Ticket {
	return t.store.List()
}

// Refresh re-fetches the full ticket collection and replaces the store. The
// backend scopes the list to the caller: customers see their own tickets,
// agents and admins see the triage view.
func (t *TicketService) Refresh(ctx context.Context) error {
	role := t.session.Role()
	if !rolegate.IsAllowed(role, rolegate.ActionViewOwnTickets) &&
		!rolegate.IsAllowed(role, rolegate.ActionViewAllTickets) {
		return fmt.Errorf("%w: role %q may not list tickets", common.ErrDenied, role)
	}

	tickets, err := t.api.ListTickets(ctx)
	if err != nil {
		return fmt.Errorf("listing tickets: %w", err)
	}

	t.store.ReplaceAll(tickets)
	t.log.Debug(ctx, "ticket collection refreshed", "count", len(tickets))
	return nil
}

// Create files a new ticket. The created record comes back with the
// backend-computed prediction fields populated and status "open", and is
// prepended to the local collection.
func (t *TicketService) Create(ctx context.Context, title, description string, priority models.Priority) (*models.Ticket, error) {
	if !rolegate.IsAllowed(t.session.Role(), rolegate.ActionCreateTicket) {
		t.notifier.Error("Only customers can create tickets")
		return nil, fmt.Errorf("%w: role %q may not create tickets", common.ErrDenied, t.session.Role())
	}
	if title == "" || description == "" {
		t.notifier.Error("Title and description are required")
		return nil, fmt.Errorf("%w: title and description are required", common.ErrValidation)
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		t.notifier.Error("Unknown priority")
		return nil, fmt.Errorf("%w: unknown priority %q", common.ErrValidation, priority)
	}

	ticket, err := t.api.CreateTicket(ctx, title, description, priority)
	if err != nil {
		t.notifier.Error("Failed to create ticket")
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	t.store.Prepend(*ticket)
	t.notifier.Success("Ticket created")
	t.log.Info(ctx, "ticket created", "ticket_id", ticket.ID, "predicted_priority", ticket.PredictedPriority)
	return ticket, nil
}

// UpdateStatus requests a lifecycle transition for a ticket. Only agents may
// change status; any state is reachable from any state. Setting "resolved"
// or "closed" requires the confirm callback to accept first. The local store
// is updated optimistically and reverted if the backend rejects the call.
func (t *TicketService) UpdateStatus(ctx context.Context, ticketID string, newStatus models.Status, confirm ConfirmFunc) error {
	if !rolegate.IsAllowed(t.session.Role(), rolegate.ActionChangeStatus) {
		t.notifier.Error("You are not allowed to change ticket status")
		return fmt.Errorf("%w: role %q may not change status", common.ErrDenied, t.session.Role())
	}
	if !newStatus.Valid() {
		t.notifier.Error("Unknown status")
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, newStatus)
	}

	ticket, ok := t.store.Get(ticketID)
	if !ok {
		t.notifier.Error("Unknown ticket")
		return fmt.Errorf("%w: unknown ticket %q", common.ErrValidation, ticketID)
	}

	if newStatus.Terminal() {
		if confirm == nil || !confirm(fmt.Sprintf("Mark ticket %q as %s?", ticket.Title, newStatus)) {
			return common.ErrCancelled
		}
	}

	// Optimistic update: the new status is visible locally before the
	// remote call resolves.
	priorStatus, _ := t.store.SetStatus(ticketID, newStatus)

	if err := t.api.UpdateStatus(ctx, ticketID, newStatus); err != nil {
		t.store.SetStatus(ticketID, priorStatus)
		t.notifier.Error("Failed to update status")
		t.log.Warn(ctx, "status update rejected, reverted",
			"ticket_id", ticketID, "status", newStatus, "reverted_to", priorStatus, "error", err)
		return fmt.Errorf("updating status: %w", err)
	}

	t.notifier.Success("Status updated")

	// Reconcile server-side effects (timestamps etc.) the local record
	// cannot know about. A failed refresh keeps the optimistic value; the
	// next successful re-fetch settles it.
	if err := t.Refresh(ctx); err != nil {
		t.log.Warn(ctx, "refresh after status update failed", "error", err)
	}
	return nil
}

// Assign assigns a ticket to an agent. Agents may only self-assign (using
// the identity derived from their credential); admins may pick any agent.
// Re-assignment is always permitted. The assignment is not applied
// optimistically — the re-fetch after a successful call updates the record.
func (t *TicketService) Assign(ctx context.Context, ticketID, agentID string, confirm ConfirmFunc) error {
	if agentID == "" {
		t.notifier.Error("Select an agent")
		return fmt.Errorf("%w: agent id is required", common.ErrValidation)
	}
	if !rolegate.IsAssignAllowed(t.session.Role(), t.session.UserID(), agentID) {
		t.notifier.Error("You are not allowed to assign this ticket")
		return fmt.Errorf("%w: role %q may not assign to agent %q", common.ErrDenied, t.session.Role(), agentID)
	}

	ticket, ok := t.store.Get(ticketID)
	if !ok {
		t.notifier.Error("Unknown ticket")
		return fmt.Errorf("%w: unknown ticket %q", common.ErrValidation, ticketID)
	}

	if confirm == nil || !confirm(fmt.Sprintf("Assign ticket %q to agent %s?", ticket.Title, agentID)) {
		return common.ErrCancelled
	}

	if err := t.api.AssignTicket(ctx, ticketID, agentID); err != nil {
		t.notifier.Error("Assign failed")
		t.log.Warn(ctx, "assignment rejected", "ticket_id", ticketID, "agent_id", agentID, "error", err)
		return fmt.Errorf("assigning ticket: %w", err)
	}

	t.notifier.Success("Assigned successfully")
	if err := t.Refresh(ctx); err != nil {
		t.log.Warn(ctx, "refresh after assignment failed", "error", err)
	}
	return nil
}

// SelfAssign assigns the ticket to the calling agent, using the identity
// derived from the session credential. Unavailable when the credential
// payload could not be decoded.
func (t *TicketService) SelfAssign(ctx context.Context, ticketID string, confirm ConfirmFunc) error {
	me := t.session.UserID()
	if me == "" {
		t.notifier.Error("Cannot determine your agent id")
		return fmt.Errorf("%w: no identity available for self-assign", common.ErrDecode)
	}
	return t.Assign(ctx, ticketID, me, confirm)
}
