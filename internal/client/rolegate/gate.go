// Package rolegate centralizes the client-side authorization matrix.
//
// IsAllowed is consulted before any action is offered to the user or sent to
// the backend. It is advisory only: the backend independently enforces
// authorization on every call, so a "yes" here never grants anything by
// itself, and a "no" simply avoids a request that would be rejected anyway.
package rolegate

import "github.com/dmitrijs2005/supportpilot/internal/client/models"

// Action enumerates everything a session can attempt from the dashboard.
type Action string

const (
	ActionViewOwnTickets Action = "view_own_tickets"
	ActionViewAllTickets Action = "view_all_tickets"
	ActionCreateTicket   Action = "create_ticket"
	ActionChangeStatus   Action = "change_status"
	ActionAssignTicket   Action = "assign_ticket"
	ActionCreateAgent    Action = "create_agent"
	ActionListAgents     Action = "list_agents"
	ActionViewAnalytics  Action = "view_analytics"
)

// policy is the full role/action matrix. Missing entries deny.
var policy = map[models.Role]map[Action]bool{
	models.RoleCustomer: {
		ActionViewOwnTickets: true,
		ActionCreateTicket:   true,
	},
	models.RoleAgent: {
		ActionViewAllTickets: true,
		ActionChangeStatus:   true,
		ActionAssignTicket:   true, // self-assign only, see IsAssignAllowed
	},
	models.RoleAdmin: {
		ActionViewAllTickets: true,
		ActionAssignTicket:   true,
		ActionCreateAgent:    true,
		ActionListAgents:     true,
		ActionViewAnalytics:  true,
	},
}

// IsAllowed reports whether the given role may attempt the action. Pure
// function, no side effects, fail-closed: an absent or unrecognized role
// denies everything.
func IsAllowed(role models.Role, action Action) bool {
	actions, ok := policy[role]
	if !ok {
		return false
	}
	return actions[action]
}

// IsAssignAllowed refines ActionAssignTicket with the target agent: an agent
// may only assign to themselves (selfID is the identity derived from the
// session credential; empty when the credential could not be decoded), while
// an admin may assign to any agent.
func IsAssignAllowed(role models.Role, selfID, agentID string) bool {
	if !IsAllowed(role, ActionAssignTicket) {
		return false
	}
	if role == models.RoleAgent {
		return selfID != "" && agentID == selfID
	}
	return true
}
