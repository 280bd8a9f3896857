// Package models defines the client-side view of SupportPilot records:
// tickets, agents and the analytics payloads served by the backend.
package models

// Status is a ticket lifecycle state. The set is fixed; the backend is the
// authority on transitions, and the client treats any state as reachable
// from any other via an explicit agent action.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Statuses lists all lifecycle states in their natural forward order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusPending, StatusResolved, StatusClosed}

// Valid reports whether s is one of the fixed lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPending, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Terminal reports whether setting this status warrants explicit human
// confirmation before the mutation is attempted.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Priority is the user-chosen urgency at creation time. The backend may also
// attach its own predicted priority, which the client never edits.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Ticket mirrors the backend's ticket document. The prediction fields
// (PredictedPriority, SentimentLabel, SentimentScore, Keywords) are computed
// once by the backend at creation; the client only displays them.
type Ticket struct {
	ID               string   `json:"ticket_id"`
	CustomerID       string   `json:"customer_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Priority         Priority `json:"priority"`
	Status           Status   `json:"status"`
	AssignedAgentID  string   `json:"assigned_agent_id,omitempty"`
	PredictedPriority string  `json:"predicted_priority,omitempty"`
	SentimentLabel   string   `json:"sentiment_label,omitempty"`
	SentimentScore   float64  `json:"sentiment_score,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// Assigned reports whether the ticket has been assigned to an agent.
func (t *Ticket) Assigned() bool {
	return t.AssignedAgentID != ""
}
