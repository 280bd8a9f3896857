package models

// Role classifies the current principal. Unknown roles deny every action.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// Agent is a support agent account, visible to admin sessions only.
// Agents are created by an admin and are not otherwise mutable from here.
type Agent struct {
	ID    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Principal is the identity bound to the active session: a best-effort view
// derived from the login response and the credential payload. It is never
// authoritative; the backend re-verifies identity on every call.
type Principal struct {
	UserID string
	Role   Role
	Token  string
}
