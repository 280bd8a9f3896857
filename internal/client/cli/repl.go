package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Status(ctx context.Context) error
	AssignToMe(ctx context.Context) error
	Assign(ctx context.Context) error
	Agents(ctx context.Context) error
	CreateAgent(ctx context.Context) error
	Analytics(ctx context.Context) error
}

func helpFor(role models.Role) string {
	switch role {
	case models.RoleCustomer:
		return "Available commands: (l)ist, create, logout, exit"
	case models.RoleAgent:
		return "Available commands: (l)ist, status, assignme, logout, exit"
	case models.RoleAdmin:
		return "Available commands: (l)ist, assign, agents, addagent, stats, logout, exit"
	}
	return "Available commands: register, login, exit"
}

// runREPL starts a simple read–eval–print loop for the SupportPilot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). The accepted command
// set depends on the session:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create a customer account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in (help lists the subset the current role can actually use):
//	  - list           — show the ticket collection
//	  - create         — file a new ticket (customers)
//	  - status         — change a ticket's status (agents)
//	  - assignme       — take a ticket (agents)
//	  - assign         — assign a ticket to an agent (admins)
//	  - agents         — list agent accounts (admins)
//	  - addagent       — create an agent account (admins)
//	  - stats          — show the analytics dashboard (admins)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// While not logged in, every command other than register/login/help/exit is
// refused locally; in particular no ticket fetch is ever attempted. For
// authenticated sessions the handlers enforce the role matrix themselves, so
// a mistyped command for the wrong role is refused, not crashed on.
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpFor(a.role()))
			} else {
				printlnFn(helpFor(""))
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "l", "list":
			_ = a.List(ctx)

		case "create":
			_ = a.Create(ctx)

		case "status":
			_ = a.Status(ctx)

		case "assignme":
			_ = a.AssignToMe(ctx)

		case "assign":
			_ = a.Assign(ctx)

		case "agents":
			_ = a.Agents(ctx)

		case "addagent":
			_ = a.CreateAgent(ctx)

		case "stats":
			_ = a.Analytics(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
