package display

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

// TicketRow renders a ticket as a single compact list line:
// id, status, predicted priority (when present), title, sentiment icon and
// the two leading keywords.
func TicketRow(t *models.Ticket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-8s [%s]", t.ID, t.Status)
	if t.PredictedPriority != "" {
		fmt.Fprintf(&b, " (%s)", t.PredictedPriority)
	}
	fmt.Fprintf(&b, " %s", t.Title)
	if t.SentimentLabel != "" {
		fmt.Fprintf(&b, " %s", SentimentIcon(t.SentimentLabel))
	}
	if kw := TopKeywords(t.Keywords, 2); kw != "" {
		fmt.Fprintf(&b, " [%s]", kw)
	}
	if t.Assigned() {
		fmt.Fprintf(&b, " -> %s", t.AssignedAgentID)
	}
	return b.String()
}
