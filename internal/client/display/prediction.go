// Package display maps a ticket's backend-computed prediction fields to
// presentation values. Nothing here computes predictions; the backend
// attaches them once at ticket creation and they are shown as-is.
package display

import (
	"strings"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

// Sentiment icons, one per fixed label. Anything unrecognized or absent
// renders the neutral placeholder.
const (
	IconPositive = "😊"
	IconNeutral  = "😐"
	IconNegative = "😞"
)

// SentimentIcon returns the icon for a sentiment label.
func SentimentIcon(label string) string {
	switch label {
	case "positive":
		return IconPositive
	case "negative":
		return IconNegative
	default:
		return IconNeutral
	}
}

// TopKeywords returns up to n keywords joined for compact display. The full
// list stays on the ticket; this is only the short form shown in list rows
// (n=2) and the creation summary (n=3).
func TopKeywords(keywords []string, n int) string {
	if len(keywords) == 0 || n <= 0 {
		return ""
	}
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, ", ")
}

// PredictionSummary is the "AI insights" block shown after creating a
// ticket: predicted priority, sentiment and the leading keywords.
func PredictionSummary(t *models.Ticket) []string {
	dash := func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	}
	return []string{
		"Priority:  " + dash(t.PredictedPriority),
		"Sentiment: " + dash(t.SentimentLabel) + " " + SentimentIcon(t.SentimentLabel),
		"Keywords:  " + dash(TopKeywords(t.Keywords, 3)),
	}
}
