package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

func TestSentimentIcon(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"positive", IconPositive},
		{"negative", IconNegative},
		{"neutral", IconNeutral},
		{"", IconNeutral},
		{"ecstatic", IconNeutral}, // unrecognized renders the placeholder
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SentimentIcon(tt.label), "label %q", tt.label)
	}
}

func TestTopKeywords(t *testing.T) {
	kws := []string{"printer", "paper", "jam", "urgent"}

	assert.Equal(t, "printer, paper", TopKeywords(kws, 2))
	assert.Equal(t, "printer, paper, jam", TopKeywords(kws, 3))
	assert.Equal(t, "printer", TopKeywords([]string{"printer"}, 3))
	assert.Equal(t, "", TopKeywords(nil, 2))
	assert.Equal(t, "", TopKeywords(kws, 0))

	// the source slice is left intact
	assert.Len(t, kws, 4)
}

func TestPredictionSummary(t *testing.T) {
	tk := &models.Ticket{
		PredictedPriority: "urgent",
		SentimentLabel:    "negative",
		Keywords:          []string{"printer", "paper", "jam", "again"},
	}

	lines := PredictionSummary(tk)
	assert.Contains(t, lines[0], "urgent")
	assert.Contains(t, lines[1], "negative")
	assert.Contains(t, lines[1], IconNegative)
	assert.Contains(t, lines[2], "printer, paper, jam")
	assert.NotContains(t, lines[2], "again")
}

func TestPredictionSummary_MissingFields(t *testing.T) {
	lines := PredictionSummary(&models.Ticket{})
	assert.Contains(t, lines[0], "—")
	assert.Contains(t, lines[1], IconNeutral)
	assert.Contains(t, lines[2], "—")
}

func TestTicketRow(t *testing.T) {
	tk := &models.Ticket{
		ID:                "t1",
		Title:             "Printer down",
		Status:            models.StatusOpen,
		PredictedPriority: "high",
		SentimentLabel:    "negative",
		Keywords:          []string{"printer", "paper", "jam"},
		AssignedAgentID:   "a2",
	}

	row := TicketRow(tk)
	assert.Contains(t, row, "t1")
	assert.Contains(t, row, "[open]")
	assert.Contains(t, row, "(high)")
	assert.Contains(t, row, "Printer down")
	assert.Contains(t, row, IconNegative)
	assert.Contains(t, row, "printer, paper")
	assert.NotContains(t, row, "jam", "list rows truncate to two keywords")
	assert.Contains(t, row, "-> a2")
}

func TestTicketRow_Minimal(t *testing.T) {
	row := TicketRow(&models.Ticket{ID: "t2", Title: "VPN", Status: models.StatusClosed})
	assert.Contains(t, row, "[closed]")
	assert.NotContains(t, row, "(")
	assert.NotContains(t, row, "->")
}
