package models

// TicketStats is the ticket-count block of the analytics dashboard payload.
type TicketStats struct {
	Total      int `json:"total_tickets"`
	Open       int `json:"open_tickets"`
	InProgress int `json:"in_progress_tickets"`
	Resolved   int `json:"resolved_tickets"`
	Closed     int `json:"closed_tickets"`
	Urgent     int `json:"urgent_tickets"`
}

// SentimentStats is the sentiment-distribution block of the dashboard payload.
type SentimentStats struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// DashboardStats is the full analytics payload consumed by admin sessions.
// A failed fetch degrades to the zero value rather than blocking the view.
type DashboardStats struct {
	Tickets   TicketStats    `json:"tickets"`
	Sentiment SentimentStats `json:"sentiment"`
}

// HasSentimentData reports whether any sentiment counts are present; the
// dashboard renders a placeholder distribution otherwise.
func (d DashboardStats) HasSentimentData() bool {
	return d.Sentiment.Positive+d.Sentiment.Neutral+d.Sentiment.Negative > 0
}
