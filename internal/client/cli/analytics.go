package cli

import (
	"context"
	"fmt"
)

// Analytics prints the admin dashboard: ticket counts by status and the
// sentiment distribution of the collection. A backend hiccup yields zeroed
// counts rather than an error.
func (a *App) Analytics(ctx context.Context) error {
	stats, err := a.analyticsService.Dashboard(ctx)
	if err != nil {
		a.log.Warn(ctx, "analytics unavailable", "error", err)
		return err
	}

	fmt.Println("Tickets")
	fmt.Printf("  total:       %d\n", stats.Tickets.Total)
	fmt.Printf("  open:        %d\n", stats.Tickets.Open)
	fmt.Printf("  in progress: %d\n", stats.Tickets.InProgress)
	fmt.Printf("  resolved:    %d\n", stats.Tickets.Resolved)
	fmt.Printf("  closed:      %d\n", stats.Tickets.Closed)
	fmt.Printf("  urgent:      %d\n", stats.Tickets.Urgent)

	fmt.Println("Sentiment")
	if !stats.HasSentimentData() {
		fmt.Println("  no sentiment data yet")
		return nil
	}
	fmt.Printf("  positive: %d\n", stats.Sentiment.Positive)
	fmt.Printf("  neutral:  %d\n", stats.Sentiment.Neutral)
	fmt.Printf("  negative: %d\n", stats.Sentiment.Negative)
	return nil
}
