package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/common"
)

func TestDashboard_AdminOnly(t *testing.T) {
	for _, role := range []models.Role{models.RoleCustomer, models.RoleAgent, ""} {
		svc := NewAnalyticsService(&fakeClient{}, newSession(t, role, "u1"), testLogger())

		_, err := svc.Dashboard(context.Background())
		require.ErrorIs(t, err, common.ErrDenied, "role %q", role)
	}
}

func TestDashboard_Success(t *testing.T) {
	f := &fakeClient{DashboardRet: models.DashboardStats{
		Tickets:   models.TicketStats{Total: 5, Open: 2, Resolved: 3},
		Sentiment: models.SentimentStats{Positive: 1, Neutral: 3, Negative: 1},
	}}
	svc := NewAnalyticsService(f, newSession(t, models.RoleAdmin, "u1"), testLogger())

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Tickets.Total)
	assert.True(t, stats.HasSentimentData())
}

// A failed analytics fetch degrades to a placeholder rather than blocking
// the page.
func TestDashboard_RemoteFailureDegradesToZeroStats(t *testing.T) {
	f := &fakeClient{DashboardErr: common.ErrUnavailable}
	svc := NewAnalyticsService(f, newSession(t, models.RoleAdmin, "u1"), testLogger())

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, stats)
	assert.False(t, stats.HasSentimentData())
}
