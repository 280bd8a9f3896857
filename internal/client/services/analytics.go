package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/supportpilot/internal/client/api"
	"github.com/dmitrijs2005/supportpilot/internal/client/models"
	"github.com/dmitrijs2005/supportpilot/internal/client/rolegate"
	"github.com/dmitrijs2005/supportpilot/internal/client/session"
	"github.com/dmitrijs2005/supportpilot/internal/common"
	"github.com/dmitrijs2005/supportpilot/internal/logging"
)

// AnalyticsService fetches the admin dashboard statistics.
type AnalyticsService struct {
	api     api.Client
	session *session.Session
	log     logging.Logger
}

func NewAnalyticsService(apiClient api.Client, sess *session.Session, log logging.Logger) *AnalyticsService {
	return &AnalyticsService{api: apiClient, session: sess, log: log}
}

// Dashboard returns the analytics payload for admin sessions. A remote
// failure degrades to zero-valued stats rather than blocking the view; only
// an authorization denial is surfaced as an error.
func (a *AnalyticsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	if !rolegate.IsAllowed(a.session.Role(), rolegate.ActionViewAnalytics) {
		return models.DashboardStats{}, fmt.Errorf("%w: role %q may not view analytics", common.ErrDenied, a.session.Role())
	}

	stats, err := a.api.Dashboard(ctx)
	if err != nil {
		a.log.Warn(ctx, "analytics fetch failed, showing placeholder", "error", err)
		return models.DashboardStats{}, nil
	}
	return stats, nil
}
