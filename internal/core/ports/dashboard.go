package ports

import (
	"context"
	"time"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// DashboardStats is the headline card row on the dashboard.
type DashboardStats struct {
	ActiveClients    int `json:"active_clients"`
	ActiveProjects   int `json:"active_projects"`
	PendingApprovals int `json:"pending_approvals"`
	// ApprovalsChange is the delta against the pending count observed on the
	// previous stats call. It resets to 0 whenever the current pending count
	// is zero.
	ApprovalsChange  int     `json:"approvals_change"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	RevenueChangePct float64 `json:"revenue_change_pct"`
}

// CampaignActivity is a recent-activity feed entry.
type CampaignActivity struct {
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	ClientName   string    `json:"client_name"`
	Action       string    `json:"action"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RevenuePoint is one month of billed revenue for the revenue chart.
type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Deadline is an upcoming project deadline.
type Deadline struct {
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	ClientName  string    `json:"client_name"`
	DueAt       time.Time `json:"due_at"`
}

// DashboardService aggregates the read models behind the dashboard views.
// Client-scoped roles receive data filtered to their client; agency roles see
// the whole roster.
type DashboardService interface {
	GetDashboardStats(ctx context.Context, role domain.Role, clientID string) (*DashboardStats, error)
	GetRecentClients(ctx context.Context, limit int) ([]domain.Client, error)
	GetCampaignActivities(ctx context.Context, role domain.Role, clientID string, limit int) ([]CampaignActivity, error)
	GetRevenueData(ctx context.Context, months int) ([]RevenuePoint, error)
	GetUpcomingDeadlines(ctx context.Context, role domain.Role, clientID string, limit int) ([]Deadline, error)
	GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
}
