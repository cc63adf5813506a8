package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/mockdata"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// DashboardService aggregates the dashboard read models: live counts from
// the persisted stores combined with the generated campaign and revenue
// dataset, all behind the simulated flaky transport.
type DashboardService struct {
	gen       *mockdata.Generator
	sim       *mockdata.Simulator
	projects  ports.ProjectRepository
	approvals ports.ApprovalRepository
	notifs    NotificationReader
	log       zerolog.Logger

	mu          sync.Mutex
	prevPending int64
}

// NotificationReader exposes the per-user inbox maintained by the
// notification worker.
type NotificationReader interface {
	ListForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
}

func NewDashboardService(
	gen *mockdata.Generator,
	sim *mockdata.Simulator,
	projects ports.ProjectRepository,
	approvals ports.ApprovalRepository,
	notifs NotificationReader,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		gen:       gen,
		sim:       sim,
		projects:  projects,
		approvals: approvals,
		notifs:    notifs,
		log:       log,
	}
}

// GetDashboardStats computes the headline cards. ApprovalsChange is the
// delta against the pending count seen on the previous call; whenever the
// current pending count is zero the change is reported as 0, not as a
// negative delta.
func (s *DashboardService) GetDashboardStats(ctx context.Context, role domain.Role, clientID string) (*ports.DashboardStats, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}

	clientScope := ""
	if domain.IsClientRole(role) {
		clientScope = clientID
	}

	pending, err := s.approvals.CountPending(ctx, clientScope)
	if err != nil {
		return nil, err
	}

	_, activeProjects, err := s.projects.List(ctx, ports.ListProjectsFilter{
		ClientID: clientScope,
		Status:   string(domain.ProjectInProgress),
		Page:     1,
		Limit:    1,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	change := int(pending - s.prevPending)
	if pending == 0 {
		change = 0
	}
	s.prevPending = pending
	s.mu.Unlock()

	clients := s.gen.Clients()
	activeClients := len(clients)
	if clientScope != "" {
		activeClients = 1
	}

	revenue := s.monthlyRevenue(clientScope)

	return &ports.DashboardStats{
		ActiveClients:    activeClients,
		ActiveProjects:   int(activeProjects),
		PendingApprovals: int(pending),
		ApprovalsChange:  change,
		MonthlyRevenue:   revenue.current,
		RevenueChangePct: revenue.changePct,
	}, nil
}

type revenueSnapshot struct {
	current   float64
	changePct float64
}

func (s *DashboardService) monthlyRevenue(clientID string) revenueSnapshot {
	var current, previous float64
	for _, inv := range s.gen.Invoices(clientID) {
		switch monthsAgo(inv.IssuedAt) {
		case 0:
			current += inv.Amount
		case 1:
			previous += inv.Amount
		}
	}
	snap := revenueSnapshot{current: current}
	if previous > 0 {
		snap.changePct = (current - previous) / previous * 100
	}
	return snap
}

func (s *DashboardService) GetRecentClients(ctx context.Context, limit int) ([]domain.Client, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	clients := s.gen.Clients()
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].ActiveSince.After(clients[j].ActiveSince)
	})
	if limit > 0 && limit < len(clients) {
		clients = clients[:limit]
	}
	return clients, nil
}

func (s *DashboardService) GetCampaignActivities(ctx context.Context, role domain.Role, clientID string, limit int) ([]ports.CampaignActivity, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}

	clientScope := ""
	if domain.IsClientRole(role) {
		clientScope = clientID
	}

	campaigns := s.gen.Campaigns(clientScope)
	activities := make([]ports.CampaignActivity, 0, len(campaigns))
	for _, c := range campaigns {
		activities = append(activities, ports.CampaignActivity{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			ClientName:   c.ClientName,
			Action:       activityLabel(c.Status),
			OccurredAt:   c.StartDate,
		})
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})
	if limit > 0 && limit < len(activities) {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *DashboardService) GetRevenueData(ctx context.Context, months int) ([]ports.RevenuePoint, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	if months <= 0 {
		months = 6
	}

	totals := make(map[string]float64)
	for _, inv := range s.gen.Invoices("") {
		if monthsAgo(inv.IssuedAt) < months {
			totals[inv.IssuedAt.Format("2006-01")] += inv.Amount
		}
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]ports.RevenuePoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, ports.RevenuePoint{Month: k, Revenue: totals[k]})
	}
	return points, nil
}

func (s *DashboardService) GetUpcomingDeadlines(ctx context.Context, role domain.Role, clientID string, limit int) ([]ports.Deadline, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}

	clientScope := ""
	if domain.IsClientRole(role) {
		clientScope = clientID
	}

	projects, _, err := s.projects.List(ctx, ports.ListProjectsFilter{
		ClientID: clientScope,
		Page:     1,
		Limit:    maxPageLimit,
	})
	if err != nil {
		return nil, err
	}

	deadlines := make([]ports.Deadline, 0, len(projects))
	for _, p := range projects {
		if p.Status == domain.ProjectCompleted || p.Status == domain.ProjectCancelled {
			continue
		}
		deadlines = append(deadlines, ports.Deadline{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			ClientName:  p.ClientName,
			DueAt:       p.Deadline,
		})
	}
	sort.Slice(deadlines, func(i, j int) bool {
		return deadlines[i].DueAt.Before(deadlines[j].DueAt)
	})
	if limit > 0 && limit < len(deadlines) {
		deadlines = deadlines[:limit]
	}
	return deadlines, nil
}

func (s *DashboardService) GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if err := s.sim.Call(ctx); err != nil {
		return nil, err
	}
	return s.notifs.ListForRecipient(ctx, userID)
}

func activityLabel(status domain.CampaignStatus) string {
	switch status {
	case domain.CampaignActive:
		return "campaign launched"
	case domain.CampaignScheduled:
		return "campaign scheduled"
	case domain.CampaignCompleted:
		return "campaign completed"
	default:
		return "campaign drafted"
	}
}

// monthsAgo counts whole calendar months between t and the dataset anchor
// used by the generator, so revenue grouping lines up with generated
// invoices rather than wall-clock time.
func monthsAgo(t time.Time) int {
	now := mockdata.Anchor()
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}
