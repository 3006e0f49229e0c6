package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"activotrack/internal/adapters/persistence/models"
	"activotrack/internal/adapters/persistence/repositories"
	"activotrack/internal/pkg/timeago"

	"golang.org/x/sync/errgroup"
)

// DashboardService handles dashboard aggregation
type DashboardService struct {
	assetRepo  repositories.AssetRepository
	loanRepo   repositories.LoanRepository
	ticketRepo repositories.TicketRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	assetRepo repositories.AssetRepository,
	loanRepo repositories.LoanRepository,
	ticketRepo repositories.TicketRepository,
) *DashboardService {
	return &DashboardService{
		assetRepo:  assetRepo,
		loanRepo:   loanRepo,
		ticketRepo: ticketRepo,
	}
}

// Stats represents dashboard statistics
type Stats struct {
	TotalAssets       int64            `json:"totalAssets"`
	AvailableAssets   int64            `json:"availableAssets"`
	InUseAssets       int64            `json:"inUseAssets"`
	MaintenanceAssets int64            `json:"maintenanceAssets"`
	RetiredAssets     int64            `json:"retiredAssets"`
	LoanedAssets      int64            `json:"loanedAssets"`
	TicketsByStatus   map[string]int64 `json:"ticketsByStatus"`
}

// GetStats aggregates the dashboard counters. The count queries are
// independent, so they run concurrently and the response is composed once
// all of them finish.
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalAssets, err = s.assetRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AvailableAssets, err = s.assetRepo.CountByStatus(gctx, models.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		stats.InUseAssets, err = s.assetRepo.CountByStatus(gctx, models.StatusInUse)
		return err
	})
	g.Go(func() (err error) {
		stats.MaintenanceAssets, err = s.assetRepo.CountByStatus(gctx, models.StatusMaintenance)
		return err
	})
	g.Go(func() (err error) {
		stats.RetiredAssets, err = s.assetRepo.CountByStatus(gctx, models.StatusRetired)
		return err
	})
	g.Go(func() (err error) {
		stats.LoanedAssets, err = s.loanRepo.CountActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TicketsByStatus, err = s.ticketRepo.CountByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ChartSlice represents one slice of a chart feed
type ChartSlice struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// AssetStatusChart groups assets by their status display name
func (s *DashboardService) AssetStatusChart(ctx context.Context) ([]ChartSlice, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return groupAssets(assets, func(a *models.Asset) string {
		if a.Status != nil {
			return a.Status.Name
		}
		return "desconocido"
	}), nil
}

// AssetTypeChart groups assets by their type display name
func (s *DashboardService) AssetTypeChart(ctx context.Context) ([]ChartSlice, error) {
	assets, err := s.assetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return groupAssets(assets, func(a *models.Asset) string {
		if a.Type != nil {
			return a.Type.Name
		}
		return "desconocido"
	}), nil
}

func groupAssets(assets []*models.Asset, key func(*models.Asset) string) []ChartSlice {
	counts := make(map[string]int64)
	for _, asset := range assets {
		counts[key(asset)]++
	}

	slices := make([]ChartSlice, 0, len(counts))
	for name, count := range counts {
		slices = append(slices, ChartSlice{Name: name, Count: count})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

// ActivityItem represents one recent-activity entry
type ActivityItem struct {
	Type        string    `json:"type"`
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	TimeAgo     string    `json:"time_ago"`
}

const (
	activityFeedFetch = 5
	activityFeedCap   = 10
)

// RecentActivity merges the newest loans and tickets into one feed, newest
// first, capped at ten entries.
func (s *DashboardService) RecentActivity(ctx context.Context) ([]ActivityItem, error) {
	loans, err := s.loanRepo.ListRecent(ctx, activityFeedFetch)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.ListRecent(ctx, activityFeedFetch)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]ActivityItem, 0, len(loans)+len(tickets))

	for _, loan := range loans {
		description := "Préstamo registrado"
		if loan.Asset != nil && loan.User != nil {
			description = fmt.Sprintf("Préstamo de %s a %s", loan.Asset.Name, loan.User.FullName)
		}
		items = append(items, ActivityItem{
			Type:        "loan",
			ID:          loan.ID,
			Description: description,
			Timestamp:   loan.CreatedAt,
			TimeAgo:     timeago.Format(loan.CreatedAt, now),
		})
	}

	for _, ticket := range tickets {
		items = append(items, ActivityItem{
			Type:        "ticket",
			ID:          ticket.ID,
			Description: fmt.Sprintf("Ticket: %s", ticket.Title),
			Timestamp:   ticket.CreatedAt,
			TimeAgo:     timeago.Format(ticket.CreatedAt, now),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > activityFeedCap {
		items = items[:activityFeedCap]
	}
	return items, nil
}
