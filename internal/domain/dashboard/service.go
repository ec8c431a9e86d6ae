package dashboard

import "context"

type DashboardService interface {
	Statistics(ctx context.Context) (*StatisticsResponse, error)
}
