package usecase

import (
	"context"

	"levelup/dto"
	"levelup/model"
	"levelup/utils"
)

const (
	SummaryWindowDays         = 30
	DefaultDailyWindowDays    = 7
	DefaultCategoryWindowDays = 30
)

// AnalyticsService rolls activities up into per-day and per-category totals.
//
// Every window starts N days before today (UTC) and selects activities dated
// on or after that day. The per-day views list N days starting at the window
// start, so today's bucket is not part of the series.
type AnalyticsService struct {
	activities ActivityStore
	clock      utils.Clock
}

func NewAnalyticsService(activities ActivityStore, clock utils.Clock) *AnalyticsService {
	return &AnalyticsService{activities: activities, clock: clock}
}

func (svc *AnalyticsService) Summary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	activities, err := svc.activitiesSince(ctx, "", SummaryWindowDays)
	if err != nil {
		return nil, err
	}

	summary := &dto.AnalyticsSummary{
		CategoryTotals:  map[string]int{},
		TotalActivities: len(activities),
	}
	for _, activity := range activities {
		summary.CategoryTotals[activity.CategoryName] += activity.Duration
	}
	return summary, nil
}

// Daily returns one entry per day holding "date" and the minutes per category
// name. Categories without activity that day are left out.
func (svc *AnalyticsService) Daily(ctx context.Context, days int) ([]dto.DailyBreakdown, error) {
	activities, err := svc.activitiesSince(ctx, "", days)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]map[string]int)
	for _, activity := range activities {
		if totals[activity.Date] == nil {
			totals[activity.Date] = make(map[string]int)
		}
		totals[activity.Date][activity.CategoryName] += activity.Duration
	}

	result := make([]dto.DailyBreakdown, 0, days)
	for _, date := range svc.windowDates(days) {
		point := dto.DailyBreakdown{"date": date}
		for category, minutes := range totals[date] {
			point[category] = minutes
		}
		result = append(result, point)
	}
	return result, nil
}

// CategoryDaily returns one entry per day for a single category, with zero
// duration on days without activity.
func (svc *AnalyticsService) CategoryDaily(ctx context.Context, categoryID string, days int) ([]dto.CategoryDay, error) {
	activities, err := svc.activitiesSince(ctx, categoryID, days)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, activity := range activities {
		totals[activity.Date] += activity.Duration
	}

	result := make([]dto.CategoryDay, 0, days)
	for _, date := range svc.windowDates(days) {
		result = append(result, dto.CategoryDay{Date: date, Duration: totals[date]})
	}
	return result, nil
}

func (svc *AnalyticsService) activitiesSince(ctx context.Context, categoryID string, days int) ([]*model.Activity, error) {
	return svc.activities.FindActivities(ctx, model.ActivityFilter{
		CategoryID: categoryID,
		StartDate:  utils.FormatDate(utils.DaysAgo(svc.clock, days)),
	})
}

func (svc *AnalyticsService) windowDates(days int) []string {
	start := utils.DaysAgo(svc.clock, days)
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, utils.FormatDate(start.AddDate(0, 0, i)))
	}
	return dates
}
