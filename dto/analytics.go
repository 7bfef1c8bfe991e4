package dto

type AnalyticsSummary struct {
	CategoryTotals  map[string]int `json:"category_totals"`
	TotalActivities int            `json:"total_activities"`
}

// DailyBreakdown is one day of the daily view: "date" plus one key per
// category name that had activity that day.
type DailyBreakdown map[string]interface{}

type CategoryDay struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

type AnalyticsWindowQuery struct {
	Days *int `form:"days" binding:"omitempty,min=1,max=3650"`
}
