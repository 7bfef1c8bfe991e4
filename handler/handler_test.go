package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"levelup/model"
	"levelup/services"
	"levelup/testutils"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
	utils.Logger.SetOutput(io.Discard)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context, rp *readpref.ReadPref) error { return p.err }

type testServer struct {
	router *gin.Engine
	store  *testutils.MemoryStore
	clock  *testutils.FixedTime
}

// newTestServer seeds an in-memory store and wires the full router over it.
func newTestServer(t *testing.T, db Pinger) *testServer {
	t.Helper()

	store := testutils.NewMemoryStore()
	clock := testutils.NewFixedTime(time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, usecase.NewSeeder(store, store, store, clock).Seed(context.Background()))

	progress := usecase.NewProgressService(store, usecase.NewBadgeEvaluator(store, clock), services.NewLocalProgressLock())
	router := NewRouter(Services{
		Categories: usecase.NewCategoriesService(store, clock),
		Activities: usecase.NewActivitiesService(store, progress, clock),
		Goals:      usecase.NewGoalsService(store, clock),
		Badges:     usecase.NewBadgesService(store),
		Progress:   progress,
		Analytics:  usecase.NewAnalyticsService(store, clock),
		DB:         db,
	}, []string{"*"})

	return &testServer{router: router, store: store, clock: clock}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

func TestCategoryEndpoints(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	w := s.do(http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var categories []model.Category
	decode(t, w, &categories)
	assert.Len(t, categories, 4)

	w = s.do(http.MethodPost, "/api/categories", `{"name":"Reading","icon":"Book","color":"#10B981"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created model.Category
	decode(t, w, &created)
	assert.True(t, created.IsCustom)
	assert.NotEmpty(t, created.ID)

	w = s.do(http.MethodPost, "/api/categories", `{"icon":"Book","color":"#10B981"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")

	w = s.do(http.MethodDelete, "/api/categories/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Category deleted"}`, w.Body.String())

	w = s.do(http.MethodDelete, "/api/categories/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Category not found"}`, w.Body.String())
}

func TestDeleteMissingRecords(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	tests := []struct {
		path   string
		detail string
	}{
		{"/api/activities/nope", "Activity not found"},
		{"/api/goals/nope", "Goal not found"},
		{"/api/badges/nope", "Badge not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.do(http.MethodDelete, tt.path, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"detail":"`+tt.detail+`"}`, w.Body.String())
		})
	}
}

func TestCreateActivityUpdatesStatsAndBadges(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	w := s.do(http.MethodPost, "/api/activities",
		`{"category_id":"gym","category_name":"Gym","date":"2025-01-05","start_time":"07:15","duration":30,"notes":"legs"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var activity model.Activity
	decode(t, w, &activity)
	assert.Equal(t, 30, activity.Duration)
	require.NotNil(t, activity.Notes)
	assert.Equal(t, "legs", *activity.Notes)

	w = s.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats model.UserStats
	decode(t, w, &stats)
	// 300 XP clears the 100 and 200 thresholds.
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 1, stats.TotalActivities)
	assert.Equal(t, 1, stats.CurrentStreak)
	require.NotNil(t, stats.LastActivityDate)
	assert.Equal(t, "2025-01-05", *stats.LastActivityDate)

	w = s.do(http.MethodGet, "/api/badges", "")
	require.Equal(t, http.StatusOK, w.Code)
	var badges []model.Badge
	decode(t, w, &badges)
	require.Len(t, badges, 6)
	for _, badge := range badges {
		assert.Equal(t, badge.ID == model.BadgeFirstStep, badge.IsEarned, badge.ID)
	}
}

func TestCreateActivityValidation(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{
			name:   "bad date",
			body:   `{"category_id":"gym","category_name":"Gym","date":"2025-13-01","start_time":"07:15","duration":30}`,
			detail: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:   "bad start time",
			body:   `{"category_id":"gym","category_name":"Gym","date":"2025-01-05","start_time":"25:00","duration":30}`,
			detail: "start_time must be a time in HH:MM format",
		},
		{
			name:   "missing duration",
			body:   `{"category_id":"gym","category_name":"Gym","date":"2025-01-05","start_time":"07:15"}`,
			detail: "duration is required",
		},
		{
			name:   "malformed json",
			body:   `{"category_id":`,
			detail: "Invalid request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/activities", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.detail)
		})
	}

	assert.Empty(t, s.store.Activities)
	assert.Zero(t, s.store.CallsTo("ReplaceUserStats"))
}

func TestCreateActivityProgressFailure(t *testing.T) {
	s := newTestServer(t, fakePinger{})
	s.store.FailOn["ReplaceUserStats"] = errors.New("write conflict")

	w := s.do(http.MethodPost, "/api/activities",
		`{"category_id":"gym","category_name":"Gym","date":"2025-01-05","start_time":"07:15","duration":30}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestListActivitiesFilters(t *testing.T) {
	s := newTestServer(t, fakePinger{})
	s.store.Activities = []*model.Activity{
		{ID: "a1", CategoryID: "gym", Date: "2025-01-01"},
		{ID: "a2", CategoryID: "study", Date: "2025-01-02"},
		{ID: "a3", CategoryID: "gym", Date: "2025-01-03"},
	}

	w := s.do(http.MethodGet, "/api/activities?category_id=gym&start_date=2025-01-02", "")
	require.Equal(t, http.StatusOK, w.Code)
	var activities []model.Activity
	decode(t, w, &activities)
	require.Len(t, activities, 1)
	assert.Equal(t, "a3", activities[0].ID)

	w = s.do(http.MethodGet, "/api/activities", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &activities)
	require.Len(t, activities, 3)
	assert.Equal(t, "a3", activities[0].ID)
	assert.Equal(t, "a1", activities[2].ID)

	w = s.do(http.MethodGet, "/api/activities?start_date=yesterday", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGoalEndpoints(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	w := s.do(http.MethodPost, "/api/goals", `{"category_id":"study","category_name":"Study","target":600,"period":"weekly"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var goal model.Goal
	decode(t, w, &goal)
	assert.Equal(t, 0, goal.CurrentProgress)
	assert.Equal(t, 600, goal.Target)

	w = s.do(http.MethodGet, "/api/goals", "")
	require.Equal(t, http.StatusOK, w.Code)
	var goals []model.Goal
	decode(t, w, &goals)
	assert.Len(t, goals, 1)

	w = s.do(http.MethodDelete, "/api/goals/"+goal.ID, "")
	assert.JSONEq(t, `{"message":"Goal deleted"}`, w.Body.String())
}

func TestCreateCustomBadge(t *testing.T) {
	s := newTestServer(t, fakePinger{})

	w := s.do(http.MethodPost, "/api/badges",
		`{"name":"Bookworm","description":"Study 20 times","icon":"Book","condition_type":"activity_count","condition_value":20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var badge map[string]interface{}
	decode(t, w, &badge)
	assert.Equal(t, false, badge["is_earned"])
	assert.Nil(t, badge["earned_date"])
	assert.NotContains(t, badge, "condition_type")
	assert.Len(t, s.store.Badges, 7)
}

func TestStatsSelfHeals(t *testing.T) {
	s := newTestServer(t, fakePinger{})
	s.store.Stats = nil

	w := s.do(http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user_stats","level":1,"xp":0,"total_activities":0,
		"current_streak":0,"longest_streak":0,"last_activity_date":null}`, w.Body.String())
	assert.NotNil(t, s.store.Stats)
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t, fakePinger{})
	s.store.Activities = []*model.Activity{
		{ID: "a1", CategoryID: "gym", CategoryName: "Gym", Date: "2025-01-01", Duration: 40},
		{ID: "a2", CategoryID: "study", CategoryName: "Study", Date: "2025-01-02", Duration: 90},
	}

	w := s.do(http.MethodGet, "/api/analytics/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"category_totals":{"Gym":40,"Study":90},"total_activities":2}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/analytics/daily", "")
	require.Equal(t, http.StatusOK, w.Code)
	var daily []map[string]interface{}
	decode(t, w, &daily)
	require.Len(t, daily, 7)
	assert.Equal(t, "2024-12-29", daily[0]["date"])
	assert.Equal(t, float64(40), daily[3]["Gym"])

	w = s.do(http.MethodGet, "/api/analytics/category/study?days=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"date":"2024-12-31","duration":0},
		{"date":"2025-01-01","duration":0},
		{"date":"2025-01-02","duration":90},
		{"date":"2025-01-03","duration":0},
		{"date":"2025-01-04","duration":0}
	]`, w.Body.String())

	for _, query := range []string{"days=0", "days=-3", "days=abc"} {
		w = s.do(http.MethodGet, "/api/analytics/daily?"+query, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
	}
}

func TestHealthEndpoint(t *testing.T) {
	w := newTestServer(t, fakePinger{}).do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)

	w = newTestServer(t, fakePinger{err: errors.New("no reachable servers")}).do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, fakePinger{})
	s.do(http.MethodGet, "/api/categories", "")

	w := s.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/api/categories"`)
}
