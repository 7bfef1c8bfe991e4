package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"levelup/model"
	"levelup/repository"
)

// MemoryStore is an in-memory stand-in for every Mongo repository. It keeps
// insertion order, records each call by method name and can be told to fail
// a given method.
type MemoryStore struct {
	mu sync.Mutex

	Categories []*model.Category
	Activities []*model.Activity
	Goals      []*model.Goal
	Badges     []*model.Badge
	Stats      *model.UserStats

	Calls  []string
	FailOn map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{FailOn: map[string]error{}}
}

func (m *MemoryStore) record(method string) error {
	m.Calls = append(m.Calls, method)
	return m.FailOn[method]
}

// CallsTo counts recorded calls of method.
func (m *MemoryStore) CallsTo(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, call := range m.Calls {
		if call == method {
			n++
		}
	}
	return n
}

func (m *MemoryStore) BadgeByID(id string) *model.Badge {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, badge := range m.Badges {
		if badge.ID == id {
			copied := *badge
			return &copied
		}
	}
	return nil
}

// Categories

func (m *MemoryStore) ListCategories(ctx context.Context) ([]*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListCategories"); err != nil {
		return nil, err
	}

	out := make([]*model.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryStore) CreateCategory(ctx context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateCategory"); err != nil {
		return err
	}

	copied := *category
	m.Categories = append(m.Categories, &copied)
	return nil
}

func (m *MemoryStore) InsertCategories(ctx context.Context, categories []*model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("InsertCategories"); err != nil {
		return err
	}

	for _, c := range categories {
		copied := *c
		m.Categories = append(m.Categories, &copied)
	}
	return nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteCategory"); err != nil {
		return err
	}

	for i, c := range m.Categories {
		if c.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MemoryStore) CountCategories(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CountCategories"); err != nil {
		return 0, err
	}
	return int64(len(m.Categories)), nil
}

// Activities

func (m *MemoryStore) CreateActivity(ctx context.Context, activity *model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateActivity"); err != nil {
		return err
	}

	copied := *activity
	m.Activities = append(m.Activities, &copied)
	return nil
}

func (m *MemoryStore) FindActivities(ctx context.Context, filter model.ActivityFilter) ([]*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("FindActivities"); err != nil {
		return nil, err
	}

	out := []*model.Activity{}
	for _, a := range m.Activities {
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.StartDate != "" && a.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && a.Date > filter.EndDate {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (m *MemoryStore) DeleteActivity(ctx context.Context, activityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteActivity"); err != nil {
		return err
	}

	for i, a := range m.Activities {
		if a.ID == activityID {
			m.Activities = append(m.Activities[:i], m.Activities[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Goals

func (m *MemoryStore) ListGoals(ctx context.Context) ([]*model.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListGoals"); err != nil {
		return nil, err
	}

	out := make([]*model.Goal, 0, len(m.Goals))
	for _, g := range m.Goals {
		copied := *g
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateGoal"); err != nil {
		return err
	}

	copied := *goal
	m.Goals = append(m.Goals, &copied)
	return nil
}

func (m *MemoryStore) DeleteGoal(ctx context.Context, goalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteGoal"); err != nil {
		return err
	}

	for i, g := range m.Goals {
		if g.ID == goalID {
			m.Goals = append(m.Goals[:i], m.Goals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Badges

func (m *MemoryStore) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListBadges"); err != nil {
		return nil, err
	}

	out := make([]*model.Badge, 0, len(m.Badges))
	for _, b := range m.Badges {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (m *MemoryStore) CreateBadge(ctx context.Context, badge *model.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CreateBadge"); err != nil {
		return err
	}

	copied := *badge
	m.Badges = append(m.Badges, &copied)
	return nil
}

func (m *MemoryStore) InsertBadges(ctx context.Context, badges []*model.Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("InsertBadges"); err != nil {
		return err
	}

	for _, b := range badges {
		copied := *b
		m.Badges = append(m.Badges, &copied)
	}
	return nil
}

func (m *MemoryStore) DeleteBadge(ctx context.Context, badgeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("DeleteBadge"); err != nil {
		return err
	}

	for i, b := range m.Badges {
		if b.ID == badgeID {
			m.Badges = append(m.Badges[:i], m.Badges[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MemoryStore) CountBadges(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("CountBadges"); err != nil {
		return 0, err
	}
	return int64(len(m.Badges)), nil
}

func (m *MemoryStore) MarkBadgeEarned(ctx context.Context, badgeID string, earnedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("MarkBadgeEarned"); err != nil {
		return err
	}

	for _, b := range m.Badges {
		if b.ID == badgeID {
			at := earnedAt
			b.IsEarned = true
			b.EarnedDate = &at
		}
	}
	return nil
}

// User stats

func (m *MemoryStore) GetUserStats(ctx context.Context) (*model.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetUserStats"); err != nil {
		return nil, err
	}

	if m.Stats == nil {
		return nil, repository.ErrNotFound
	}
	copied := *m.Stats
	return &copied, nil
}

func (m *MemoryStore) InsertUserStats(ctx context.Context, stats *model.UserStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("InsertUserStats"); err != nil {
		return err
	}

	copied := *stats
	m.Stats = &copied
	return nil
}

func (m *MemoryStore) ReplaceUserStats(ctx context.Context, stats *model.UserStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ReplaceUserStats"); err != nil {
		return err
	}

	if m.Stats == nil {
		return repository.ErrNotFound
	}
	copied := *stats
	m.Stats = &copied
	return nil
}
