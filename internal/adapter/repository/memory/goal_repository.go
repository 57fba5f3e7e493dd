package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
)

// GoalRepository implementa goal.Repository em memória
type GoalRepository struct {
	mu        sync.RWMutex
	longTerm  map[string]*goal.LongTermGoal
	shortTerm map[string]*goal.ShortTermGoal
}

// NewGoalRepository cria um repositório de metas vazio
func NewGoalRepository() *GoalRepository {
	return &GoalRepository{
		longTerm:  make(map[string]*goal.LongTermGoal),
		shortTerm: make(map[string]*goal.ShortTermGoal),
	}
}

func copyLongTerm(g *goal.LongTermGoal) *goal.LongTermGoal {
	c := *g
	c.Milestones = append([]goal.Milestone{}, g.Milestones...)
	return &c
}

func (r *GoalRepository) CreateLongTerm(_ context.Context, g *goal.LongTermGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.longTerm[g.ID] = copyLongTerm(g)
	return nil
}

func (r *GoalRepository) FindLongTermByID(_ context.Context, userID, id string) (*goal.LongTermGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.longTerm[id]
	if !ok || g.UserID != userID {
		return nil, goal.ErrGoalNotFound
	}
	return copyLongTerm(g), nil
}

func (r *GoalRepository) ListLongTerm(_ context.Context, userID string) ([]*goal.LongTermGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*goal.LongTermGoal{}
	for _, g := range r.longTerm {
		if g.UserID == userID {
			goals = append(goals, copyLongTerm(g))
		}
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	return goals, nil
}

func (r *GoalRepository) UpdateLongTerm(_ context.Context, g *goal.LongTermGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.longTerm[g.ID]
	if !ok || current.UserID != g.UserID {
		return goal.ErrGoalNotFound
	}

	g.UpdatedAt = time.Now()
	updated := copyLongTerm(g)
	updated.Milestones = current.Milestones
	r.longTerm[g.ID] = updated
	return nil
}

func (r *GoalRepository) DeleteLongTerm(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.longTerm[id]
	if !ok || g.UserID != userID {
		return goal.ErrGoalNotFound
	}
	delete(r.longTerm, id)

	for stID, st := range r.shortTerm {
		if st.ParentGoalID == id {
			delete(r.shortTerm, stID)
		}
	}
	return nil
}

func (r *GoalRepository) AddMilestone(_ context.Context, goalID string, m *goal.Milestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.longTerm[goalID]
	if !ok {
		return goal.ErrGoalNotFound
	}
	g.Milestones = append(g.Milestones, *m)
	return nil
}

func (r *GoalRepository) UpdateMilestone(_ context.Context, goalID string, m *goal.Milestone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.longTerm[goalID]
	if !ok {
		return goal.ErrGoalNotFound
	}
	existing, found := g.FindMilestone(m.ID)
	if !found {
		return goal.ErrMilestoneNotFound
	}
	*existing = *m
	return nil
}

func (r *GoalRepository) DeleteMilestone(_ context.Context, goalID, milestoneID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.longTerm[goalID]
	if !ok {
		return goal.ErrGoalNotFound
	}
	for i := range g.Milestones {
		if g.Milestones[i].ID == milestoneID {
			g.Milestones = append(g.Milestones[:i], g.Milestones[i+1:]...)
			return nil
		}
	}
	return goal.ErrMilestoneNotFound
}

func (r *GoalRepository) CreateShortTerm(_ context.Context, goals ...*goal.ShortTermGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range goals {
		c := *g
		r.shortTerm[g.ID] = &c
	}
	return nil
}

func (r *GoalRepository) FindShortTermByID(_ context.Context, userID, id string) (*goal.ShortTermGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.shortTerm[id]
	if !ok || g.UserID != userID {
		return nil, goal.ErrGoalNotFound
	}
	c := *g
	return &c, nil
}

func (r *GoalRepository) ListShortTerm(_ context.Context, userID string) ([]*goal.ShortTermGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*goal.ShortTermGoal{}
	for _, g := range r.shortTerm {
		if g.UserID == userID {
			c := *g
			goals = append(goals, &c)
		}
	}
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].EndDate.Equal(goals[j].EndDate) {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		}
		return goals[i].EndDate.Before(goals[j].EndDate)
	})
	return goals, nil
}

func (r *GoalRepository) UpdateShortTerm(_ context.Context, g *goal.ShortTermGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.shortTerm[g.ID]
	if !ok || current.UserID != g.UserID {
		return goal.ErrGoalNotFound
	}
	g.UpdatedAt = time.Now()
	c := *g
	r.shortTerm[g.ID] = &c
	return nil
}

func (r *GoalRepository) DeleteShortTerm(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.shortTerm[id]
	if !ok || g.UserID != userID {
		return goal.ErrGoalNotFound
	}
	delete(r.shortTerm, id)
	return nil
}
