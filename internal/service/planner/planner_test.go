package planner

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/adapter/repository/memory"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/pkg/logger/loggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newGoal(t *testing.T, title string, created, target time.Time) *goal.LongTermGoal {
	t.Helper()
	g, err := goal.NewLongTermGoal("user-1", title, "", target)
	require.NoError(t, err)
	g.CreatedAt = created
	return g
}

func TestShortTermGoalsFor(t *testing.T) {
	parent := newGoal(t, "Learn Piano", refTime, refTime.AddDate(1, 0, 0))

	goals := ShortTermGoalsFor(parent, refTime)
	require.Len(t, goals, 3)

	assert.Equal(t, "Daily Progress: Learn Piano", goals[0].Title)
	assert.Equal(t, goal.TimeframeDaily, goals[0].Timeframe)
	assert.Equal(t, refTime.AddDate(0, 0, 1), goals[0].EndDate)

	assert.Equal(t, "Weekly Plan: Learn Piano", goals[1].Title)
	assert.Equal(t, goal.TimeframeWeekly, goals[1].Timeframe)
	assert.Equal(t, refTime.AddDate(0, 0, 7), goals[1].EndDate)

	assert.Equal(t, "Monthly Milestone: Learn Piano", goals[2].Title)
	assert.Equal(t, goal.TimeframeMonthly, goals[2].Timeframe)
	assert.Equal(t, refTime.AddDate(0, 1, 0), goals[2].EndDate)

	for _, g := range goals {
		assert.Equal(t, parent.ID, g.ParentGoalID)
		assert.Equal(t, "user-1", g.UserID)
		assert.Zero(t, g.Progress)
	}
}

func TestTasksFor(t *testing.T) {
	tasks := TasksFor("user-1", "goal-1", "Learn Piano", refTime)
	require.Len(t, tasks, 3)

	expected := []struct {
		title    string
		minutes  int
		priority task.Priority
		due      time.Time
	}{
		{"Research: Learn Piano", 30, task.PriorityHigh, refTime},
		{"Plan: Learn Piano", 45, task.PriorityMedium, refTime.AddDate(0, 0, 1)},
		{"First action for Learn Piano", 60, task.PriorityMedium, refTime.AddDate(0, 0, 3)},
	}

	for i, want := range expected {
		got := tasks[i]
		assert.Equal(t, want.title, got.Title)
		require.NotNil(t, got.EstimatedTime)
		assert.Equal(t, want.minutes, *got.EstimatedTime)
		assert.Equal(t, want.priority, got.Priority)
		require.NotNil(t, got.DueDate)
		assert.Equal(t, want.due, *got.DueDate)
		assert.Equal(t, "goal-1", got.RelatedGoalID)
	}
}

func TestSuggestions_Fallbacks(t *testing.T) {
	s := Suggestions(nil, nil, nil, refTime)
	require.Len(t, s, 1)
	assert.Equal(t, "Set Your First Goal", s[0].Title)

	g := newGoal(t, "Learn Piano", refTime, refTime.AddDate(1, 0, 0))
	planned, err := goal.NewShortTermGoal("user-1", g.ID, "Practice", "", goal.TimeframeWeekly, refTime.AddDate(0, 0, 7))
	require.NoError(t, err)

	s = Suggestions([]*goal.LongTermGoal{g}, []*goal.ShortTermGoal{planned}, nil, refTime)
	require.Len(t, s, 1)
	assert.Equal(t, "Keep the Momentum", s[0].Title)
}

func TestSuggestions_DerivedFromData(t *testing.T) {
	yesterday := refTime.AddDate(0, 0, -1)
	lastWeek := refTime.AddDate(0, 0, -7)

	late1, _ := task.NewTask("user-1", "Send invoice")
	late1.DueDate = &yesterday
	late2, _ := task.NewTask("user-1", "Call bank")
	late2.DueDate = &lastWeek
	urgent, _ := task.NewTask("user-1", "Prepare talk")
	urgent.Priority = task.PriorityHigh

	behind := newGoal(t, "Run a Marathon", refTime.AddDate(0, -6, 0), refTime.AddDate(0, 6, 0))
	behind.Progress = 10
	m, err := goal.NewMilestone("Half marathon", refTime.AddDate(0, 0, 3))
	require.NoError(t, err)
	behind.Milestones = append(behind.Milestones, *m)

	s := Suggestions([]*goal.LongTermGoal{behind}, nil, []*task.Task{late1, late2, urgent}, refTime)
	require.Len(t, s, 5)

	assert.Equal(t, "Catch Up on Overdue Tasks", s[0].Title)
	assert.Contains(t, s[0].Description, "2 overdue tasks")
	assert.Contains(t, s[0].Description, "Call bank")
	assert.Equal(t, late2.ID, s[0].RelatedID)

	assert.Equal(t, "Focus on What Matters", s[1].Title)
	assert.Equal(t, urgent.ID, s[1].RelatedID)

	assert.Equal(t, "Milestone Coming Up", s[2].Title)
	assert.Equal(t, "Get Run a Marathon Back on Track", s[3].Title)
	assert.Equal(t, "Break Down Run a Marathon", s[4].Title)
}

func TestSuggestions_Deterministic(t *testing.T) {
	g := newGoal(t, "Learn Piano", refTime.AddDate(0, -1, 0), refTime.AddDate(0, 11, 0))
	a := Suggestions([]*goal.LongTermGoal{g}, nil, nil, refTime)
	b := Suggestions([]*goal.LongTermGoal{g}, nil, nil, refTime)
	assert.Equal(t, a, b)
}

func TestService_GenerateAndSuggest(t *testing.T) {
	ctx := context.Background()
	goals := memory.NewGoalRepository()
	tasks := memory.NewTaskRepository()
	svc := NewService(goals, tasks, loggertest.New(t))
	svc.now = func() time.Time { return refTime }

	parent := newGoal(t, "Learn Piano", refTime, refTime.AddDate(1, 0, 0))
	require.NoError(t, goals.CreateLongTerm(ctx, parent))

	generated, err := svc.GenerateShortTermGoals(ctx, "user-1", parent.ID)
	require.NoError(t, err)
	assert.Len(t, generated, 3)

	stored, err := goals.ListShortTerm(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	_, err = svc.GenerateShortTermGoals(ctx, "user-2", parent.ID)
	assert.ErrorIs(t, err, goal.ErrGoalNotFound)

	created, err := svc.GenerateTasks(ctx, "user-1", stored[0].ID, goal.TypeShortTerm)
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "Research: "+stored[0].Title, created[0].Title)

	_, err = svc.GenerateTasks(ctx, "user-1", stored[0].ID, goal.TypeLongTerm)
	assert.ErrorIs(t, err, goal.ErrGoalNotFound)

	suggestions, err := svc.Suggest(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Focus on What Matters", suggestions[0].Title)
}
