// Package planner gera metas de curto prazo, tarefas e sugestões a partir
// das metas do usuário. As regras são determinísticas: a mesma entrada e o
// mesmo instante produzem sempre o mesmo plano.
package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
)

// MaxSuggestions limita a quantidade de sugestões retornadas
const MaxSuggestions = 5

// Suggestion é uma recomendação apresentada ao usuário
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RelatedID   string `json:"relatedId,omitempty"`
}

// ShortTermGoalsFor desdobra uma meta de longo prazo em metas diária, semanal e mensal
func ShortTermGoalsFor(parent *goal.LongTermGoal, now time.Time) []*goal.ShortTermGoal {
	specs := []struct {
		title       string
		description string
		timeframe   goal.Timeframe
		endDate     time.Time
	}{
		{
			title:       "Daily Progress: " + parent.Title,
			description: "Take one small step toward " + parent.Title,
			timeframe:   goal.TimeframeDaily,
			endDate:     now.AddDate(0, 0, 1),
		},
		{
			title:       "Weekly Plan: " + parent.Title,
			description: fmt.Sprintf("Make measurable progress toward %s this week", parent.Title),
			timeframe:   goal.TimeframeWeekly,
			endDate:     now.AddDate(0, 0, 7),
		},
		{
			title:       "Monthly Milestone: " + parent.Title,
			description: "Complete a significant portion of work needed for " + parent.Title,
			timeframe:   goal.TimeframeMonthly,
			endDate:     now.AddDate(0, 1, 0),
		},
	}

	goals := make([]*goal.ShortTermGoal, 0, len(specs))
	for _, s := range specs {
		g, err := goal.NewShortTermGoal(parent.UserID, parent.ID, s.title, s.description, s.timeframe, s.endDate)
		if err != nil {
			// título e timeframe são sempre válidos aqui
			continue
		}
		goals = append(goals, g)
	}
	return goals
}

// TasksFor cria as três tarefas iniciais para uma meta: pesquisar, planejar e agir
func TasksFor(userID, goalID, title string, now time.Time) []*task.Task {
	specs := []struct {
		title       string
		description string
		minutes     int
		priority    task.Priority
		due         time.Time
	}{
		{"Research: " + title, "Spend 30 minutes researching best approaches for " + title, 30, task.PriorityHigh, now},
		{"Plan: " + title, "Create a detailed action plan for " + title, 45, task.PriorityMedium, now.AddDate(0, 0, 1)},
		{"First action for " + title, "Complete the first concrete action for " + title, 60, task.PriorityMedium, now.AddDate(0, 0, 3)},
	}

	tasks := make([]*task.Task, 0, len(specs))
	for _, s := range specs {
		t, err := task.NewTask(userID, s.title)
		if err != nil {
			continue
		}
		minutes := s.minutes
		due := s.due
		t.Description = s.description
		t.EstimatedTime = &minutes
		t.DueDate = &due
		t.Priority = s.priority
		t.RelatedGoalID = goalID
		tasks = append(tasks, t)
	}
	return tasks
}

// Suggestions deriva recomendações do estado atual de metas e tarefas.
// A ordem é: tarefas atrasadas, tarefas de alta prioridade, marcos próximos,
// metas atrasadas em relação ao prazo e metas sem plano de curto prazo.
func Suggestions(longTerm []*goal.LongTermGoal, shortTerm []*goal.ShortTermGoal, tasks []*task.Task, now time.Time) []Suggestion {
	var out []Suggestion

	out = append(out, overdueSuggestion(tasks, now)...)
	out = append(out, highPrioritySuggestion(tasks, now)...)
	out = append(out, milestoneSuggestions(longTerm, now)...)
	out = append(out, behindScheduleSuggestions(longTerm, now)...)
	out = append(out, unplannedSuggestions(longTerm, shortTerm)...)

	if len(out) == 0 {
		return []Suggestion{fallbackSuggestion(longTerm)}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func overdueSuggestion(tasks []*task.Task, now time.Time) []Suggestion {
	var overdue []*task.Task
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	if len(overdue) == 0 {
		return nil
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate.Before(*overdue[j].DueDate)
	})

	oldest := overdue[0]
	return []Suggestion{{
		Title:       "Catch Up on Overdue Tasks",
		Description: fmt.Sprintf("You have %d overdue %s. Start with \"%s\".", len(overdue), plural(len(overdue), "task"), oldest.Title),
		RelatedID:   oldest.ID,
	}}
}

func highPrioritySuggestion(tasks []*task.Task, now time.Time) []Suggestion {
	for _, t := range tasks {
		if t.Completed || t.Priority != task.PriorityHigh || t.IsOverdue(now) {
			continue
		}
		return []Suggestion{{
			Title:       "Focus on What Matters",
			Description: fmt.Sprintf("\"%s\" is marked high priority. Block time for it before anything else.", t.Title),
			RelatedID:   t.ID,
		}}
	}
	return nil
}

func milestoneSuggestions(goals []*goal.LongTermGoal, now time.Time) []Suggestion {
	horizon := now.AddDate(0, 0, 7)

	var out []Suggestion
	for _, g := range goals {
		if g.Completed {
			continue
		}
		for _, m := range g.Milestones {
			if m.Completed || m.TargetDate.Before(now) || m.TargetDate.After(horizon) {
				continue
			}
			out = append(out, Suggestion{
				Title:       "Milestone Coming Up",
				Description: fmt.Sprintf("\"%s\" for %s is due on %s.", m.Title, g.Title, m.TargetDate.Format("Jan 2")),
				RelatedID:   g.ID,
			})
		}
	}
	return out
}

// behindScheduleSuggestions aponta metas cujo progresso está mais de 20 pontos
// abaixo da fração de tempo já decorrida até a data alvo.
func behindScheduleSuggestions(goals []*goal.LongTermGoal, now time.Time) []Suggestion {
	var out []Suggestion
	for _, g := range goals {
		if g.Completed || !g.TargetDate.After(g.CreatedAt) {
			continue
		}
		total := g.TargetDate.Sub(g.CreatedAt)
		elapsed := now.Sub(g.CreatedAt)
		if elapsed <= 0 {
			continue
		}
		expected := int(100 * elapsed.Seconds() / total.Seconds())
		if expected > 100 {
			expected = 100
		}
		if g.Progress+20 >= expected {
			continue
		}
		out = append(out, Suggestion{
			Title:       fmt.Sprintf("Get %s Back on Track", g.Title),
			Description: fmt.Sprintf("You're at %d%% but about %d%% of the time until the target date has passed.", g.Progress, expected),
			RelatedID:   g.ID,
		})
	}
	return out
}

func unplannedSuggestions(longTerm []*goal.LongTermGoal, shortTerm []*goal.ShortTermGoal) []Suggestion {
	planned := make(map[string]bool)
	for _, st := range shortTerm {
		if st.ParentGoalID != "" && !st.Completed {
			planned[st.ParentGoalID] = true
		}
	}

	var out []Suggestion
	for _, g := range longTerm {
		if g.Completed || planned[g.ID] {
			continue
		}
		out = append(out, Suggestion{
			Title:       fmt.Sprintf("Break Down %s", g.Title),
			Description: "This goal has no active short-term plan. Generate daily, weekly and monthly steps for it.",
			RelatedID:   g.ID,
		})
	}
	return out
}

func fallbackSuggestion(longTerm []*goal.LongTermGoal) Suggestion {
	if len(longTerm) == 0 {
		return Suggestion{
			Title:       "Set Your First Goal",
			Description: "Try saying \"add new long-term goal called 'Learn Spanish'\" to get started.",
		}
	}
	return Suggestion{
		Title:       "Keep the Momentum",
		Description: "Everything is on track. Review your goals and pick one task to finish today.",
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
