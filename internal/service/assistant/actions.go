package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/hugohenrick/voice-productivity/pkg/voice"
)

// GoalsData é o payload de SHOW_GOALS; listas omitidas quando filtradas pelo tipo
type GoalsData struct {
	LongTermGoals  []*goal.LongTermGoal  `json:"longTermGoals,omitempty"`
	ShortTermGoals []*goal.ShortTermGoal `json:"shortTermGoals,omitempty"`
}

// execute aplica a intenção aos dados do usuário. Erros de domínio viram
// resultados sem sucesso; só erros de infraestrutura são retornados.
func (a *Assistant) execute(ctx context.Context, u *user.User, cmd voice.ParsedCommand) (*ActionResult, error) {
	var (
		result *ActionResult
		err    error
	)

	switch cmd.Intent {
	case voice.IntentShowGoals:
		e, _ := cmd.Entities.(voice.GoalTypeEntities)
		result, err = a.showGoals(ctx, u.ID, e.GoalType)
	case voice.IntentShowTasks:
		result, err = a.showTasks(ctx, u.ID)
	case voice.IntentAddGoal:
		e, _ := cmd.Entities.(voice.AddGoalEntities)
		result, err = a.addGoal(ctx, u.ID, e)
	case voice.IntentUpdateGoal:
		e, _ := cmd.Entities.(voice.UpdateGoalEntities)
		result, err = a.updateGoal(ctx, u.ID, e)
	case voice.IntentCompleteTask:
		e, _ := cmd.Entities.(voice.TaskEntities)
		result, err = a.completeTask(ctx, u.ID, e.TaskTitle)
	case voice.IntentCreateTask:
		e, _ := cmd.Entities.(voice.TaskEntities)
		result, err = a.createTask(ctx, u.ID, e.TaskTitle)
	case voice.IntentGoalProgress:
		e, _ := cmd.Entities.(voice.GoalRefEntities)
		result, err = a.goalProgress(ctx, u.ID, e.Title)
	case voice.IntentGenerateGoals:
		result, err = a.generateGoals(ctx, u.ID)
	case voice.IntentHelp:
		result = succeeded(voice.MessageHelp, nil)
	default:
		return nil, nil
	}

	if err != nil {
		if isDomainError(err) {
			return failed(err.Error()), nil
		}
		a.logger.Error("Falha ao executar comando de voz", "user_id", u.ID, "intent", string(cmd.Intent), "error", err)
		return nil, err
	}
	return result, nil
}

func isDomainError(err error) bool {
	for _, target := range []error{
		goal.ErrGoalNotFound,
		goal.ErrEmptyTitle,
		goal.ErrInvalidProgress,
		task.ErrTaskNotFound,
		task.ErrEmptyTitle,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func succeeded(message string, data interface{}) *ActionResult {
	return &ActionResult{Success: true, Message: message, Data: data, OperationID: uuid.New().String()}
}

func failed(message string) *ActionResult {
	return &ActionResult{Success: false, Message: message, OperationID: uuid.New().String()}
}

func (a *Assistant) showGoals(ctx context.Context, userID string, goalType voice.GoalType) (*ActionResult, error) {
	data := GoalsData{}
	count := 0

	if goalType != voice.GoalTypeShortTerm {
		longTerm, err := a.goals.ListLongTerm(ctx, userID)
		if err != nil {
			return nil, err
		}
		data.LongTermGoals = longTerm
		count += len(longTerm)
	}
	if goalType != voice.GoalTypeLongTerm {
		shortTerm, err := a.goals.ListShortTerm(ctx, userID)
		if err != nil {
			return nil, err
		}
		data.ShortTermGoals = shortTerm
		count += len(shortTerm)
	}

	return succeeded(fmt.Sprintf("Found %d %s", count, plural(count, "goal")), data), nil
}

func (a *Assistant) showTasks(ctx context.Context, userID string) (*ActionResult, error) {
	tasks, err := a.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := 0
	for _, t := range tasks {
		if !t.Completed {
			pending++
		}
	}
	return succeeded(fmt.Sprintf("Found %d %s, %d pending", len(tasks), plural(len(tasks), "task"), pending), tasks), nil
}

func (a *Assistant) addGoal(ctx context.Context, userID string, e voice.AddGoalEntities) (*ActionResult, error) {
	now := a.now()

	if e.GoalType == voice.GoalTypeShortTerm {
		g, err := goal.NewShortTermGoal(userID, "", e.Title, "", goal.TimeframeWeekly, now.AddDate(0, 0, 7))
		if err != nil {
			return nil, err
		}
		if err := a.goals.CreateShortTerm(ctx, g); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Created short-term goal \"%s\"", g.Title), g), nil
	}

	g, err := goal.NewLongTermGoal(userID, e.Title, "", now.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}
	if err := a.goals.CreateLongTerm(ctx, g); err != nil {
		return nil, err
	}
	return succeeded(fmt.Sprintf("Created long-term goal \"%s\"", g.Title), g), nil
}

func (a *Assistant) updateGoal(ctx context.Context, userID string, e voice.UpdateGoalEntities) (*ActionResult, error) {
	if e.Progress == nil {
		return nil, goal.ErrInvalidProgress
	}
	progress := *e.Progress

	longTerm, shortTerm, err := a.findGoalByTitle(ctx, userID, e.Title)
	if err != nil {
		return nil, err
	}

	switch {
	case longTerm != nil:
		if err := longTerm.SetProgress(progress); err != nil {
			return nil, err
		}
		longTerm.Completed = progress == 100
		if err := a.goals.UpdateLongTerm(ctx, longTerm); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Updated \"%s\" to %d%%", longTerm.Title, progress), longTerm), nil
	default:
		if err := shortTerm.SetProgress(progress); err != nil {
			return nil, err
		}
		shortTerm.Completed = progress == 100
		if err := a.goals.UpdateShortTerm(ctx, shortTerm); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Updated \"%s\" to %d%%", shortTerm.Title, progress), shortTerm), nil
	}
}

func (a *Assistant) goalProgress(ctx context.Context, userID, title string) (*ActionResult, error) {
	longTerm, shortTerm, err := a.findGoalByTitle(ctx, userID, title)
	if err != nil {
		return nil, err
	}

	if longTerm != nil {
		return succeeded(fmt.Sprintf("\"%s\" is %d%% complete", longTerm.Title, longTerm.Progress), longTerm), nil
	}
	return succeeded(fmt.Sprintf("\"%s\" is %d%% complete", shortTerm.Title, shortTerm.Progress), shortTerm), nil
}

// findGoalByTitle procura primeiro entre as metas de longo prazo e depois entre as de curto prazo
func (a *Assistant) findGoalByTitle(ctx context.Context, userID, title string) (*goal.LongTermGoal, *goal.ShortTermGoal, error) {
	longTerm, err := a.goals.ListLongTerm(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for _, g := range longTerm {
		if goal.MatchesTitle(g.Title, title) {
			return g, nil, nil
		}
	}

	shortTerm, err := a.goals.ListShortTerm(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	for _, g := range shortTerm {
		if goal.MatchesTitle(g.Title, title) {
			return nil, g, nil
		}
	}

	return nil, nil, goal.ErrGoalNotFound
}

func (a *Assistant) completeTask(ctx context.Context, userID, title string) (*ActionResult, error) {
	tasks, err := a.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if !goal.MatchesTitle(t.Title, title) {
			continue
		}
		t.Complete()
		if err := a.tasks.Update(ctx, t); err != nil {
			return nil, err
		}
		return succeeded(fmt.Sprintf("Marked \"%s\" as complete", t.Title), t), nil
	}

	return nil, task.ErrTaskNotFound
}

func (a *Assistant) createTask(ctx context.Context, userID, title string) (*ActionResult, error) {
	t, err := task.NewTask(userID, title)
	if err != nil {
		return nil, err
	}
	if err := a.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return succeeded(fmt.Sprintf("Created task \"%s\"", t.Title), t), nil
}

func (a *Assistant) generateGoals(ctx context.Context, userID string) (*ActionResult, error) {
	longTerm, err := a.goals.ListLongTerm(ctx, userID)
	if err != nil {
		return nil, err
	}

	var generated []*goal.ShortTermGoal
	for _, g := range longTerm {
		if g.Completed {
			continue
		}
		created, err := a.planner.GenerateShortTermGoals(ctx, userID, g.ID)
		if err != nil {
			return nil, err
		}
		generated = append(generated, created...)
	}

	if len(generated) == 0 {
		return failed("You don't have any active long-term goals to plan for yet"), nil
	}
	return succeeded(fmt.Sprintf("Generated %d short-term %s", len(generated), plural(len(generated), "goal")), generated), nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
