package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ user.Repository = (*UserRepository)(nil)
	_ goal.Repository = (*GoalRepository)(nil)
	_ task.Repository = (*TaskRepository)(nil)
	_ chat.Repository = (*ChatRepository)(nil)
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := user.NewUser("Ada", "Lovelace", "ada@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	dup, err := user.NewUser("Other", "Person", "ada@example.com", "secret2")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	found.FirstName = "Augusta"
	found.Password = "ignored"
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", reloaded.FirstName)
	assert.True(t, reloaded.CheckPassword("secret1"))

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "hash"))
	reloaded, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", reloaded.Password)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), user.ErrUserNotFound)
}

func TestGoalRepository_LongTermLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository()
	target := time.Now().AddDate(1, 0, 0)

	g, err := goal.NewLongTermGoal("user-1", "Learn Piano", "", target)
	require.NoError(t, err)
	require.NoError(t, repo.CreateLongTerm(ctx, g))

	_, err = repo.FindLongTermByID(ctx, "user-2", g.ID)
	assert.ErrorIs(t, err, goal.ErrGoalNotFound)

	m, err := goal.NewMilestone("First recital", target.AddDate(0, -6, 0))
	require.NoError(t, err)
	require.NoError(t, repo.AddMilestone(ctx, g.ID, m))

	m.Completed = true
	require.NoError(t, repo.UpdateMilestone(ctx, g.ID, m))

	found, err := repo.FindLongTermByID(ctx, "user-1", g.ID)
	require.NoError(t, err)
	require.Len(t, found.Milestones, 1)
	assert.True(t, found.Milestones[0].Completed)

	// atualizar a meta não apaga os marcos
	found.Milestones = nil
	require.NoError(t, found.SetProgress(40))
	require.NoError(t, repo.UpdateLongTerm(ctx, found))
	found, err = repo.FindLongTermByID(ctx, "user-1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, found.Progress)
	assert.Len(t, found.Milestones, 1)

	require.NoError(t, repo.DeleteMilestone(ctx, g.ID, m.ID))
	assert.ErrorIs(t, repo.DeleteMilestone(ctx, g.ID, m.ID), goal.ErrMilestoneNotFound)
}

func TestGoalRepository_DeleteLongTermCascades(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository()
	end := time.Now().AddDate(0, 0, 7)

	parent, err := goal.NewLongTermGoal("user-1", "Run a marathon", "", end.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.NoError(t, repo.CreateLongTerm(ctx, parent))

	child, err := goal.NewShortTermGoal("user-1", parent.ID, "Run 10km", "", goal.TimeframeWeekly, end)
	require.NoError(t, err)
	orphan, err := goal.NewShortTermGoal("user-1", "", "Stretch", "", goal.TimeframeDaily, end)
	require.NoError(t, err)
	require.NoError(t, repo.CreateShortTerm(ctx, child, orphan))

	require.NoError(t, repo.DeleteLongTerm(ctx, "user-1", parent.ID))

	remaining, err := repo.ListShortTerm(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, orphan.ID, remaining[0].ID)
}

func TestTaskRepository_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository()
	now := time.Now()

	later := now.Add(48 * time.Hour)
	sooner := now.Add(2 * time.Hour)

	noDue, _ := task.NewTask("user-1", "Someday")
	due2, _ := task.NewTask("user-1", "Later")
	due2.DueDate = &later
	due1, _ := task.NewTask("user-1", "Sooner")
	due1.DueDate = &sooner
	other, _ := task.NewTask("user-2", "Not mine")

	require.NoError(t, repo.Create(ctx, noDue, due2, due1, other))

	tasks, err := repo.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"Sooner", "Later", "Someday"},
		[]string{tasks[0].Title, tasks[1].Title, tasks[2].Title})

	_, err = repo.FindByID(ctx, "user-1", other.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "user-1", other.ID), task.ErrTaskNotFound)
}

func TestChatRepository_History(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository()
	base := time.Now()

	for i, content := range []string{"first", "second", "third"} {
		msg := chat.NewMessage("user-1", chat.RoleUser, content, "")
		msg.Timestamp = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.SaveMessage(ctx, msg))
	}
	require.NoError(t, repo.SaveMessage(ctx, chat.NewMessage("user-2", chat.RoleUser, "other", "")))

	history, err := repo.GetUserHistory(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].Content)
	assert.Equal(t, "second", history[1].Content)

	history, err = repo.GetUserHistory(ctx, "user-1", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, history)

	count, err := repo.CountUserMessages(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.DeleteUserHistory(ctx, "user-1"))
	count, err = repo.CountUserMessages(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountUserMessages(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
