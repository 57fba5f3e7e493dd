package voice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_Intents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Intent
	}{
		{"show goals", "show my goals", IntentShowGoals},
		{"show long-term goals", "Show all long-term goals", IntentShowGoals},
		{"show tasks", "show my tasks", IntentShowTasks},
		{"add goal", "add new goal", IntentAddGoal},
		{"add short term goal", "add short term goal", IntentAddGoal},
		{"update goal", "update goal progress", IntentUpdateGoal},
		{"complete task", `complete task "Buy groceries"`, IntentCompleteTask},
		{"mark as complete", "mark as complete the report", IntentCompleteTask},
		{"create task", "create a task", IntentCreateTask},
		{"goal progress", "what is the progress on my goal", IntentGoalProgress},
		{"generate goals", "generate short-term goals", IntentGenerateGoals},
		{"help", "help", IntentHelp},
		{"what can you do", "What can you do?", IntentHelp},
		{"unrecognized", "play some music", IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Interpret(tt.input).Intent)
		})
	}
}

func TestInterpret_LastMatchWins(t *testing.T) {
	// casa ADD_GOAL e CREATE_TASK
	input := "add a goal and create a task"
	require.Equal(t, []Intent{IntentAddGoal, IntentCreateTask}, Matches(input))
	assert.Equal(t, IntentCreateTask, Interpret(input).Intent)

	// HELP vem depois de SHOW_GOALS no catálogo
	input = "help me show my goals"
	require.Equal(t, []Intent{IntentShowGoals, IntentHelp}, Matches(input))
	assert.Equal(t, IntentHelp, Interpret(input).Intent)

	// GENERATE_GOALS é a última regra e vence HELP
	input = "help me generate short-term goals"
	require.Equal(t, []Intent{IntentHelp, IntentGenerateGoals}, Matches(input))
	cmd := Interpret(input)
	assert.Equal(t, IntentGenerateGoals, cmd.Intent)
	assert.Equal(t, "Generating short-term goals based on your long-term goals.", Compose(cmd))

	input = "what can you do to generate short-term goals"
	assert.Equal(t, IntentGenerateGoals, Interpret(input).Intent)

	// "complete" casa COMPLETE_TASK, mas CREATE_TASK vem depois no catálogo
	input = `create a task to complete the report`
	assert.Equal(t, IntentCreateTask, Interpret(input).Intent)
}

func TestInterpret_Normalization(t *testing.T) {
	upper := Interpret("SHOW MY GOALS")
	lower := Interpret("show my goals")

	assert.Equal(t, lower.Intent, upper.Intent)
	assert.Equal(t, lower.Bag(), upper.Bag())
	assert.Equal(t, "SHOW MY GOALS", upper.OriginalCommand)

	padded := Interpret("   show my tasks \n")
	assert.Equal(t, IntentShowTasks, padded.Intent)
}

func TestInterpret_AddGoalEntities(t *testing.T) {
	cmd := Interpret(`add a long-term goal called "Learn Piano"`)

	require.Equal(t, IntentAddGoal, cmd.Intent)
	assert.Equal(t, AddGoalEntities{GoalType: GoalTypeLongTerm, Title: "Learn Piano"}, cmd.Entities)
	assert.Equal(t, EntityBag{"goalType": "long-term", "title": "Learn Piano"}, cmd.Bag())
}

func TestInterpret_UpdateGoalEntities(t *testing.T) {
	cmd := Interpret("update goal progress to 42%")

	require.Equal(t, IntentUpdateGoal, cmd.Intent)
	entities, ok := cmd.Entities.(UpdateGoalEntities)
	require.True(t, ok)
	require.NotNil(t, entities.Progress)
	assert.Equal(t, 42, *entities.Progress)
	assert.Equal(t, 42, cmd.Bag()["progress"])
	assert.Nil(t, cmd.Bag()["title"])

	cmd = Interpret(`update goal named 'Run a marathon' to 75 percent`)
	assert.Equal(t, EntityBag{"title": "Run a marathon", "progress": 75}, cmd.Bag())

	cmd = Interpret("update goal to 99999999999999999999999%")
	assert.Equal(t, IntentUpdateGoal, cmd.Intent)
	assert.Nil(t, cmd.Bag()["progress"])
}

func TestInterpret_TaskEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		intent   Intent
		expected string
	}{
		{"quoted after task", `complete task "Buy groceries"`, IntentCompleteTask, "Buy groceries"},
		{"single quotes", `create a task 'Call mom'`, IntentCreateTask, "Call mom"},
		{"called fallback", `create new task called "Write report"`, IntentCreateTask, "Write report"},
		{"missing title", "create a task", IntentCreateTask, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Interpret(tt.input)
			require.Equal(t, tt.intent, cmd.Intent)
			assert.Equal(t, TaskEntities{TaskTitle: tt.expected}, cmd.Entities)
		})
	}
}

func TestInterpret_GoalTypeEntities(t *testing.T) {
	assert.Equal(t, GoalTypeEntities{GoalType: GoalTypeShortTerm}, Interpret("show my short term goals").Entities)
	assert.Equal(t, GoalTypeEntities{GoalType: GoalTypeNone}, Interpret("show my goals").Entities)
	assert.Equal(t, EntityBag{"goalType": nil}, Interpret("show my goals").Bag())
	assert.Equal(t, GoalTypeEntities{GoalType: GoalTypeShortTerm}, Interpret("generate short-term goals").Entities)
}

func TestInterpret_NoEntityIntents(t *testing.T) {
	for _, input := range []string{"show my tasks", "help", "play some music"} {
		cmd := Interpret(input)
		assert.Equal(t, NoEntities{}, cmd.Entities, input)
		assert.NotNil(t, cmd.Bag(), input)
		assert.Empty(t, cmd.Bag(), input)
	}
}

func TestInterpret_Totality(t *testing.T) {
	inputs := []string{"", "   ", "\t\n", "показать мои цели", "目標を表示", "🎯🎯", `called "`, "%%%", "100%"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			cmd := Interpret(input)
			assert.NotNil(t, cmd.Entities)
			assert.NotEmpty(t, Compose(cmd))
		}, input)
	}

	empty := Interpret("")
	assert.Equal(t, IntentNone, empty.Intent)
	assert.Equal(t, NoEntities{}, empty.Entities)
}

func TestInterpretValue_NonString(t *testing.T) {
	cmd := InterpretValue(nil)
	assert.Equal(t, IntentNone, cmd.Intent)
	assert.Empty(t, cmd.Bag())
	assert.Equal(t, "", cmd.OriginalCommand)

	cmd = InterpretValue(42)
	assert.Equal(t, IntentNone, cmd.Intent)
	assert.Empty(t, cmd.Bag())
	assert.Equal(t, "42", cmd.OriginalCommand)

	cmd = InterpretValue(map[string]interface{}{"text": "show my goals"})
	assert.Equal(t, IntentNone, cmd.Intent)

	cmd = InterpretValue("show my goals")
	assert.Equal(t, IntentShowGoals, cmd.Intent)
}

func TestParsedCommand_JSON(t *testing.T) {
	data, err := json.Marshal(Interpret(`add a long-term goal called "Learn Piano"`))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"intent": "ADD_GOAL",
		"entities": {"goalType": "long-term", "title": "Learn Piano"},
		"originalCommand": "add a long-term goal called \"Learn Piano\""
	}`, string(data))

	data, err = json.Marshal(Interpret("what's the weather"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"intent": null, "entities": {}, "originalCommand": "what's the weather"}`, string(data))
}

func TestIntent_UnmarshalJSON(t *testing.T) {
	var i Intent
	require.NoError(t, json.Unmarshal([]byte(`"HELP"`), &i))
	assert.Equal(t, IntentHelp, i)
	require.NoError(t, json.Unmarshal([]byte(`null`), &i))
	assert.Equal(t, IntentNone, i)
	assert.Error(t, json.Unmarshal([]byte(`42`), &i))
}

func TestIntents_CatalogOrder(t *testing.T) {
	assert.Equal(t, []Intent{
		IntentShowGoals, IntentShowTasks, IntentAddGoal, IntentUpdateGoal, IntentCompleteTask,
		IntentCreateTask, IntentGoalProgress, IntentHelp, IntentGenerateGoals,
	}, Intents())
	assert.False(t, IntentNone.IsValid())
	assert.False(t, Intent("DANCE").IsValid())
}
