package voice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		cmd      ParsedCommand
		expected string
	}{
		{
			name:     "not understood",
			cmd:      ParsedCommand{Intent: IntentNone, Entities: NoEntities{}},
			expected: MessageNotUnderstood,
		},
		{
			name:     "show all goals",
			cmd:      ParsedCommand{Intent: IntentShowGoals, Entities: GoalTypeEntities{}},
			expected: "Showing your all goals.",
		},
		{
			name:     "show short-term goals",
			cmd:      ParsedCommand{Intent: IntentShowGoals, Entities: GoalTypeEntities{GoalType: GoalTypeShortTerm}},
			expected: "Showing your short-term goals.",
		},
		{
			name:     "show tasks",
			cmd:      ParsedCommand{Intent: IntentShowTasks, Entities: NoEntities{}},
			expected: "Here are your tasks.",
		},
		{
			name:     "add goal without entities",
			cmd:      ParsedCommand{Intent: IntentAddGoal, Entities: AddGoalEntities{}},
			expected: "I'll help you add a new goal.",
		},
		{
			name:     "add long-term goal with title",
			cmd:      ParsedCommand{Intent: IntentAddGoal, Entities: AddGoalEntities{GoalType: GoalTypeLongTerm, Title: "Learn Piano"}},
			expected: `I'll help you add a new long-term goal called "Learn Piano".`,
		},
		{
			name:     "update goal",
			cmd:      ParsedCommand{Intent: IntentUpdateGoal, Entities: UpdateGoalEntities{Title: "Read", Progress: intPtr(40)}},
			expected: `Updating goal "Read" to 40% progress.`,
		},
		{
			name:     "update goal to zero percent",
			cmd:      ParsedCommand{Intent: IntentUpdateGoal, Entities: UpdateGoalEntities{Title: "Read", Progress: intPtr(0)}},
			expected: `Updating goal "Read" to 0% progress.`,
		},
		{
			name:     "update goal missing progress",
			cmd:      ParsedCommand{Intent: IntentUpdateGoal, Entities: UpdateGoalEntities{Title: "Read"}},
			expected: "Which goal would you like to update?",
		},
		{
			name:     "update goal nil entities",
			cmd:      ParsedCommand{Intent: IntentUpdateGoal},
			expected: "Which goal would you like to update?",
		},
		{
			name:     "complete task",
			cmd:      ParsedCommand{Intent: IntentCompleteTask, Entities: TaskEntities{TaskTitle: "Buy groceries"}},
			expected: `Marking task "Buy groceries" as complete.`,
		},
		{
			name:     "complete task missing title",
			cmd:      ParsedCommand{Intent: IntentCompleteTask, Entities: TaskEntities{}},
			expected: "Which task would you like to complete?",
		},
		{
			name:     "create task",
			cmd:      ParsedCommand{Intent: IntentCreateTask, Entities: TaskEntities{TaskTitle: "Call mom"}},
			expected: `Creating new task: "Call mom".`,
		},
		{
			name:     "create task missing title",
			cmd:      ParsedCommand{Intent: IntentCreateTask, Entities: TaskEntities{}},
			expected: "What task would you like to create?",
		},
		{
			name:     "goal progress",
			cmd:      ParsedCommand{Intent: IntentGoalProgress, Entities: GoalRefEntities{Title: "Run"}},
			expected: `Checking progress for "Run".`,
		},
		{
			name:     "goal progress missing title",
			cmd:      ParsedCommand{Intent: IntentGoalProgress, Entities: GoalRefEntities{}},
			expected: "Which goal would you like to check progress on?",
		},
		{
			name:     "help",
			cmd:      ParsedCommand{Intent: IntentHelp, Entities: NoEntities{}},
			expected: MessageHelp,
		},
		{
			name:     "generate goals default",
			cmd:      ParsedCommand{Intent: IntentGenerateGoals, Entities: GoalTypeEntities{}},
			expected: "Generating short-term goals based on your long-term goals.",
		},
		{
			name:     "unknown intent",
			cmd:      ParsedCommand{Intent: Intent("DANCE"), Entities: NoEntities{}},
			expected: MessageUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compose(tt.cmd))
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	cmd := Interpret(`update goal called "Learn Go" to 80%`)
	first := Compose(cmd)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compose(cmd))
	}
}

func TestCompose_UpdateGoalAsksQuestion(t *testing.T) {
	response := Compose(ParsedCommand{Intent: IntentUpdateGoal, Entities: NoEntities{}})
	assert.True(t, strings.HasSuffix(response, "?"))
	assert.Contains(t, response, "Which goal")
}

func TestCompose_EndToEnd(t *testing.T) {
	response := Compose(Interpret(`complete task "Buy groceries"`))
	assert.Equal(t, `Marking task "Buy groceries" as complete.`, response)
}

func TestNeedsClarification(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"play some music", true},
		{"show my goals", false},
		{"show my tasks", false},
		{"help", false},
		{"update goal progress", true},
		{`update goal called "Read" to 10%`, false},
		// zero conta como progresso informado
		{`update goal called "Read" to 0%`, false},
		{"complete task", true},
		{`complete task "Buy groceries"`, false},
		{"create a task", true},
		{"what is the progress on my goal", true},
		{`what is the progress on goal named "Run"`, false},
		{"add new goal", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := Interpret(tt.input)
			assert.Equal(t, tt.expected, NeedsClarification(cmd))
			assert.Equal(t, tt.expected, strings.HasSuffix(Compose(cmd), "?"))
		})
	}
}

func TestCompose_UpdateGoalToZeroPercent(t *testing.T) {
	cmd := Interpret(`update goal called "Read" to 0%`)

	assert.False(t, NeedsClarification(cmd))
	assert.Equal(t, `Updating goal "Read" to 0% progress.`, Compose(cmd))
}
