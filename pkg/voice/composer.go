package voice

import "fmt"

// Mensagens fixas do compositor
const (
	MessageNotUnderstood = "I'm not sure I understand. Could you rephrase that?"
	MessageUnsupported   = "I'm not sure how to help with that yet."
	MessageHelp          = "I can help you manage your goals and tasks. You can say things like 'show my goals', 'add a new task', 'update goal progress', or 'complete task'."
)

// Compose gera a resposta exibida ao usuário para um comando interpretado.
// Quando falta uma entidade obrigatória, a resposta é uma pergunta de esclarecimento.
func Compose(cmd ParsedCommand) string {
	if cmd.Intent == IntentNone {
		return MessageNotUnderstood
	}

	bag := cmd.Bag()

	switch cmd.Intent {
	case IntentShowGoals:
		return fmt.Sprintf("Showing your %s goals.", stringOr(bag, "goalType", "all"))

	case IntentShowTasks:
		return "Here are your tasks."

	case IntentAddGoal:
		msg := "I'll help you add a new goal"
		if goalType := stringOr(bag, "goalType", ""); goalType != "" {
			msg = fmt.Sprintf("I'll help you add a new %s goal", goalType)
		}
		if title := stringOr(bag, "title", ""); title != "" {
			msg += fmt.Sprintf(" called \"%s\"", title)
		}
		return msg + "."

	case IntentUpdateGoal:
		title := stringOr(bag, "title", "")
		// 0% é um progresso informado; só a ausência do número gera a pergunta
		progress, hasProgress := bag["progress"].(int)
		if title != "" && hasProgress {
			return fmt.Sprintf("Updating goal \"%s\" to %d%% progress.", title, progress)
		}
		return "Which goal would you like to update?"

	case IntentCompleteTask:
		if title := stringOr(bag, "taskTitle", ""); title != "" {
			return fmt.Sprintf("Marking task \"%s\" as complete.", title)
		}
		return "Which task would you like to complete?"

	case IntentCreateTask:
		if title := stringOr(bag, "taskTitle", ""); title != "" {
			return fmt.Sprintf("Creating new task: \"%s\".", title)
		}
		return "What task would you like to create?"

	case IntentGoalProgress:
		if title := stringOr(bag, "title", ""); title != "" {
			return fmt.Sprintf("Checking progress for \"%s\".", title)
		}
		return "Which goal would you like to check progress on?"

	case IntentHelp:
		return MessageHelp

	case IntentGenerateGoals:
		return fmt.Sprintf("Generating %s goals based on your long-term goals.", stringOr(bag, "goalType", "short-term"))

	default:
		return MessageUnsupported
	}
}

// NeedsClarification indica se falta alguma entidade obrigatória para a intenção,
// ou seja, se Compose responderia com uma pergunta em vez de uma confirmação.
func NeedsClarification(cmd ParsedCommand) bool {
	bag := cmd.Bag()
	switch cmd.Intent {
	case IntentNone:
		return true
	case IntentUpdateGoal:
		// presença, não valor: "to 0%" não pede esclarecimento
		_, hasProgress := bag["progress"].(int)
		return stringOr(bag, "title", "") == "" || !hasProgress
	case IntentCompleteTask, IntentCreateTask:
		return stringOr(bag, "taskTitle", "") == ""
	case IntentGoalProgress:
		return stringOr(bag, "title", "") == ""
	default:
		return !cmd.Intent.IsValid()
	}
}

// stringOr retorna o valor textual da entidade ou o padrão quando ausente
func stringOr(bag EntityBag, key, fallback string) string {
	if s, ok := bag[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
