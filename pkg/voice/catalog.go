package voice

import "regexp"

// rule associa uma intenção ao padrão que a reconhece
type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// catalog é avaliado em ordem e a última regra que casar vence.
// A precedência por última correspondência vem do comportamento histórico do
// processador de comandos e é mantida por compatibilidade, não por prioridade real.
var catalog = []rule{
	{IntentShowGoals, regexp.MustCompile(`(?i)show (my|all)?\s?(long[- ]term|short[- ]term)? goals`)},
	{IntentShowTasks, regexp.MustCompile(`(?i)show (my|all)?\s?tasks`)},
	{IntentAddGoal, regexp.MustCompile(`(?i)add (a|new)?\s?(long[- ]term|short[- ]term)? goal`)},
	{IntentUpdateGoal, regexp.MustCompile(`(?i)update (goal|progress)`)},
	{IntentCompleteTask, regexp.MustCompile(`(?i)((mark|set) (as )?complete|complete)`)},
	{IntentCreateTask, regexp.MustCompile(`(?i)(add|create) (a|new)?\s?task`)},
	{IntentGoalProgress, regexp.MustCompile(`(?i)progress (for|on)`)},
	{IntentHelp, regexp.MustCompile(`(?i)help|what can (you|i) (do|say)`)},
	{IntentGenerateGoals, regexp.MustCompile(`(?i)generate (short[- ]term)? goals`)},
}

// classify retorna a última intenção do catálogo cujo padrão casa com o texto
func classify(normalized string) Intent {
	detected := IntentNone
	for _, r := range catalog {
		if r.pattern.MatchString(normalized) {
			detected = r.intent
		}
	}
	return detected
}

// Matches retorna, em ordem de catálogo, todas as intenções cujo padrão casa com o texto.
// Útil para diagnosticar comandos ambíguos.
func Matches(text string) []Intent {
	normalized := normalize(text)
	var out []Intent
	for _, r := range catalog {
		if r.pattern.MatchString(normalized) {
			out = append(out, r.intent)
		}
	}
	return out
}
