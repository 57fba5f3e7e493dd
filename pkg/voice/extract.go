package voice

import (
	"regexp"
	"strconv"
)

var (
	longTermPattern  = regexp.MustCompile(`(?i)long[- ]term`)
	shortTermPattern = regexp.MustCompile(`(?i)short[- ]term`)
	titlePattern     = regexp.MustCompile(`(?i)(?:called|titled|named) ["'](.+?)["']`)
	percentPattern   = regexp.MustCompile(`(?i)(\d+)\s?(%|percent)`)
	taskTitlePattern = regexp.MustCompile(`(?i)task ["'](.+?)["']`)
)

// extractGoalType busca "long-term" ou "short-term" em qualquer posição do texto
func extractGoalType(text string) GoalType {
	if longTermPattern.MatchString(text) {
		return GoalTypeLongTerm
	}
	if shortTermPattern.MatchString(text) {
		return GoalTypeShortTerm
	}
	return GoalTypeNone
}

// extractGoalTitle busca um trecho entre aspas precedido de called, titled ou named
func extractGoalTitle(text string) string {
	return firstGroup(titlePattern, text)
}

// extractPercentage retorna nil quando não há porcentagem ou o número não cabe em int
func extractPercentage(text string) *int {
	raw := firstGroup(percentPattern, text)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// extractTaskTitle busca um trecho entre aspas após "task" e, em seguida, após called/titled/named
func extractTaskTitle(text string) string {
	if title := firstGroup(taskTitlePattern, text); title != "" {
		return title
	}
	return firstGroup(titlePattern, text)
}

func firstGroup(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// extractEntities despacha a extração de acordo com a intenção resolvida
func extractEntities(intent Intent, text string) Entities {
	switch intent {
	case IntentShowGoals, IntentGenerateGoals:
		return GoalTypeEntities{GoalType: extractGoalType(text)}
	case IntentAddGoal:
		return AddGoalEntities{
			GoalType: extractGoalType(text),
			Title:    extractGoalTitle(text),
		}
	case IntentUpdateGoal:
		return UpdateGoalEntities{
			Title:    extractGoalTitle(text),
			Progress: extractPercentage(text),
		}
	case IntentCompleteTask, IntentCreateTask:
		return TaskEntities{TaskTitle: extractTaskTitle(text)}
	case IntentGoalProgress:
		return GoalRefEntities{Title: extractGoalTitle(text)}
	default:
		return NoEntities{}
	}
}
