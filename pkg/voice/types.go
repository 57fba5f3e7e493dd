package voice

import (
	"encoding/json"
)

// Intent representa a intenção detectada em um comando de voz
type Intent string

// Constantes para Intent. IntentNone indica que nenhum padrão foi reconhecido.
const (
	IntentNone          Intent = ""
	IntentShowGoals     Intent = "SHOW_GOALS"
	IntentShowTasks     Intent = "SHOW_TASKS"
	IntentAddGoal       Intent = "ADD_GOAL"
	IntentUpdateGoal    Intent = "UPDATE_GOAL"
	IntentCompleteTask  Intent = "COMPLETE_TASK"
	IntentCreateTask    Intent = "CREATE_TASK"
	IntentGoalProgress  Intent = "GOAL_PROGRESS"
	IntentGenerateGoals Intent = "GENERATE_GOALS"
	IntentHelp          Intent = "HELP"
)

// Intents retorna todas as intenções suportadas, na ordem do catálogo
func Intents() []Intent {
	out := make([]Intent, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, r.intent)
	}
	return out
}

// IsValid verifica se a intenção pertence ao conjunto fechado
func (i Intent) IsValid() bool {
	for _, r := range catalog {
		if r.intent == i {
			return true
		}
	}
	return false
}

// MarshalJSON serializa IntentNone como null
func (i Intent) MarshalJSON() ([]byte, error) {
	if i == IntentNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(i))
}

// UnmarshalJSON aceita null como IntentNone
func (i *Intent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*i = IntentNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = Intent(s)
	return nil
}

// GoalType representa a categoria de meta citada no comando
type GoalType string

// Constantes para GoalType
const (
	GoalTypeNone      GoalType = ""
	GoalTypeLongTerm  GoalType = "long-term"
	GoalTypeShortTerm GoalType = "short-term"
)

// EntityBag é a visão genérica das entidades extraídas.
// Uma chave presente com valor nil significa que a extração foi tentada e falhou.
type EntityBag map[string]interface{}

// Entities é implementada pelos registros de entidades de cada intenção
type Entities interface {
	// Bag retorna as entidades como mapa, com nil para valores não extraídos
	Bag() EntityBag
}

// NoEntities é usado por intenções sem extração (SHOW_TASKS, HELP) e por comandos não reconhecidos
type NoEntities struct{}

// Bag implementa Entities
func (NoEntities) Bag() EntityBag { return EntityBag{} }

// GoalTypeEntities contém as entidades de SHOW_GOALS e GENERATE_GOALS
type GoalTypeEntities struct {
	GoalType GoalType
}

// Bag implementa Entities
func (e GoalTypeEntities) Bag() EntityBag {
	return EntityBag{"goalType": optionalString(string(e.GoalType))}
}

// AddGoalEntities contém as entidades de ADD_GOAL
type AddGoalEntities struct {
	GoalType GoalType
	Title    string
}

// Bag implementa Entities
func (e AddGoalEntities) Bag() EntityBag {
	return EntityBag{
		"goalType": optionalString(string(e.GoalType)),
		"title":    optionalString(e.Title),
	}
}

// UpdateGoalEntities contém as entidades de UPDATE_GOAL.
// Progress é nil quando nenhuma porcentagem foi encontrada.
type UpdateGoalEntities struct {
	Title    string
	Progress *int
}

// Bag implementa Entities
func (e UpdateGoalEntities) Bag() EntityBag {
	bag := EntityBag{"title": optionalString(e.Title), "progress": nil}
	if e.Progress != nil {
		bag["progress"] = *e.Progress
	}
	return bag
}

// TaskEntities contém as entidades de COMPLETE_TASK e CREATE_TASK
type TaskEntities struct {
	TaskTitle string
}

// Bag implementa Entities
func (e TaskEntities) Bag() EntityBag {
	return EntityBag{"taskTitle": optionalString(e.TaskTitle)}
}

// GoalRefEntities contém as entidades de GOAL_PROGRESS
type GoalRefEntities struct {
	Title string
}

// Bag implementa Entities
func (e GoalRefEntities) Bag() EntityBag {
	return EntityBag{"title": optionalString(e.Title)}
}

// ParsedCommand é o resultado da interpretação de um comando.
// Entities nunca é nil, mesmo quando Intent é IntentNone.
type ParsedCommand struct {
	Intent          Intent
	Entities        Entities
	OriginalCommand string
}

// Bag retorna as entidades do comando como mapa
func (c ParsedCommand) Bag() EntityBag {
	if c.Entities == nil {
		return EntityBag{}
	}
	return c.Entities.Bag()
}

// MarshalJSON serializa o comando no formato {intent, entities, originalCommand}
func (c ParsedCommand) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Intent          Intent    `json:"intent"`
		Entities        EntityBag `json:"entities"`
		OriginalCommand string    `json:"originalCommand"`
	}{
		Intent:          c.Intent,
		Entities:        c.Bag(),
		OriginalCommand: c.OriginalCommand,
	})
}

func optionalString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
