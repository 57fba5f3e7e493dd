package goal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Erros de validação de metas
var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrMissingDate      = errors.New("target date is required")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrInvalidTimeframe = errors.New("timeframe must be one of daily, weekly, monthly, quarterly")
	ErrInvalidType      = errors.New("goal type must be long-term or short-term")
)

// Type representa a categoria da meta
type Type string

// Constantes para Type
const (
	TypeLongTerm  Type = "long-term"
	TypeShortTerm Type = "short-term"
)

// ParseType converte texto em Type
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeLongTerm:
		return TypeLongTerm, nil
	case TypeShortTerm:
		return TypeShortTerm, nil
	default:
		return "", ErrInvalidType
	}
}

// Timeframe representa o horizonte de uma meta de curto prazo
type Timeframe string

// Constantes para Timeframe
const (
	TimeframeDaily     Timeframe = "daily"
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeQuarterly Timeframe = "quarterly"
)

// IsValid verifica se o timeframe é suportado
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly:
		return true
	}
	return false
}

// Milestone representa um marco de uma meta de longo prazo
type Milestone struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TargetDate time.Time `json:"targetDate"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LongTermGoal representa uma meta de longo prazo
type LongTermGoal struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TargetDate  time.Time   `json:"targetDate"`
	Progress    int         `json:"progress"`
	Completed   bool        `json:"completed"`
	Milestones  []Milestone `json:"milestones"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ShortTermGoal representa uma meta de curto prazo, opcionalmente ligada a uma de longo prazo
type ShortTermGoal struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ParentGoalID string    `json:"parentGoalId,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Timeframe    Timeframe `json:"timeframe"`
	EndDate      time.Time `json:"endDate"`
	Progress     int       `json:"progress"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewLongTermGoal cria uma nova meta de longo prazo validada
func NewLongTermGoal(userID, title, description string, targetDate time.Time) (*LongTermGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if targetDate.IsZero() {
		return nil, ErrMissingDate
	}

	now := time.Now()
	return &LongTermGoal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		TargetDate:  targetDate,
		Milestones:  []Milestone{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewShortTermGoal cria uma nova meta de curto prazo validada
func NewShortTermGoal(userID, parentGoalID, title, description string, timeframe Timeframe, endDate time.Time) (*ShortTermGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !timeframe.IsValid() {
		return nil, ErrInvalidTimeframe
	}
	if endDate.IsZero() {
		return nil, ErrMissingDate
	}

	now := time.Now()
	return &ShortTermGoal{
		ID:           uuid.New().String(),
		UserID:       userID,
		ParentGoalID: parentGoalID,
		Title:        title,
		Description:  strings.TrimSpace(description),
		Timeframe:    timeframe,
		EndDate:      endDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewMilestone cria um novo marco validado
func NewMilestone(title string, targetDate time.Time) (*Milestone, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if targetDate.IsZero() {
		return nil, ErrMissingDate
	}
	return &Milestone{
		ID:         uuid.New().String(),
		Title:      title,
		TargetDate: targetDate,
		CreatedAt:  time.Now(),
	}, nil
}

// ValidateProgress verifica se o progresso está entre 0 e 100
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}
	return nil
}

// SetProgress atualiza o progresso da meta
func (g *LongTermGoal) SetProgress(progress int) error {
	if err := ValidateProgress(progress); err != nil {
		return err
	}
	g.Progress = progress
	g.UpdatedAt = time.Now()
	return nil
}

// SetProgress atualiza o progresso da meta
func (g *ShortTermGoal) SetProgress(progress int) error {
	if err := ValidateProgress(progress); err != nil {
		return err
	}
	g.Progress = progress
	g.UpdatedAt = time.Now()
	return nil
}

// FindMilestone retorna o marco com o ID informado
func (g *LongTermGoal) FindMilestone(id string) (*Milestone, bool) {
	for i := range g.Milestones {
		if g.Milestones[i].ID == id {
			return &g.Milestones[i], true
		}
	}
	return nil, false
}

// MatchesTitle compara títulos sem diferenciar maiúsculas e espaços nas pontas
func MatchesTitle(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
