// Package assistant liga o interpretador de comandos de voz aos repositórios:
// interpreta o texto, compõe a resposta falada, executa a ação correspondente
// e registra a conversa no histórico.
package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/voice-productivity/internal/domain/chat"
	"github.com/hugohenrick/voice-productivity/internal/domain/goal"
	"github.com/hugohenrick/voice-productivity/internal/domain/task"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/hugohenrick/voice-productivity/internal/service/planner"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
	"github.com/hugohenrick/voice-productivity/pkg/metrics"
	"github.com/hugohenrick/voice-productivity/pkg/voice"
)

// ErrVoiceDisabled é retornado quando o usuário desativou os comandos de voz
var ErrVoiceDisabled = errors.New("voice commands are disabled for this user")

// Options controla a execução de um comando
type Options struct {
	// DryRun apenas interpreta e responde, sem alterar dados nem gravar histórico
	DryRun bool
}

// ActionResult descreve o efeito de um comando sobre os dados do usuário
type ActionResult struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Data        interface{} `json:"data,omitempty"`
	OperationID string      `json:"operationId"`
}

// Reply é o resultado completo do processamento de um comando
type Reply struct {
	Command  voice.ParsedCommand `json:"result"`
	Response string              `json:"response"`
	Action   *ActionResult       `json:"action"`
}

// Assistant executa comandos de voz em nome de um usuário
type Assistant struct {
	users   user.Repository
	goals   goal.Repository
	tasks   task.Repository
	chat    chat.Repository
	planner *planner.Service
	logger  logger.Logger
	now     func() time.Time
}

// New cria uma nova instância de Assistant
func New(users user.Repository, goals goal.Repository, tasks task.Repository, history chat.Repository, plan *planner.Service, log logger.Logger) *Assistant {
	return &Assistant{
		users:   users,
		goals:   goals,
		tasks:   tasks,
		chat:    history,
		planner: plan,
		logger:  log,
		now:     time.Now,
	}
}

// Handle interpreta a entrada, compõe a resposta e, quando possível, executa a ação.
// Entradas que não são texto são tratadas como comando vazio.
func (a *Assistant) Handle(ctx context.Context, userID string, input interface{}, opts Options) (*Reply, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.VoiceEnabled() {
		return nil, ErrVoiceDisabled
	}

	cmd := voice.InterpretValue(input)
	reply := &Reply{
		Command:  cmd,
		Response: voice.Compose(cmd),
	}

	label := metrics.IntentLabel(string(cmd.Intent))
	metrics.VoiceCommands.WithLabelValues(label).Inc()

	if voice.NeedsClarification(cmd) {
		metrics.VoiceClarifications.WithLabelValues(label).Inc()
	} else if !opts.DryRun {
		reply.Action, err = a.execute(ctx, u, cmd)
		if err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		a.record(ctx, userID, cmd, reply.Response)
	}

	a.logger.Debug("Comando de voz processado",
		"user_id", userID,
		"intent", label,
		"dry_run", opts.DryRun,
	)

	return reply, nil
}

// record grava o comando e a resposta no histórico; falhas não interrompem o comando
func (a *Assistant) record(ctx context.Context, userID string, cmd voice.ParsedCommand, response string) {
	if cmd.OriginalCommand == "" {
		return
	}

	intent := string(cmd.Intent)
	messages := []*chat.Message{
		chat.NewMessage(userID, chat.RoleUser, cmd.OriginalCommand, intent),
		chat.NewMessage(userID, chat.RoleAssistant, response, intent),
	}
	// a resposta sempre vem depois do comando na ordenação por horário
	messages[0].Timestamp = a.now()
	messages[1].Timestamp = messages[0].Timestamp.Add(time.Millisecond)

	for _, m := range messages {
		if err := a.chat.SaveMessage(ctx, m); err != nil {
			a.logger.Warn("Falha ao salvar mensagem no histórico", "user_id", userID, "error", err)
			return
		}
	}
}

// History retorna o histórico de comandos do usuário, mais recentes primeiro
func (a *Assistant) History(ctx context.Context, userID string, limit, offset int) ([]chat.Message, int, error) {
	messages, err := a.chat.GetUserHistory(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := a.chat.CountUserMessages(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// ClearHistory apaga o histórico de comandos do usuário
func (a *Assistant) ClearHistory(ctx context.Context, userID string) error {
	return a.chat.DeleteUserHistory(ctx, userID)
}
