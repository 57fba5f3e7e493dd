// Package loggertest fornece um Logger que escreve na saída do teste.
package loggertest

import (
	"testing"

	"github.com/hugohenrick/voice-productivity/pkg/logger"
	"go.uber.org/zap/zaptest"
)

// New cria um Logger ligado ao t; as mensagens só aparecem quando o teste falha ou com -v
func New(t testing.TB) logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}
