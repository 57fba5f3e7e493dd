// Package voice interpreta comandos de voz já transcritos e compõe respostas.
//
// As funções do pacote são puras: não fazem I/O, não guardam estado entre chamadas
// e podem ser usadas concorrentemente sem sincronização.
package voice

import (
	"fmt"
	"strings"
)

// Interpret identifica a intenção e as entidades de um comando.
// Texto vazio ou só com espaços resulta em IntentNone e nenhuma entidade.
func Interpret(text string) ParsedCommand {
	normalized := normalize(text)
	if normalized == "" {
		return ParsedCommand{Intent: IntentNone, Entities: NoEntities{}, OriginalCommand: text}
	}

	intent := classify(normalized)

	// A classificação usa o texto normalizado; a extração usa o texto original
	// (os padrões são case-insensitive) para preservar a grafia dos títulos.
	return ParsedCommand{
		Intent:          intent,
		Entities:        extractEntities(intent, strings.TrimSpace(text)),
		OriginalCommand: text,
	}
}

// InterpretValue aceita entradas não tipadas, como valores decodificados de JSON.
// Qualquer valor que não seja string resulta em um comando sem intenção.
func InterpretValue(v interface{}) ParsedCommand {
	switch value := v.(type) {
	case string:
		return Interpret(value)
	case nil:
		return ParsedCommand{Intent: IntentNone, Entities: NoEntities{}}
	default:
		return ParsedCommand{Intent: IntentNone, Entities: NoEntities{}, OriginalCommand: fmt.Sprint(value)}
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
