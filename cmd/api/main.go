package main

import (
	"log"

	"github.com/hugohenrick/voice-productivity/internal/infrastructure/config"
)

func main() {
	// Carregar configurações (.env opcional + variáveis de ambiente)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Criar aplicação
	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Erro ao iniciar aplicação: %v", err)
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Erro ao executar servidor: %v", err)
	}
}
