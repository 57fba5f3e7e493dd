package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/voice-productivity/internal/infrastructure/config"
	"github.com/hugohenrick/voice-productivity/internal/infrastructure/database"
	"github.com/hugohenrick/voice-productivity/pkg/logger"
)

func main() {
	direction := flag.String("direction", database.DirectionUp, "direção das migrações (up ou down)")
	steps := flag.Int("steps", 0, "quantidade de passos; 0 aplica todas")
	flag.Parse()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}

	l := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	databaseURL := cfg.Database.ConnectionString()

	if err := database.RunMigrations(databaseURL, *direction, *steps); err != nil {
		l.Error("Erro ao executar migrações", "direction", *direction, "steps", *steps, "error", err)
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	version, dirty, err := database.Version(databaseURL)
	if err != nil {
		log.Fatalf("Erro ao consultar versão do schema: %v", err)
	}

	l.Info("Migrações executadas com sucesso", "version", version, "dirty", dirty)
}
