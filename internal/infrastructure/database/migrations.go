package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hugohenrick/voice-productivity/migrations"
)

// Direções aceitas por RunMigrations
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// ErrInvalidDirection é retornado para direções diferentes de up/down
var ErrInvalidDirection = errors.New("direção de migração inválida")

// RunMigrations aplica as migrações embutidas. steps > 0 limita a quantidade
// de passos; steps == 0 aplica todas na direção informada.
func RunMigrations(databaseURL, direction string, steps int) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	switch {
	case steps > 0 && direction == DirectionDown:
		err = m.Steps(-steps)
	case steps > 0:
		err = m.Steps(steps)
	case direction == DirectionDown:
		err = m.Down()
	default:
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}

// Version retorna a versão atual do schema e se ela está marcada como suja
func Version(databaseURL string) (uint, bool, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, false, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return 0, false, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
