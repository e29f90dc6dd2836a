package cmd

import (
	"fmt"

	"github.com/rustyeddy/tycoon/config"
	"github.com/rustyeddy/tycoon/game"
	"github.com/rustyeddy/tycoon/journal"
	"github.com/rustyeddy/tycoon/market"
	"github.com/rustyeddy/tycoon/save"
)

// session is one loaded game plus everything needed to persist it again
// after an action.
type session struct {
	cfg    *config.Config
	tables *market.Tables
	engine *game.Engine
	jrnl   journal.Journal
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

func loadTables() (*market.Tables, error) {
	if contentPath == "" {
		return market.Builtin(), nil
	}
	return market.LoadFromFile(contentPath)
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.EventsFile, cfg.Journal.NetWorthFile)
	default:
		return journal.Noop{}, nil
	}
}

// loadSession reads the save file and rebuilds the engine around it.
func loadSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	tables, err := loadTables()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	state, err := save.Read(savePath)
	if err != nil {
		return nil, fmt.Errorf("load save (run 'tycoon new' to start a game): %w", err)
	}

	jrnl, err := openJournal(cfg)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	engine, err := game.Restore(cfg, tables, state, game.WithJournal(jrnl))
	if err != nil {
		jrnl.Close()
		return nil, fmt.Errorf("restore game: %w", err)
	}

	return &session{cfg: cfg, tables: tables, engine: engine, jrnl: jrnl}, nil
}

// persist writes the game back to the save file and closes the journal.
func (s *session) persist() error {
	defer s.jrnl.Close()
	if err := save.Write(savePath, s.engine.State(), s.engine.State().Date); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}
