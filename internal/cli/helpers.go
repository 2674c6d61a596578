package cli

import (
	"fmt"

	"github.com/saijayin/agenda/internal/config"
	"github.com/saijayin/agenda/internal/kv"
	"github.com/saijayin/agenda/internal/store"
	"github.com/saijayin/agenda/internal/week"
)

// openStore loads the configuration, opens the configured backend and
// restores the task store from it. The returned closer releases the
// backend.
func openStore() (*store.Store, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(backend, cfg.Storage.Key)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return st, backend.Close, nil
}

func openBackend(cfg *config.Config) (kv.Store, error) {
	path := config.ExpandPath(cfg.Storage.Path)
	switch cfg.Storage.Backend {
	case "", "file":
		return kv.NewFileStore(path)
	case "sqlite":
		return kv.NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// resolveWeek turns a --week flag value into a Monday anchor, falling
// back to the store's selected week when empty.
func resolveWeek(st *store.Store, flag string) (string, error) {
	if flag == "" {
		return st.WeekAnchor(), nil
	}
	return week.MondayOfISO(flag)
}
