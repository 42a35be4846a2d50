package cli

import (
	"github.com/custodia-labs/ghmine/internal/adapters/driven/auth"
	"github.com/custodia-labs/ghmine/internal/adapters/driven/output/jsonfile"
	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ghmine/internal/connectors/github"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
	"github.com/custodia-labs/ghmine/internal/core/ports/driving"
	"github.com/custodia-labs/ghmine/internal/core/services"
	"github.com/custodia-labs/ghmine/internal/logger"
)

// KeyHistoryEnabled toggles the sqlite run history.
const KeyHistoryEnabled = "history.enabled"

// newHarvestService builds the harvest service for one invocation.
// Replaced in tests.
var newHarvestService = defaultHarvestService

// defaultHarvestService wires the GitHub connector, JSON writer and run history.
// The returned func releases the history database.
func defaultHarvestService(
	flagToken string,
	store driven.ConfigStore,
	history bool,
) (driving.HarvestService, func(), error) {
	tokens := auth.NewTokenProvider(flagToken, store)
	client := github.NewClient(tokens, github.ParseConfig(store))
	collector := services.NewCollector(github.NewSearcher(client), tokens)

	runs, closeRuns := openRunStore(history)
	return services.NewHarvester(collector, jsonfile.New(), runs), closeRuns, nil
}

// openRunStore opens the sqlite history, falling back to memory when it is
// disabled or cannot be opened.
func openRunStore(history bool) (driven.RunStore, func()) {
	noop := func() {}
	if !history {
		return memory.NewRunStore(), noop
	}

	dir, err := dataDir()
	if err != nil {
		logger.Warn("run history unavailable: %v", err)
		return memory.NewRunStore(), noop
	}

	db, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("run history unavailable: %v", err)
		return memory.NewRunStore(), noop
	}
	logger.Debug("run history at %s", db.Path())

	return db.RunStore(), func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing run history: %v", err)
		}
	}
}

// historyEnabled reads history.enabled, defaulting to true when unset.
func historyEnabled(store driven.ConfigStore) bool {
	if store == nil {
		return true
	}
	if _, ok := store.Get(KeyHistoryEnabled); !ok {
		return true
	}
	return store.GetBool(KeyHistoryEnabled)
}
