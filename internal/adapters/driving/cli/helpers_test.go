package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/ghmine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghmine/internal/core/domain"
	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
	"github.com/custodia-labs/ghmine/internal/core/ports/driving"
)

// fakeHarvestService records what the CLI asked for.
type fakeHarvestService struct {
	req      domain.HarvestRequest
	ran      bool
	warnings []string
	err      error

	runs       []domain.Run
	limit      int
	historyErr error
	gotID      string
}

func (f *fakeHarvestService) Run(_ context.Context, req domain.HarvestRequest) (*domain.Harvest, error) {
	f.ran = true
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Harvest{
		RunID:   "0b5e6a1c-0000-4000-8000-000000000000",
		Request: req,
		Windows: []domain.WindowResult{{
			Window:  domain.Window{Start: req.Start, End: req.End},
			Records: []domain.RepoRecord{{}, {}},
		}},
		Warnings: f.warnings,
	}, nil
}

func (f *fakeHarvestService) History(_ context.Context, limit int) ([]domain.Run, error) {
	f.limit = limit
	return f.runs, f.historyErr
}

func (f *fakeHarvestService) Get(_ context.Context, id string) (*domain.Run, error) {
	f.gotID = id
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	for i := range f.runs {
		if strings.HasPrefix(f.runs[i].ID, id) {
			return &f.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// factoryCall captures the arguments passed to newHarvestService.
type factoryCall struct {
	token   string
	history bool
	calls   int
}

// setupCLI swaps the config store and service factory for test doubles.
func setupCLI(t *testing.T, svc *fakeHarvestService) (*memory.ConfigStore, *factoryCall) {
	t.Helper()

	store := memory.NewConfigStore()
	call := &factoryCall{}

	origStore, origFactory, origNow := configStore, newHarvestService, now
	configStore = store
	newHarvestService = func(flagToken string, _ driven.ConfigStore, history bool) (driving.HarvestService, func(), error) {
		call.calls++
		call.token = flagToken
		call.history = history
		return svc, func() {}, nil
	}

	t.Cleanup(func() {
		configStore, newHarvestService, now = origStore, origFactory, origNow
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return store, call
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag to its default so commands can run again.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
