package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

// Configuration keys read by collect.
const (
	KeyOutput         = "collect.output"
	KeyFormat         = "collect.format"
	KeyTrailingWindow = "collect.trailing_window"
	KeyPageSize       = "collect.page_size"
	KeyQualifiers     = "collect.qualifiers"
	KeyPretty         = "collect.pretty"
)

// DefaultOutput is the document written when no path is configured.
const DefaultOutput = "repo_metadata.json"

// now is replaced in tests.
var now = time.Now

var collectCmd = &cobra.Command{
	Use:   "collect <language> <starting_date>",
	Short: "Collect the most-starred repositories month by month",
	Long: `Collects up to --monthly repositories per calendar month, sorted by stars,
for repositories written in <language> and created between <starting_date> and
--finish (default today). Dates use YYYY-MM-DD.

The token is taken from --token, then github.token in the config file, then the
environment variable named by github.token_env (default GITHUB_TOKEN).

Results are written once, at the end, to a single JSON document.`,
	Example: `  ghmine collect rust 2024-01-01 --finish 2024-03-01 --monthly 2
  ghmine collect go 2020-01-01 --format names -o go.json --qualifier "size:<10000"`,
	Args: cobra.ExactArgs(2),
	RunE: runCollect,
}

func init() {
	f := collectCmd.Flags()
	f.StringP("finish", "f", "", "ending date, exclusive (default today)")
	f.IntP("monthly", "m", domain.MaxReposPerMonth, "repositories to collect per month (1-100)")
	f.StringP("token", "t", "", "GitHub token")
	f.StringP("output", "o", DefaultOutput, "output file")
	f.String("format", string(domain.FormatRecords), "output format: records, monthly or names")
	f.Bool("trailing-window", true, "include the final partial month")
	f.StringArray("qualifier", nil, "extra search qualifier, repeatable (e.g. \"size:<10000\")")
	f.Int("page-size", domain.MaxPerPage, "results per search page (1-100)")
	f.Bool("pretty", false, "indent the JSON document")
	f.Bool("no-history", false, "do not record this run in the history database")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	flagToken, _ := cmd.Flags().GetString("token")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	svc, release, err := newHarvestService(flagToken, configStore, historyEnabled(configStore) && !noHistory)
	if err != nil {
		return err
	}
	defer release()

	harvest, err := svc.Run(cmd.Context(), req)
	if err != nil {
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("%w\nRun 'ghmine collect --help' for usage", err)
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return fmt.Errorf("%w\nGitHub rejected the token; check --token, github.token or the github.token_env variable", err)
		}
		return err
	}

	printHarvestSummary(cmd, harvest)
	return nil
}

// buildRequest layers flags over config over defaults.
func buildRequest(cmd *cobra.Command, args []string) (domain.HarvestRequest, error) {
	start, err := domain.ParseDate(args[1])
	if err != nil {
		return domain.HarvestRequest{}, err
	}

	end := domain.Today(now())
	if finish, _ := cmd.Flags().GetString("finish"); finish != "" {
		if end, err = domain.ParseDate(finish); err != nil {
			return domain.HarvestRequest{}, err
		}
	}

	monthly, _ := cmd.Flags().GetInt("monthly")

	format, err := domain.ParseOutputFormat(stringSetting(cmd, "format", KeyFormat))
	if err != nil {
		return domain.HarvestRequest{}, err
	}

	qualifiers := configStore.GetStringSlice(KeyQualifiers)
	if cmd.Flags().Changed("qualifier") {
		qualifiers, _ = cmd.Flags().GetStringArray("qualifier")
	}

	return domain.HarvestRequest{
		Language:       strings.TrimSpace(args[0]),
		Start:          start,
		End:            end,
		ReposPerMonth:  monthly,
		TrailingWindow: boolSetting(cmd, "trailing-window", KeyTrailingWindow),
		Qualifiers:     qualifiers,
		PageSize:       intSetting(cmd, "page-size", KeyPageSize),
		Output: domain.OutputSpec{
			Path:   stringSetting(cmd, "output", KeyOutput),
			Format: format,
			Pretty: boolSetting(cmd, "pretty", KeyPretty),
		},
	}, nil
}

// stringSetting returns the flag when set, else the config key, else the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	val, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) {
		return val
	}
	if cfg := configStore.GetString(key); cfg != "" {
		return cfg
	}
	return val
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	val, _ := cmd.Flags().GetInt(flag)
	if cmd.Flags().Changed(flag) {
		return val
	}
	if cfg := configStore.GetInt(key); cfg != 0 {
		return cfg
	}
	return val
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	val, _ := cmd.Flags().GetBool(flag)
	if cmd.Flags().Changed(flag) {
		return val
	}
	if _, ok := configStore.Get(key); ok {
		return configStore.GetBool(key)
	}
	return val
}
