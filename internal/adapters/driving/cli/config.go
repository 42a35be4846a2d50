package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghmine/internal/adapters/driven/auth"
)

// listKeys hold comma-separated lists when set from the command line.
var listKeys = map[string]bool{
	KeyQualifiers: true,
}

// secretKeys are masked when displayed.
var secretKeys = map[string]bool{
	auth.KeyToken: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write configuration",
	Long: `Reads and writes the TOML configuration file. Keys use dot notation:

  github.token              personal access token
  github.token_env          environment variable holding the token (default GITHUB_TOKEN)
  github.base_url           API base URL (GitHub Enterprise)
  github.requests_per_second  proactive request rate
  github.timeout_seconds    HTTP timeout
  collect.output            output file
  collect.format            records, monthly or names
  collect.trailing_window   include the final partial month
  collect.page_size         results per search page
  collect.qualifiers        comma-separated extra search qualifiers
  collect.pretty            indent the JSON document
  history.enabled           record runs in the history database`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		val, ok := configStore.Get(args[0])
		if !ok {
			return fmt.Errorf("config key %q is not set", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), displayValue(args[0], val))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimSpace(args[0])
		if err := configStore.Set(key, parseValue(key, args[1])); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		printSuccess(cmd.OutOrStdout(), "%s updated", key)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configStore.Path())
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configured value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		keys := configStore.Keys()
		if len(keys) == 0 {
			fmt.Fprintln(w, styleDim.Render("No configuration set."))
			return
		}
		for _, k := range keys {
			val, _ := configStore.Get(k)
			fmt.Fprintln(w, styleKey.UnsetWidth().Render(k)+" = "+styleValue.Render(displayValue(k, val)))
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configPathCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

// parseValue converts command-line text into a typed config value.
func parseValue(key, raw string) any {
	raw = strings.TrimSpace(raw)
	if listKeys[key] {
		var out []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func displayValue(key string, val any) string {
	if secretKeys[key] {
		s := fmt.Sprint(val)
		if len(s) <= 4 {
			return "****"
		}
		return "****" + s[len(s)-4:]
	}
	switch v := val.(type) {
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(val)
}
