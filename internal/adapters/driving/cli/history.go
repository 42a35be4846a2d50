package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past collection runs",
	Long:  "Lists recorded collection runs, newest first.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one collection run",
	Long:  "Shows the details of a recorded run. A unique prefix of the run ID is enough.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	svc, release, err := newHarvestService("", configStore, true)
	if err != nil {
		return err
	}
	defer release()

	runs, err := svc.History(cmd.Context(), limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, styleDim.Render("No runs recorded yet."))
		return nil
	}

	fmt.Fprintln(w, styleTitle.Render("Collection history"))
	fmt.Fprintln(w, renderRunTable(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	svc, release, err := newHarvestService("", configStore, true)
	if err != nil {
		return err
	}
	defer release()

	run, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printRun(cmd.OutOrStdout(), run)
	return nil
}
