package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghmine/internal/core/domain"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// printHarvestSummary reports a finished harvest.
func printHarvestSummary(cmd *cobra.Command, h *domain.Harvest) {
	w := cmd.OutOrStdout()
	req := h.Request

	printSuccess(w, "Collected %s %s repositories",
		styleNumber.Render(strconv.Itoa(h.RecordCount())), styleValue.Render(req.Language))
	printKeyValue(w, "Range", req.Start.Format(domain.DateLayout)+" .. "+req.End.Format(domain.DateLayout))
	printKeyValue(w, "Windows", strconv.Itoa(len(h.Windows)))
	printKeyValue(w, "Per month", strconv.Itoa(req.ReposPerMonth))
	printKeyValue(w, "Format", string(req.Output.Format))
	printKeyValue(w, "Elapsed", formatDuration(h.FinishedAt.Sub(h.StartedAt)))
	if h.RunID != "" {
		printKeyValue(w, "Run", h.RunID)
	}
	printFile(w, req.Output.Path)

	if len(h.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range h.Warnings {
			printWarning(w, warning)
		}
	}
}

// printRun prints every field of one history entry.
func printRun(w io.Writer, r *domain.Run) {
	fmt.Fprintln(w, styleTitle.Render("Run "+r.ID))
	printKeyValue(w, "Language", r.Language)
	printKeyValue(w, "Range", r.Start.Format(domain.DateLayout)+" .. "+r.End.Format(domain.DateLayout))
	printKeyValue(w, "Per month", strconv.Itoa(r.ReposPerMonth))
	printKeyValue(w, "Windows", strconv.Itoa(r.Windows))
	printKeyValue(w, "Records", strconv.Itoa(r.Records))
	printKeyValue(w, "Warnings", strconv.Itoa(r.Warnings))
	printKeyValue(w, "Format", string(r.Format))
	printKeyValue(w, "Started", r.StartedAt.Local().Format(time.DateTime))
	printKeyValue(w, "Took", formatDuration(r.Duration()))
	printFile(w, r.OutputPath)
}

// renderRunTable renders history rows as a bordered table.
func renderRunTable(runs []domain.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Language,
			r.Start.Format(domain.DateLayout) + ".." + r.End.Format(domain.DateLayout),
			strconv.Itoa(r.Records),
			strconv.Itoa(r.Warnings),
			formatDuration(r.Duration()),
			r.OutputPath,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Started", "Lang", "Range", "Records", "Warnings", "Took", "Output").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			switch col {
			case 4:
				return styleNumber
			case 5:
				if rows[row][col] != "0" {
					return styleWarning
				}
				return styleDim
			case 0, 1:
				return styleDim
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
