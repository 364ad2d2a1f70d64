package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/dexr/internal/dexgen"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func renderKV(label, value string) string {
	return fmt.Sprintf("  %s %s", labelStyle.Render(label+":"), valueStyle.Render(value))
}

// renderSummary formats a pipeline run summary for the terminal.
func renderSummary(summary *dexgen.Summary) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Listing generated") + "\n")
	sb.WriteString(renderKV("run", summary.RunID) + "\n")
	sb.WriteString(renderKV("chains", fmt.Sprintf("%d", summary.Chains)) + "\n")
	sb.WriteString(renderKV("families", fmt.Sprintf("%d", summary.Families)) + "\n")
	sb.WriteString(renderKV("entries", fmt.Sprintf("%d", summary.Entries)) + "\n")

	if skipped := summary.SkippedTotal(); skipped > 0 {
		sb.WriteString(renderKV("skipped", warnStyle.Render(fmt.Sprintf("%d", skipped))) + "\n")

		for reason, n := range summary.Skipped {
			sb.WriteString(fmt.Sprintf("    %s %d\n", labelStyle.Render(reason.String()+":"), n))
		}
	}

	sb.WriteString(renderKV("duration", summary.Duration.Round(time.Millisecond).String()) + "\n")
	sb.WriteString(successStyle.Render("Saved to "+summary.OutputPath) + "\n")

	return sb.String()
}
