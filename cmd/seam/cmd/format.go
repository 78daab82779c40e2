package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/corey/seam/internal/domain/textmatch"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mediumBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("[approximate]")
	lowBadge    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("[may have shifted]")
)

// confidenceBadge renders the warning badge for a confidence score.
// High-confidence matches get no badge.
func confidenceBadge(confidence float64) string {
	switch textmatch.TierFor(confidence) {
	case textmatch.TierMedium:
		return " " + mediumBadge
	case textmatch.TierLow:
		return " " + lowBadge
	}
	return ""
}

// formatPosition renders one position match:
//
//	[120-180] exact 1.00
//	[135-155] approximate 0.30 [may have shifted]
func formatPosition(m textmatch.PositionMatch) string {
	return fmt.Sprintf("[%d-%d] %s %.2f%s",
		m.Start, m.End, m.Method, m.Confidence, confidenceBadge(m.Confidence))
}

// formatOverlap renders one join result.
func formatOverlap(m textmatch.OverlapMatch) string {
	if m.Method == textmatch.MethodNone {
		return dimStyle.Render("no overlap, separator inserted")
	}
	return fmt.Sprintf("%s overlap, %d chars at %d %.2f%s",
		m.Method, m.Length, m.StartInA, m.Confidence, confidenceBadge(m.Confidence))
}

// formatStats renders a batch summary block.
func formatStats(stats textmatch.BatchStats) string {
	var sb strings.Builder
	sb.WriteString(boldStyle.Render(fmt.Sprintf("%d spans realigned", stats.Total)))
	sb.WriteString(fmt.Sprintf(" │ %s total │ %s/span\n", stats.TotalTime, stats.AvgPerItem))
	sb.WriteString(fmt.Sprintf("  exact:       %d\n", stats.Exact))
	sb.WriteString(fmt.Sprintf("  fuzzy:       %d\n", stats.Fuzzy))
	sb.WriteString(fmt.Sprintf("  approximate: %d\n", stats.Approximate))
	return sb.String()
}
