package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/scwatts/ecocyc-pathways/internal/usecase"
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true)
	summaryFaint = lipgloss.NewStyle().Faint(true)
	summaryFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// printSummary writes a short run report. It goes to stderr so stdout stays data.
func printSummary(w io.Writer, sum usecase.BatchSummary) {
	fmt.Fprintln(w, renderSummary(sum))
}

func renderSummary(sum usecase.BatchSummary) string {
	total := sum.EndedAt.Sub(sum.StartedAt)
	if sum.StartedAt.IsZero() || sum.EndedAt.IsZero() {
		total = 0
	}

	var b strings.Builder
	b.WriteString(summaryTitle.Render("ecocyc run"))
	b.WriteString(summaryFaint.Render(fmt.Sprintf(" (%s)", total.Round(time.Millisecond))))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Genes:       %d\n", sum.Genes)
	fmt.Fprintf(&b, "Records:     %d\n", sum.Records)
	fmt.Fprintf(&b, "Not found:   %d\n", sum.NotFound)
	fmt.Fprintf(&b, "No promoter: %d\n", sum.NoPromoter)

	failed := fmt.Sprintf("Failed:      %d", sum.Failed)
	if sum.Failed > 0 {
		failed = summaryFail.Render(failed)
	}
	b.WriteString(failed)

	for _, f := range sum.Failures {
		b.WriteByte('\n')
		b.WriteString(summaryFaint.Render(fmt.Sprintf("  - %s [%s/%s]: %v", f.Gene, f.Step, f.Kind, f.Err)))
	}
	return b.String()
}
