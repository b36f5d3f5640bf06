package report

import (
	"fmt"
	"io"
	"strings"

	"energy-sim/internal/analysis"
	"energy-sim/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for terminal output.
const (
	ColorHeader = lipgloss.Color("39")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("255")
	ColorOK     = lipgloss.Color("42")
	ColorMuted  = lipgloss.Color("240")
	ColorBorder = lipgloss.Color("63")
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one rune per value scaled between the series min and max.
func Sparkline(s model.Series) string {
	if s.Len() == 0 {
		return ""
	}
	lo, hi := s[0], s[0]
	for _, v := range s {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	var sb strings.Builder
	for _, v := range s {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		}
		sb.WriteRune(sparkTicks[idx])
	}
	return sb.String()
}

// RenderSummary writes a styled comparison of original vs optimized totals.
func RenderSummary(w io.Writer, res *model.RunResult) error {
	if err := res.Validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	sum := analysis.Summarize(res)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Width(14).Align(lipgloss.Right)
	savedStyle := lipgloss.NewStyle().Foreground(ColorOK).Bold(true).Width(22).Align(lipgloss.Right)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Energy Simulation (%d days)", sum.Days)))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(22).Render("Metric"),
		headerStyle.Width(14).Align(lipgloss.Right).Render(model.ScenarioOriginal.Label()),
		headerStyle.Width(14).Align(lipgloss.Right).Render(model.ScenarioOptimized.Label()),
		headerStyle.Width(22).Align(lipgloss.Right).Render("Savings"),
	))
	sb.WriteString("\n")

	rows := []struct {
		label string
		unit  string
		cmp   analysis.Comparison
	}{
		{"Usage", "kWh", sum.Usage},
		{"Cost", "", sum.Cost},
		{"Footprint", "kg CO2e", sum.Footprint},
	}
	for _, r := range rows {
		label := r.label
		if r.unit != "" {
			label += " (" + r.unit + ")"
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label),
			valueStyle.Render(fmt.Sprintf("%.2f", r.cmp.Original.Total)),
			valueStyle.Render(fmt.Sprintf("%.2f", r.cmp.Optimized.Total)),
			savedStyle.Render(fmt.Sprintf("%.2f (%.1f%%)", r.cmp.Savings, r.cmp.SavingsPercent)),
		))
		sb.WriteString("\n")
	}

	if sum.Days > 0 {
		sb.WriteString("\n")
		series := []struct {
			label string
			s     model.Series
		}{
			{"Usage", res.Original.Usage},
			{"Cost", res.Original.Cost},
			{"Footprint", res.Original.Footprint},
		}
		for _, s := range series {
			sb.WriteString(labelStyle.Render(s.label))
			sb.WriteString(Sparkline(s.s))
			sb.WriteString("\n")
		}
	}

	if !sum.Avoided.IsEmpty {
		sb.WriteString("\n")
		sb.WriteString(muted.Italic(true).Render(sum.Avoided.Text))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
