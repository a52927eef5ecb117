// Package report renders short terminal summaries of the fits behind a figure.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/28H4/plot-playground/src/fit"
	"github.com/28H4/plot-playground/src/multifit"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).Width(14)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	fallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#999999")).Padding(0, 1)
)

// FitSummary lists the regression statistics of a linear fit.
func FitSummary(title string, res fit.LinearResult) string {
	rows := [][2]string{
		{"slope", fmt.Sprintf("%.4f ± %.4f", res.Slope, res.StdErr)},
		{"intercept", fmt.Sprintf("%.4f ± %.4f", res.Intercept, res.InterceptStdErr)},
		{"r", fmt.Sprintf("%.5f", res.RValue)},
		{"p", fmt.Sprintf("%.3g", res.PValue)},
		{"points", fmt.Sprintf("%d", res.N)},
	}
	lines := []string{titleStyle.Render(title)}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// SeriesTable lists each smoothed series with its point count and spline
// degree. Labels are tinted with the series color when colors are given.
func SeriesTable(title string, reports []multifit.SeriesReport, colors []drawing.Color) string {
	labelW := len("series")
	for _, r := range reports {
		if n := lipgloss.Width(r.Label); n > labelW {
			labelW = n
		}
	}
	labelCol := lipgloss.NewStyle().Width(labelW + 2)
	numCol := lipgloss.NewStyle().Width(8)

	lines := []string{
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Width(labelW+2).Render("series"),
			keyStyle.Width(8).Render("points"),
			keyStyle.Width(8).Render("degree")),
	}
	for i, r := range reports {
		label := labelCol
		if i < len(colors) {
			label = label.Foreground(lipgloss.Color(hex(colors[i])))
		}
		degree := numCol.Render(fmt.Sprintf("%d", r.Degree))
		if r.Fallback {
			degree = fallbackStyle.Width(8).Render(fmt.Sprintf("%d*", r.Degree))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(r.Label),
			numCol.Render(fmt.Sprintf("%d", r.Points)),
			degree))
	}
	for _, r := range reports {
		if r.Fallback {
			lines = append(lines, fallbackStyle.Render("* too few points for a cubic spline"))
			break
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
