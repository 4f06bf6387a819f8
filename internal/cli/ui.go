package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-theft-auto/clay/internal/scene"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleLabel for field names.
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for lookahead mismatches.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleHovered = styleCell.Foreground(colorGreen)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// visitTable renders replay visits, one row per element. Rows whose
// lookahead disagrees with the real hover state are flagged.
func visitTable(visits []scene.Visit) string {
	rows := make([][]string, 0, len(visits))
	for _, v := range visits {
		name := v.ID.StringID
		if name == "" {
			name = "(anonymous)"
		}
		note := ""
		if v.Mismatch() {
			note = "lookahead mismatch"
		}
		rows = append(rows, []string{
			v.Path,
			strconv.FormatUint(uint64(v.ID.ID), 10),
			name,
			fmt.Sprintf("%g,%g %gx%g", v.Node.X, v.Node.Y, v.Node.Width, v.Node.Height),
			yesNo(v.Lookahead),
			yesNo(v.Hovered),
			note,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("PATH", "ID", "NAME", "BOX", "NEXT HOVERED", "HOVERED", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row >= 0 && row < len(visits) {
				switch {
				case col == 6:
					return StyleWarning.Padding(0, 1)
				case visits[row].Hovered:
					return styleHovered
				}
			}
			return styleCell
		})
	return t.String()
}
