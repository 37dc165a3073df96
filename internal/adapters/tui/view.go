package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent = lipgloss.Color("86")
	subtle = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	modeStyle   = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("57")).Foreground(lipgloss.Color("229"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 1)
	mainStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle   = cellStyle.Background(lipgloss.Color("57")).Foreground(lipgloss.Color("229"))
	selectedStyle = cellStyle.Foreground(lipgloss.Color("212")).Bold(true)

	infoStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(1, 2)
	errorStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("196")).Padding(1, 2)
)

// chrome is the number of lines taken by everything but the table rows.
const chrome = 9

func (m Model) View() string {
	s := m.session
	if s.exit {
		return ""
	}

	sections := []string{m.header()}
	if s.mode == ModeCommandEntry {
		sections = append(sections, inputStyle.Width(m.innerWidth()).Render(s.input.View()))
	}

	if s.notification != nil {
		sections = append(sections, m.notificationView(s.notification))
	} else {
		sections = append(sections, m.mainView())
	}
	if s.status != "" {
		sections = append(sections, statusStyle.Render(s.status))
	}
	sections = append(sections, m.help.ShortHelpView(keys.ShortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	title := headerStyle.Render("kafka-utils")
	if m.label != "" {
		title += " " + lipgloss.NewStyle().Foreground(subtle).Render(m.label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, modeStyle.Render(m.session.mode.String()), " ", title)
}

func (m Model) innerWidth() int {
	if m.width <= 4 {
		return 0
	}
	return m.width - 4
}

func (m Model) mainView() string {
	s := m.session
	if s.active == nil {
		lines := make([]string, 0, len(s.history))
		for i, h := range s.history {
			lines = append(lines, fmt.Sprintf("%d: %s", i, h))
		}
		if len(lines) == 0 {
			lines = append(lines, mutedStyle.Render("press : and type a command: "+strings.Join(commandList(), ", ")))
		}
		return mainStyle.Width(m.innerWidth()).Render(strings.Join(lines, "\n"))
	}

	title := titleStyle.Render(fmt.Sprintf("%s (%d)", s.active.kind, s.table.RowCount()))
	return lipgloss.JoinVertical(lipgloss.Left, title, renderTable(s.table, m.width, m.height-chrome))
}

func (m Model) notificationView(n *Notification) string {
	style, title := infoStyle, "info"
	if n.Kind == NotificationError {
		style, title = errorStyle, "error"
	}
	box := style.Render(lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), "", n.Message))
	if m.width == 0 || m.height <= chrome {
		return box
	}
	return lipgloss.Place(m.width, m.height-chrome, lipgloss.Center, lipgloss.Center, box)
}

func commandList() []string {
	out := make([]string, 0, len(commandNames))
	for _, k := range Commands() {
		out = append(out, k.String())
	}
	return out
}

// renderTable draws the rows around the cursor that fit into height lines.
func renderTable(t *Table, width, height int) string {
	def := t.Definition()
	data := t.Data()
	cursor, hasCursor := t.Cursor()

	start, end := visibleRange(cursor, len(data.Rows), height)
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		cells := append([]string(nil), data.Rows[i].Cells...)
		if def.Selectable && len(cells) > 0 {
			mark := "  "
			if t.IsSelected(i) {
				mark = "✓ "
			}
			cells[0] = mark + cells[0]
		}
		rows = append(rows, cells)
	}

	widths := columnWidths(def, data, width)
	headers := make([]string, len(def.Columns))
	for i, c := range def.Columns {
		headers[i] = c.Title
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle.Padding(0, 1)
			} else {
				i := start + row
				switch {
				case hasCursor && i == cursor:
					style = cursorStyle
				case t.IsSelected(i):
					style = selectedStyle
				case data.Rows[i].Muted:
					style = cellStyle.Faint(true)
				}
			}
			if col < len(def.Columns) {
				style = style.Align(def.Columns[col].Align)
			}
			if col < len(widths) {
				style = style.Width(widths[col])
			}
			return style
		}).
		Render()
}

// columnWidths resolves width hints into cell widths including padding. Fill columns share
// whatever total width remains.
func columnWidths(def TableDefinition, data TableData, total int) []int {
	n := len(def.Columns)
	out := make([]int, n)
	fills := 0
	used := n + 1
	for i := 0; i < n; i++ {
		w := lipgloss.Width(def.Columns[i].Title) + 2
		if def.Selectable && i == 0 {
			w += 2
		}
		if i < len(data.Widths) && !data.Widths[i].Fill {
			w = max(w, data.Widths[i].Min+2)
		}
		if i < len(data.Widths) && data.Widths[i].Fill {
			fills++
			for _, r := range data.Rows {
				if i < len(r.Cells) {
					extra := 2
					if def.Selectable && i == 0 {
						extra += 2
					}
					w = max(w, lipgloss.Width(r.Cells[i])+extra)
				}
			}
		}
		out[i] = w
		used += w
	}

	if fills == 0 || total <= used {
		return out
	}
	spare := (total - used) / fills
	for i := 0; i < n && i < len(data.Widths); i++ {
		if data.Widths[i].Fill {
			out[i] += spare
		}
	}
	return out
}

// visibleRange returns the window [start, end) of rows to draw so the cursor stays on
// screen. height is the number of lines available for rows.
func visibleRange(cursor, count, height int) (int, int) {
	if height <= 0 || count <= height {
		return 0, count
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, start + height
}
