package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"vault/internal/ui/views"
	"vault/internal/ui/widgets"
)

// View implements tea.Model.
func (m *Model) View() string {
	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.about != nil:
		body = m.place(renderAbout(*m.about), bodyHeight)
	case m.form != nil:
		body = m.place(renderForm(m.form, m.width-4), bodyHeight)
	case m.path != nil:
		body = m.renderDropdowns()
	case m.top() != nil:
		body = renderWindow(m.top(), m.width, bodyHeight)
	default:
		body = m.place(mutedStyle.Render("Press F10 or m for the menu, q to quit"), bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderBar(),
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body),
		m.renderStatus(),
	)
}

func (m *Model) place(s string, height int) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
}

func (m *Model) renderBar() string {
	parts := make([]string, 0, len(m.menu)+1)
	parts = append(parts, titleStyle.Background(colorSurface).Padding(0, 1).Render(AppName))
	for i, item := range m.menu {
		if m.path != nil && m.path[0] == i {
			parts = append(parts, barActiveStyle.Render(item.Label))
		} else {
			parts = append(parts, barItemStyle.Render(item.Label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return barStyle.Width(m.width).Render(ansi.Truncate(bar, m.width, ""))
}

// barOffset is the column where the bar entry i starts.
func (m *Model) barOffset(i int) int {
	x := lipgloss.Width(titleStyle.Padding(0, 1).Render(AppName))
	for j := 0; j < i; j++ {
		x += lipgloss.Width(barItemStyle.Render(m.menu[j].Label))
	}
	return x
}

func (m *Model) renderDropdowns() string {
	var boxes []string
	for level := 1; level < len(m.path); level++ {
		items := m.menuLevel(level)
		if len(items) == 0 {
			break
		}
		lines := make([]string, len(items))
		for i, item := range items {
			label := item.Label
			if len(item.Items) > 0 {
				label += " ▸"
			}
			if i == m.path[level] {
				lines[i] = cursorStyle.Render(label)
			} else {
				lines[i] = label
			}
		}
		boxes = append(boxes, boxStyle.Render(strings.Join(lines, "\n")))
	}
	if len(boxes) == 0 {
		return ""
	}
	return lipgloss.NewStyle().MarginLeft(m.barOffset(m.path[0])).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

func (m *Model) renderStatus() string {
	if w := m.top(); w != nil && w.confirm && m.form == nil {
		return errorStyle.Render(fmt.Sprintf("Delete %d selected row(s)? y/n", w.list.PendingDelete()))
	}
	if m.status == "" {
		return mutedStyle.Render(m.hints())
	}
	if m.statusErr {
		return errorStyle.Render(ansi.Truncate(m.status, m.width, "…"))
	}
	return okStyle.Render(ansi.Truncate(m.status, m.width, "…"))
}

func (m *Model) hints() string {
	switch {
	case m.form != nil:
		return "enter accept · esc cancel · tab next field · ←/→ choose"
	case m.top() != nil:
		return "a add · e edit · d delete · space select · 1-9 sort · esc close"
	}
	return "F10 menu · q quit"
}

// cell fits s into width columns with the given alignment.
func cell(s string, width int, align widgets.Align) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	pad := width - ansi.StringWidth(s)
	switch align {
	case widgets.AlignLeft:
		return s + strings.Repeat(" ", pad)
	case widgets.AlignRight:
		return strings.Repeat(" ", pad) + s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// columnWidths gives spare room to stretching columns and takes missing room
// from the last columns, never going below a column's minimum.
func columnWidths(cols []widgets.Column, total int) []int {
	widths := make([]int, len(cols))
	used := len(cols) - 1
	stretch := 0
	for i, c := range cols {
		widths[i] = c.Width
		used += c.Width
		if c.Stretch {
			stretch++
		}
	}

	if spare := total - used; spare > 0 && stretch > 0 {
		for i, c := range cols {
			if !c.Stretch {
				continue
			}
			share := spare / stretch
			widths[i] += share
			spare -= share
			stretch--
		}
		return widths
	}

	for i := len(cols) - 1; i >= 0 && used > total; i-- {
		cut := used - total
		if room := widths[i] - cols[i].MinWidth; cut > room {
			cut = room
		}
		widths[i] -= cut
		used -= cut
	}
	return widths
}

func renderWindow(w *window, width, height int) string {
	lv := w.list
	t := lv.Table()
	cols := t.Columns()
	widths := columnWidths(cols, width)

	heads := make([]string, len(cols))
	for i, c := range cols {
		title := c.Title
		if ind := t.Indicator(c.Key); ind != "" {
			title += " " + ind
		}
		heads[i] = cell(title, widths[i], widgets.AlignCenter)
	}

	lines := []string{
		titleStyle.Render(lv.Title()),
		headerStyle.Render(strings.Join(heads, " ")),
	}
	if err := lv.Err(); err != nil {
		lines = append(lines, errorStyle.Render(err.Error()))
	}

	rows := t.Visible()
	tree := false
	for _, r := range rows {
		if r.HasChildren || r.Depth > 0 {
			tree = true
			break
		}
	}

	room := height - len(lines)
	if room < 1 {
		room = 1
	}
	cursor := t.Cursor()
	if cursor < w.offset {
		w.offset = cursor
	}
	if cursor >= w.offset+room {
		w.offset = cursor - room + 1
	}

	for i := w.offset; i < len(rows) && i < w.offset+room; i++ {
		r := rows[i]
		cells := make([]string, len(cols))
		for j, c := range cols {
			v := r.Record[c.Key]
			if j == 0 && tree {
				v = strings.Repeat("  ", r.Depth) + treeMarker(r) + v
			}
			cells[j] = cell(v, widths[j], c.Align)
		}
		line := strings.Join(cells, " ")
		switch {
		case i == cursor:
			line = cursorStyle.Render(line)
		case r.Selected:
			line = selectStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("No records"))
	}
	return strings.Join(lines, "\n")
}

func treeMarker(r widgets.VisibleRow) string {
	switch {
	case !r.HasChildren:
		return "  "
	case r.Expanded:
		return "▾ "
	}
	return "▸ "
}

func renderForm(cv *views.ChangeView, maxWidth int) string {
	fields := cv.Fields()
	labelWidth := 0
	for _, f := range fields {
		if w := ansi.StringWidth(f.Label); w > labelWidth {
			labelWidth = w
		}
	}
	valueWidth := maxWidth - labelWidth - 8
	if valueWidth > 50 {
		valueWidth = 50
	}
	if valueWidth < 10 {
		valueWidth = 10
	}

	lines := []string{titleStyle.Render(cv.Title()), ""}
	for i, f := range fields {
		value := f.Display()
		if f.Select != nil {
			value = "◂ " + value + " ▸"
		}
		value = cell(value, valueWidth, widgets.AlignLeft)
		if f.Entry != nil && !f.Entry.Valid() {
			value = errorStyle.Render(value)
		}

		marker := "  "
		label := cell(f.Label, labelWidth, widgets.AlignLeft)
		if i == cv.Focus() {
			marker = focusStyle.Render("› ")
			label = focusStyle.Render(label)
		}
		line := marker + label + "  " + value
		if f.Hint != nil {
			if hint := f.Hint(); hint != "" {
				line += " " + mutedStyle.Render(hint)
			}
		}
		lines = append(lines, line)
	}
	if err := cv.Err(); err != nil {
		lines = append(lines, "", errorStyle.Render(err.Error()))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderAbout(a About) string {
	lines := append([]string{titleStyle.Render(AppName), ""}, a.Lines()...)
	lines = append(lines, "", mutedStyle.Render("esc close"))
	return boxStyle.Render(strings.Join(lines, "\n"))
}
