package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/glyphstack/tablepack/pkg/repack"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// traceModel is the bubbletea model for the iteration trace viewer. It
// shows one row per resolution round and a detail line for the round
// under the cursor.
type traceModel struct {
	input   string
	records []repack.IterationRecord
	result  repack.Result
	cursor  int
	height  int
	offset  int
}

// newTraceModel creates a trace viewer over the recorded rounds.
func newTraceModel(input string, records []repack.IterationRecord, result repack.Result) traceModel {
	return traceModel{
		input:   input,
		records: records,
		result:  result,
		height:  15,
	}
}

func (m traceModel) Init() tea.Cmd {
	return nil
}

func (m traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m traceModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Repack Trace"))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(m.input))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.records) {
		end = len(m.records)
	}
	b.WriteString(renderTraceTable(m.records[m.offset:end], m.cursor-m.offset))
	b.WriteString("\n")

	if m.cursor < len(m.records) {
		r := m.records[m.cursor]
		detail := fmt.Sprintf("round %d: %s sort over %d subtables (%d bytes)",
			r.Iteration, r.State, r.Nodes, r.TotalBytes)
		if r.Overflows > 0 {
			detail += fmt.Sprintf(", %d overflows resolved by %d duplications and %d bumps",
				r.Overflows, r.Duplications, r.Bumps)
		} else {
			detail += ", clean"
		}
		b.WriteString("  " + StyleDim.Render(detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.result.Status == repack.StateFailed {
		b.WriteString("  " + StyleError.Render(fmt.Sprintf("%s failed, %d overflows remain", iconError, len(m.result.Overflows))))
	} else {
		b.WriteString("  " + StyleSuccess.Render(fmt.Sprintf("%s resolved in %d iterations", iconSuccess, m.result.Iterations)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.records))))

	return b.String()
}

// renderTraceTable renders the recorded rounds as a table. The row at
// cursor is highlighted; pass a negative cursor for no highlight.
func renderTraceTable(records []repack.IterationRecord, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(records))
	for i, r := range records {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{
			marker,
			strconv.Itoa(r.Iteration),
			r.State.String(),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.TotalBytes),
			strconv.Itoa(r.Overflows),
			strconv.Itoa(r.Duplications),
			strconv.Itoa(r.Bumps),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Round", "Sort", "Subtables", "Bytes", "Overflows", "Dups", "Bumps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 5 && row >= 0 && row < len(records) && records[row].Overflows > 0 {
				return StyleWarning
			}
			return StyleValue
		})

	return t.Render()
}
