package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderTable draws a bordered table; columns listed in numeric are right-aligned.
func renderTable(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := tableCellStyle
			if row == table.HeaderRow {
				style = tableHeaderStyle
			}
			if right[col] {
				return style.Align(lipgloss.Right)
			}
			return style
		}).
		Render()
}

func printBrokers(out io.Writer, brokers []domain.BrokerSummary) {
	for _, b := range brokers {
		fmt.Fprintf(out, "[%d] %s:%d\n", b.ID, b.Host, b.Port)
	}
}

func printTopics(out io.Writer, topics []domain.TopicSummary) {
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []string{
			t.Name,
			strconv.Itoa(t.Partitions),
			strconv.Itoa(t.ReplicationFactor),
			strconv.FormatInt(t.MessageCount, 10),
			strconv.FormatInt(t.SizeBytes, 10),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Name", "Partitions", "Replication Factor", "Message Count", "Size"}, rows, 1, 2, 3, 4))
}

func printGroups(out io.Writer, groups []domain.ConsumerGroupSummary) {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Name, g.State})
	}
	fmt.Fprintln(out, renderTable([]string{"Name", "State"}, rows))
}

// quoteList renders names as ["a", "b"].
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
