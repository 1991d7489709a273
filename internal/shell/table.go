package shell

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mgpai22/srtsh/internal/subtitle"
)

const maxTextWidth = 48

func tableStyle(name string) table.Style {
	switch name {
	case "light":
		return table.StyleLight
	case "ascii":
		return table.StyleDefault
	default:
		return table.StyleRounded
	}
}

func renderEntryTable(entries []subtitle.Entry, style table.Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Length", "Text"})

	for _, e := range entries {
		tw.AppendRow(table.Row{
			strconv.Itoa(e.Sequence),
			e.StartTime.Timestamp(),
			e.EndTime.Timestamp(),
			strconv.FormatInt((e.EndTime-e.StartTime).Milliseconds(), 10) + "ms",
			strings.Join(e.Text, " / "),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: maxTextWidth, WidthMaxEnforcer: text.Trim},
	})

	return tw.Render()
}
