package commands

import (
	"os"
	"strings"

	"diistore/internal/area"
	"diistore/internal/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var matchColors = text.Colors{text.FgHiYellow, text.Bold}

func renderSegments(segments []area.Segment) string {
	var out strings.Builder
	for _, s := range segments {
		if s.Match {
			out.WriteString(matchColors.Sprint(s.Text))
			continue
		}
		out.WriteString(s.Text)
	}
	return out.String()
}

func levelColors(level catalog.StockLevel) text.Colors {
	switch level {
	case catalog.StockEmpty:
		return text.Colors{text.FgRed}
	case catalog.StockLow:
		return text.Colors{text.FgYellow}
	}
	return text.Colors{text.FgGreen}
}
