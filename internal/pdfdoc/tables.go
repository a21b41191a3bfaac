package pdfdoc

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// colGap is the minimum horizontal gap (in PDF points) between two words
// before they are treated as belonging to different table cells.
const colGap = 18.0

// splitRowCells groups the words of one text row into cells. Words are
// assumed to be in left-to-right order as returned by GetTextByRow.
func splitRowCells(words []pdf.Text, gap float64) []string {
	if len(words) == 0 {
		return nil
	}

	var cells []string
	var cur strings.Builder
	prevEnd := words[0].X

	for i, w := range words {
		s := strings.TrimSpace(w.S)
		if s == "" {
			continue
		}
		if i > 0 && w.X-prevEnd > gap && cur.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(s)
		prevEnd = w.X + w.W
	}
	if cur.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cur.String()))
	}
	return cells
}

// groupTables folds consecutive multi-cell rows into tables. A run of rows
// with a single cell (ordinary paragraph text) ends the current table.
func groupTables(rows [][]string) []Table {
	var tables []Table
	var cur Table

	flush := func() {
		if len(cur) > 0 {
			tables = append(tables, cur)
			cur = nil
		}
	}

	for _, row := range rows {
		if len(row) >= 2 {
			cur = append(cur, row)
			continue
		}
		flush()
	}
	flush()
	return tables
}
