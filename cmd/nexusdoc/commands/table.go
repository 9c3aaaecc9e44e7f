package commands

import (
	"io"

	"github.com/1ean267/nexustack-sub001/internal/cliutil"
)

// renderTable writes rows as a fixed-width table under headers. In quiet
// mode headers are omitted and cells are tab-separated for piping.
func renderTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			switch {
			case quiet:
				if i > 0 {
					cliutil.Writef(w, "\t")
				}
				cliutil.Writef(w, "%s", cell)
			case i == len(cells)-1:
				// no trailing padding on the last column
				if i > 0 {
					cliutil.Writef(w, "  ")
				}
				cliutil.Writef(w, "%s", cell)
			default:
				if i > 0 {
					cliutil.Writef(w, "  ")
				}
				cliutil.Writef(w, "%-*s", widths[i], cell)
			}
		}
		cliutil.Writef(w, "\n")
	}

	if !quiet {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
}
