package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// renderTable prints rows as an ASCII grid. The first row is the header;
// every row is followed by a separator line.
func renderTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sep strings.Builder
	sep.WriteString("+")
	for _, width := range widths {
		sep.WriteString(strings.Repeat("-", width+2))
		sep.WriteString("+")
	}

	fmt.Fprintln(w, sep.String())
	for _, row := range rows {
		var line strings.Builder
		line.WriteString("|")
		for i, cell := range row {
			line.WriteString(" ")
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", widths[i]-len(cell)+1))
			line.WriteString("|")
		}
		fmt.Fprintln(w, line.String())
		fmt.Fprintln(w, sep.String())
	}
}

// helpers
func itou(v uint64) string { return strconv.FormatUint(v, 10) }
func itoa(v int) string    { return strconv.Itoa(v) }
