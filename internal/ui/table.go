package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table to w. The first row is the header.
func PrintTable(data [][]string, w io.Writer) {
	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		slog.Error("table render failed", "rows", len(data), "error", err)
		pterm.Fprintln(w, pterm.Error.Sprint("Failed to output table: ", err))

		return
	}

	fmt.Fprintln(w, str)
}
