package subscriber

import (
	"fmt"
	"io"
	"mcaststats/internal/calc"
)

const (
	clearSequence string = "\033[H\033[2J"
	noDataMessage string = "Data did not receive any packets!"
)

// Writes the statistics block shown after a toggle
func WriteReport(w io.Writer, summary calc.Summary, lost, received uint64) (err error) {
	_, err = fmt.Fprintf(w,
		"Average: %v\n"+
			"Standard deviation: %v\n"+
			"Mode: %d\n"+
			"Median: %v\n"+
			"Lost packets: %d\n"+
			"Total received packets: %d\n",
		summary.Mean, summary.StdDev, summary.Mode, summary.Median, lost, received)
	return
}

// Writes the message shown when history is still empty
func WriteNoData(w io.Writer) (err error) {
	_, err = fmt.Fprintln(w, noDataMessage)
	return
}
