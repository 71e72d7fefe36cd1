package subscriber

import (
	"bytes"
	"mcaststats/internal/calc"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReport(t *testing.T) {
	tests := []struct {
		name     string
		summary  calc.Summary
		lost     uint64
		received uint64
		want     string
	}{
		{
			name:     "fractional values",
			summary:  calc.Summary{Count: 4, Mean: 2.5, StdDev: 0.5, Mode: 3, Median: 2.5},
			lost:     2,
			received: 4,
			want: "Average: 2.5\n" +
				"Standard deviation: 0.5\n" +
				"Mode: 3\n" +
				"Median: 2.5\n" +
				"Lost packets: 2\n" +
				"Total received packets: 4\n",
		},
		{
			name:     "whole values",
			summary:  calc.Summary{Count: 1, Mean: -7, StdDev: 0, Mode: -7, Median: -7},
			lost:     0,
			received: 1,
			want: "Average: -7\n" +
				"Standard deviation: 0\n" +
				"Mode: -7\n" +
				"Median: -7\n" +
				"Lost packets: 0\n" +
				"Total received packets: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := WriteReport(&out, tt.summary, tt.lost, tt.received)
			if err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteNoData(t *testing.T) {
	var out bytes.Buffer
	err := WriteNoData(&out)
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	if got := out.String(); got != noDataMessage+"\n" {
		t.Errorf("expected %q, but got %q", noDataMessage+"\n", got)
	}
}
