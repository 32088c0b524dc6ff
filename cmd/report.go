package cmd

import (
	"fmt"

	"github.com/ftahirops/wbtop/model"
)

// outputMode selects how samples are rendered; fixed at startup.
type outputMode int

const (
	modeTable outputMode = iota
	modeJSON
)

// tableHeader returns the column header line. The name column header is
// blank, matching the row layout.
func tableHeader() string {
	return fmt.Sprintf("%16s %10s %12s %9s %9s %9s",
		"", "writeback", "reclaimable", "dirtied", "written", "avg_bw")
}

// tableRow renders one sample. Names keep their last 16 characters so
// the cgroup suffix stays visible; truncation is display-only.
func tableRow(s model.Sample) string {
	return fmt.Sprintf("%-16s %10d %12d %9d %9d %9d",
		lastN(s.Name, 16),
		s.Stats.Writeback,
		s.Stats.Reclaimable,
		s.Stats.Dirtied,
		s.Stats.Written,
		s.AvgWB)
}

// lastN returns the trailing n bytes of s.
func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
