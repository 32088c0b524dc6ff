package model

// StatCounters holds the four per-queue writeback counters, in kilobytes.
type StatCounters struct {
	Reclaimable int64
	Writeback   int64
	Dirtied     int64
	Written     int64
}

// Add accumulates o into s element-wise.
func (s *StatCounters) Add(o StatCounters) {
	s.Reclaimable += o.Reclaimable
	s.Writeback += o.Writeback
	s.Dirtied += o.Dirtied
	s.Written += o.Written
}

// Sample is one queue- or device-level reading from a single pass.
// Queue samples are named "<device>_<owner>" where owner is "1" for the
// device's own writeback context or the owning cgroup's inode number.
// Samples are rebuilt from scratch every pass; nothing carries over.
type Sample struct {
	Name  string
	Stats StatCounters
	AvgWB int64 // estimated average write bandwidth, kB/s
}

// Record is the line format of JSON output mode.
type Record struct {
	Timestamp   float64 `json:"timestamp"`
	Name        string  `json:"name"`
	Writeback   int64   `json:"writeback"`
	Reclaimable int64   `json:"reclaimable"`
	Dirtied     int64   `json:"dirtied"`
	Written     int64   `json:"written"`
	AvgWB       int64   `json:"avg_wb"`
}

// Record converts a sample to its JSON form, stamped with the pass
// timestamp (seconds since the epoch).
func (s Sample) Record(ts float64) Record {
	return Record{
		Timestamp:   ts,
		Name:        s.Name,
		Writeback:   s.Stats.Writeback,
		Reclaimable: s.Stats.Reclaimable,
		Dirtied:     s.Stats.Dirtied,
		Written:     s.Stats.Written,
		AvgWB:       s.AvgWB,
	}
}
