package collector

// RawCounters are writeback counters as exposed by the source, in the
// source's page granularity. Values are signed: the kernel folds per-cpu
// counters, so a live read can transiently dip below zero.
type RawCounters struct {
	Reclaimable int64
	Writeback   int64
	Dirtied     int64
	Written     int64
}

// QueueStat is one writeback queue as read from the source. Default marks
// the device's own writeback context; otherwise CgroupID identifies the
// owning cgroup.
type QueueStat struct {
	Default  bool
	CgroupID uint64
	Counters RawCounters
	AvgWB    int64 // raw bandwidth estimate, same granularity as Counters
}

// Device is one backing device handle exposed by a Source.
type Device interface {
	Name() string
	Queues() ([]QueueStat, error)
}

// Source enumerates backing devices capable of absorbing writeback.
// Enumeration order is stable within one call; the monitor never re-sorts.
type Source interface {
	// PageShift is the log2 of the source's counter granularity in bytes.
	// A source that already reports kilobytes uses 10.
	PageShift() uint
	Devices() ([]Device, error)
}
