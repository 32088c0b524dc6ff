package collector

import (
	"fmt"
	"strconv"

	"github.com/ftahirops/wbtop/model"
)

// KB converts a count in page granularity to kilobytes. Page sizes are
// power-of-two multiples of 1 KiB on every supported system, so the shift
// is exact.
func KB(pages int64, pageShift uint) int64 {
	return pages << (pageShift - 10)
}

// clampKB converts one raw counter to kilobytes, treating a negative
// reading (transient per-cpu fold inconsistency) as zero.
func clampKB(raw int64, pageShift uint) int64 {
	if raw < 0 {
		return 0
	}
	return KB(raw, pageShift)
}

// SampleQueue converts one queue's raw stats into a named sample. The
// device's own queue reports as "<device>_1", a cgroup queue as
// "<device>_<cgroup-inode>".
func SampleQueue(devName string, q QueueStat, pageShift uint) model.Sample {
	owner := "1"
	if !q.Default {
		owner = strconv.FormatUint(q.CgroupID, 10)
	}
	return model.Sample{
		Name: devName + "_" + owner,
		Stats: model.StatCounters{
			Reclaimable: clampKB(q.Counters.Reclaimable, pageShift),
			Writeback:   clampKB(q.Counters.Writeback, pageShift),
			Dirtied:     clampKB(q.Counters.Dirtied, pageShift),
			Written:     clampKB(q.Counters.Written, pageShift),
		},
		// The bandwidth estimate is converted as-is. The kernel keeps it
		// non-negative; a negative reading here would pass through.
		AvgWB: KB(q.AvgWB, pageShift),
	}
}

// SampleDevice samples every queue of one device and sums them into a
// device-level total. Returns the total plus the individual queue samples
// in source order. A device with no queues yields an all-zero total.
func SampleDevice(dev Device, pageShift uint) (model.Sample, []model.Sample, error) {
	total := model.Sample{Name: dev.Name()}

	qs, err := dev.Queues()
	if err != nil {
		return model.Sample{}, nil, fmt.Errorf("read queues of %s: %w", dev.Name(), err)
	}

	queues := make([]model.Sample, 0, len(qs))
	for _, q := range qs {
		s := SampleQueue(dev.Name(), q, pageShift)
		total.Stats.Add(s.Stats)
		total.AvgWB += s.AvgWB
		queues = append(queues, s)
	}
	return total, queues, nil
}
