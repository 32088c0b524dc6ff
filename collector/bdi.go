package collector

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ftahirops/wbtop/util"
)

// DefaultDebugfsRoot is where the kernel exposes per-bdi statistics.
const DefaultDebugfsRoot = "/sys/kernel/debug/bdi"

// DebugfsSource reads writeback statistics from the kernel's per-bdi
// debugfs tree. Each child directory is one backing device. Counters
// there are already kilobytes, so PageShift is 10 and the kB conversion
// is the identity.
type DebugfsSource struct {
	Root string
	log  *zap.Logger
}

// NewDebugfsSource returns a source rooted at DefaultDebugfsRoot.
func NewDebugfsSource(log *zap.Logger) *DebugfsSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &DebugfsSource{Root: DefaultDebugfsRoot, log: log}
}

func (s *DebugfsSource) PageShift() uint { return 10 }

// Devices lists the bdi directories. os.ReadDir sorts by name, so
// enumeration order is stable across passes.
func (s *DebugfsSource) Devices() ([]Device, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("enumerate backing devices under %s: %w", s.Root, err)
	}
	var devs []Device
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		devs = append(devs, &debugfsDevice{
			name: e.Name(),
			dir:  filepath.Join(s.Root, e.Name()),
			log:  s.log,
		})
	}
	s.log.Debug("enumerated backing devices", zap.Int("count", len(devs)))
	return devs, nil
}

type debugfsDevice struct {
	name string
	dir  string
	log  *zap.Logger
}

func (d *debugfsDevice) Name() string { return d.name }

// Queues reads wb_stats (per-queue blocks, cgroup-aware kernels) and
// falls back to stats (default queue only) when wb_stats is absent.
func (d *debugfsDevice) Queues() ([]QueueStat, error) {
	lines, err := util.ReadFileLines(filepath.Join(d.dir, "wb_stats"))
	if err == nil {
		qs := parseWbStats(lines)
		d.log.Debug("sampled wb_stats", zap.String("bdi", d.name), zap.Int("queues", len(qs)))
		return qs, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read wb_stats of %s: %w", d.name, err)
	}

	lines, err = util.ReadFileLines(filepath.Join(d.dir, "stats"))
	if err != nil {
		return nil, fmt.Errorf("read stats of %s: %w", d.name, err)
	}
	d.log.Debug("sampled stats", zap.String("bdi", d.name))
	return []QueueStat{parseBdiStats(lines)}, nil
}

// parseWbStats parses repeated per-queue blocks. Every block opens with
// WbCgIno; cgroup inode 1 is the device's own writeback context. Lines
// that match no known key are ignored.
func parseWbStats(lines []string) []QueueStat {
	var qs []QueueStat
	var cur *QueueStat
	for _, line := range lines {
		key, val := util.SplitStatLine(line)
		if key == "WbCgIno" {
			ino := util.ParseUint64(val)
			qs = append(qs, QueueStat{CgroupID: ino, Default: ino == 1})
			cur = &qs[len(qs)-1]
			continue
		}
		if cur == nil {
			continue
		}
		switch key {
		case "WbWriteback":
			cur.Counters.Writeback = util.ParseInt64(val)
		case "WbReclaimable":
			cur.Counters.Reclaimable = util.ParseInt64(val)
		case "WbDirtied":
			cur.Counters.Dirtied = util.ParseInt64(val)
		case "WbWritten":
			cur.Counters.Written = util.ParseInt64(val)
		case "WbWriteBandwidth":
			cur.AvgWB = util.ParseInt64(val)
		}
	}
	return qs
}

// parseBdiStats parses the single-block stats file into the device's
// default queue.
func parseBdiStats(lines []string) QueueStat {
	q := QueueStat{Default: true, CgroupID: 1}
	for _, line := range lines {
		key, val := util.SplitStatLine(line)
		switch key {
		case "BdiWriteback":
			q.Counters.Writeback = util.ParseInt64(val)
		case "BdiReclaimable":
			q.Counters.Reclaimable = util.ParseInt64(val)
		case "BdiDirtied":
			q.Counters.Dirtied = util.ParseInt64(val)
		case "BdiWritten":
			q.Counters.Written = util.ParseInt64(val)
		case "BdiWriteBandwidth":
			q.AvgWB = util.ParseInt64(val)
		}
	}
	return q
}
