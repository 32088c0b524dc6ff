package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/ftahirops/wbtop/collector"
	"github.com/ftahirops/wbtop/model"
)

// monitor drives the periodic sampling loop. One pass enumerates every
// matching device, aggregates its queues, and reports; the loop then
// sleeps. A stop request is only honored between passes, so a started
// pass always emits all of its records.
type monitor struct {
	src    collector.Source
	filter *regexp.Regexp // nil matches every device
	out    io.Writer
	mode   outputMode
	cgroup bool
	stop   chan os.Signal
	log    *zap.Logger
}

func (m *monitor) run(interval time.Duration) error {
	for {
		if err := m.runOnce(time.Now()); err != nil {
			return err
		}
		if interval <= 0 {
			return nil
		}
		select {
		case <-m.stop:
			m.log.Debug("stop requested, exiting")
			return nil
		case <-time.After(interval):
		}
	}
}

// runOnce performs one full sampling pass. All records of the pass carry
// the same timestamp.
func (m *monitor) runOnce(now time.Time) error {
	ts := float64(now.UnixNano()) / float64(time.Second)

	if m.mode == modeTable {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, tableHeader())
	}

	devs, err := m.src.Devices()
	if err != nil {
		return err
	}
	shift := m.src.PageShift()

	for _, dev := range devs {
		if m.filter != nil && !m.filter.MatchString(dev.Name()) {
			continue
		}
		total, queues, err := collector.SampleDevice(dev, shift)
		if err != nil {
			return err
		}
		if m.cgroup {
			for _, q := range queues {
				if err := m.emit(q, ts); err != nil {
					return err
				}
			}
		}
		if err := m.emit(total, ts); err != nil {
			return err
		}
		if m.cgroup && m.mode == modeTable {
			fmt.Fprintln(m.out)
		}
	}
	return nil
}

func (m *monitor) emit(s model.Sample, ts float64) error {
	if m.mode == modeJSON {
		return json.NewEncoder(m.out).Encode(s.Record(ts))
	}
	_, err := fmt.Fprintln(m.out, tableRow(s))
	return err
}
