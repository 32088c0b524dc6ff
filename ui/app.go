package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/wbtop/collector"
	"github.com/ftahirops/wbtop/model"
)

type tickMsg time.Time

type collectMsg struct {
	rows []row
	err  error
}

// row is one rendered line: a device total, or (cgroup mode) one of its
// queues listed above the total.
type row struct {
	model.Sample
	queue bool
}

// Model is the bubbletea model.
type Model struct {
	src    collector.Source
	filter *regexp.Regexp

	interval time.Duration
	cgroup   bool

	width  int
	height int

	rows    []row
	err     error
	paused  bool
	updated time.Time
}

// NewModel creates a new TUI model.
func NewModel(src collector.Source, filter *regexp.Regexp, interval time.Duration, cgroup bool) Model {
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		src:      src,
		filter:   filter,
		interval: interval,
		cgroup:   cgroup,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collect(m.src, m.filter, m.cgroup))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// collect runs one sampling pass off the update loop.
func collect(src collector.Source, filter *regexp.Regexp, cgroup bool) tea.Cmd {
	return func() tea.Msg {
		devs, err := src.Devices()
		if err != nil {
			return collectMsg{err: err}
		}
		shift := src.PageShift()
		var rows []row
		for _, dev := range devs {
			if filter != nil && !filter.MatchString(dev.Name()) {
				continue
			}
			total, queues, err := collector.SampleDevice(dev, shift)
			if err != nil {
				return collectMsg{err: err}
			}
			if cgroup {
				for _, q := range queues {
					rows = append(rows, row{Sample: q, queue: true})
				}
			}
			rows = append(rows, row{Sample: total})
		}
		return collectMsg{rows: rows}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			return m, nil
		case "c":
			m.cgroup = !m.cgroup
			return m, collect(m.src, m.filter, m.cgroup)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.paused {
			return m, tick(m.interval)
		}
		return m, tea.Batch(tick(m.interval), collect(m.src, m.filter, m.cgroup))

	case collectMsg:
		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.rows
			m.updated = time.Now()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	state := ""
	if m.paused {
		state = dimStyle.Render("  [paused]")
	}
	sb.WriteString(titleStyle.Render("wbtop") +
		dimStyle.Render(fmt.Sprintf("  %s  every %s", m.updated.Format("15:04:05"), m.interval)) +
		state + "\n\n")

	if m.err != nil {
		sb.WriteString(critStyle.Render(fmt.Sprintf("sampling failed: %v", m.err)) + "\n")
		return sb.String()
	}

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %10s %12s %9s %9s %9s",
		"name", "writeback", "reclaimable", "dirtied", "written", "avg_bw")) + "\n")

	var written, wb int64
	for _, r := range m.rows {
		line := formatRow(r.Sample)
		if r.queue {
			sb.WriteString(dimStyle.Render(line) + "\n")
			continue
		}
		written += r.Stats.Written
		wb += r.Stats.Writeback
		sb.WriteString(valueStyle.Render(line) + "\n")
	}
	if len(m.rows) == 0 {
		sb.WriteString(dimStyle.Render("no matching backing devices") + "\n")
	}

	sb.WriteString("\n" + helpStyle.Render(fmt.Sprintf(
		"total written %s  in flight %s   [p]ause  [c]group  [q]uit",
		humanize.IBytes(uint64(written)*1024),
		humanize.IBytes(uint64(wb)*1024))))
	return sb.String()
}

func formatRow(s model.Sample) string {
	name := s.Name
	if len(name) > 16 {
		name = name[len(name)-16:]
	}
	return fmt.Sprintf("%-16s %10d %12d %9d %9d %9d",
		name, s.Stats.Writeback, s.Stats.Reclaimable, s.Stats.Dirtied,
		s.Stats.Written, s.AvgWB)
}
