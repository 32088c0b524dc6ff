package cmd

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ftahirops/wbtop/collector"
	"github.com/ftahirops/wbtop/config"
	"github.com/ftahirops/wbtop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Config holds CLI configuration.
type Config struct {
	Patterns []string
	Interval time.Duration
	JSONMode bool
	Cgroup   bool
	TUIMode  bool
	Debug    bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `wbtop v%s — writeback statistics monitor for Linux backing devices

Usage:
  wbtop [OPTIONS] [REGEX...]

Metrics (all kilobytes, bandwidth in kB/s):
  writeback         dirty pages currently being written back to disk
  reclaimable       pages currently reclaimable
  dirtied           pages that have been dirtied
  written           dirty pages written back to disk
  avg_bw            estimated average write bandwidth

Options:
  -i, -interval S   Sampling interval in seconds (default: 1, 0 = once and exit)
  -j, -json         JSON lines output instead of the table
  -c, -cgroup       Also show per-cgroup writeback queues of each device
  -t, -tui          Interactive terminal UI (bubbletea, fullscreen)
  -debug            Verbose diagnostics on stderr
  -version          Print version and exit

Positional:
  REGEX             Backing device name patterns, OR-combined (all if empty)

Examples:
  sudo wbtop                      All devices, 1s refresh
  sudo wbtop -i 5 nvme            Devices matching "nvme", 5s refresh
  sudo wbtop -i 0                 One snapshot, then exit
  sudo wbtop -c '^8:'             Per-cgroup detail for sd devices
  sudo wbtop -j | jq .avg_wb      JSON stream
  sudo wbtop -t                   Interactive UI
`, Version)
}

// Run parses flags and starts the monitor.
func Run() error {
	fileCfg := config.Load()

	var (
		cfg         Config
		intervalSec float64
		showVersion bool
	)

	flag.Float64Var(&intervalSec, "i", fileCfg.IntervalSec, "Sampling interval in seconds (0 = once)")
	flag.Float64Var(&intervalSec, "interval", fileCfg.IntervalSec, "Sampling interval in seconds (0 = once)")
	flag.BoolVar(&cfg.JSONMode, "j", fileCfg.JSON, "JSON lines output")
	flag.BoolVar(&cfg.JSONMode, "json", fileCfg.JSON, "JSON lines output")
	flag.BoolVar(&cfg.Cgroup, "c", fileCfg.Cgroup, "Show per-cgroup writeback queues")
	flag.BoolVar(&cfg.Cgroup, "cgroup", fileCfg.Cgroup, "Show per-cgroup writeback queues")
	flag.BoolVar(&cfg.TUIMode, "t", false, "Interactive terminal UI")
	flag.BoolVar(&cfg.TUIMode, "tui", false, "Interactive terminal UI")
	flag.BoolVar(&cfg.Debug, "debug", false, "Verbose diagnostics on stderr")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("wbtop v%s\n", Version)
		return nil
	}

	if intervalSec < 0 {
		return fmt.Errorf("interval must be >= 0, got %v", intervalSec)
	}
	cfg.Interval = time.Duration(intervalSec * float64(time.Second))
	cfg.Patterns = flag.Args()

	filter, err := compileFilter(cfg.Patterns)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()
	}

	src := collector.NewDebugfsSource(logger)

	// -tui mode: fullscreen UI, refreshed on the same interval
	if cfg.TUIMode {
		if cfg.JSONMode {
			return fmt.Errorf("-tui and -json are mutually exclusive")
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("-tui requires a terminal on stdout")
		}
		m := ui.NewModel(src, filter, cfg.Interval, cfg.Cgroup)
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	// Plain mode: table or JSON lines until interrupted
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	mode := modeTable
	if cfg.JSONMode {
		mode = modeJSON
	}
	mon := &monitor{
		src:    src,
		filter: filter,
		out:    os.Stdout,
		mode:   mode,
		cgroup: cfg.Cgroup,
		stop:   sig,
		log:    logger,
	}
	return mon.run(cfg.Interval)
}

// compileFilter OR-joins the name patterns into one expression. A nil
// result matches every device.
func compileFilter(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	re, err := regexp.Compile(strings.Join(patterns, "|"))
	if err != nil {
		return nil, fmt.Errorf("bad device pattern: %w", err)
	}
	return re, nil
}
