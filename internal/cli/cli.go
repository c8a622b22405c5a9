package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"github.com/rs/xid"
	"github.com/shotsweep/shotsweep/internal/config"
	"github.com/shotsweep/shotsweep/internal/env"
	"github.com/shotsweep/shotsweep/internal/screenshot"
	"github.com/shotsweep/shotsweep/internal/trash"
	"github.com/shotsweep/shotsweep/internal/ui"
	"github.com/shotsweep/shotsweep/internal/utils/debug"
	"github.com/shotsweep/shotsweep/internal/utils/log"
)

type Option struct {
	List   bool   `short:"l" long:"list" description:"List screenshots in the scan directory"`
	JSON   bool   `long:"json" description:"Print results as JSON"`
	Sort   string `long:"sort" description:"Sort screenshots by" choice:"name" choice:"created_at" choice:"modified_at" choice:"size"`
	Desc   bool   `long:"desc" description:"Sort in descending order (with --sort)"`
	Config string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\"), or log as JSON" optional-value:"full" optional:"yes" choice:"full" choice:"live" choice:"json"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string

	stdout io.Writer
	ledger *trash.Ledger

	disposer *trash.Disposer
	restorer *trash.Restorer
}

var runID = sync.OnceValue(func() string {
	return xid.New().String()
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[options] [files...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	defaults := config.NewDefaultConfig().Logging.Rotation
	var out io.Writer = io.Discard
	rw, err := log.NewRotateWriter(env.SHOTSWEEP_LOG_PATH, defaults.MaxSize, defaults.MaxFiles)
	if err == nil {
		defer rw.Close()
		out = rw
	}

	formatter := log.TextFormatter
	if opt.Meta.Debug == "json" {
		formatter = log.JSONFormatter
	}
	logger := log.New(
		log.UseOutput(out),
		log.UseLevel(log.DebugLevel),
		log.UseFormatter(formatter),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.Kitchen),
		log.With("run_id", runID()),
		log.AsDefault(),
	)

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	if opt.Meta.Debug == "" {
		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		log.SetLevel(logger, level)
	}
	if rw != nil {
		if err := rw.SetLimits(cfg.Logging.Rotation.MaxSize, cfg.Logging.Rotation.MaxFiles); err != nil {
			slog.Warn("keeping default log rotation", "error", err)
		}
	}

	trasher, err := trash.NewTrasher(trash.Config{
		TrashDir:     cfg.Core.TrashDir,
		HomeFallback: cfg.Core.HomeFallback,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize trash: %w", err)
	}

	ledger := trash.NewLedger()
	cli := CLI{
		version:  v,
		option:   opt,
		config:   cfg,
		runID:    runID(),
		stdout:   os.Stdout,
		ledger:   ledger,
		disposer: trash.NewDisposer(trasher, ledger),
		restorer: trash.NewRestorer(trasher, ledger, trash.WithCrossDevice(cfg.Core.HomeFallback)),
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(c.stdout, c.version.Print())
		return nil

	case c.option.Meta.Debug == "live":
		return debug.Logs(c.stdout, env.SHOTSWEEP_LOG_PATH, true)

	case c.option.Meta.Debug == "full":
		return debug.Logs(c.stdout, env.SHOTSWEEP_LOG_PATH, false)

	case c.option.List:
		return c.List()

	case len(args) > 0:
		return c.Dispose(args)

	case isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()):
		return c.Sweep()

	default:
		return errors.New("no files given: pass files to trash or run in a terminal")
	}
}

// scanOptions merges the config with --sort and --desc
func (c CLI) scanOptions() screenshot.Options {
	scan := c.config.Scan
	opts := screenshot.Options{
		Extensions: scan.Extensions,
		Filter: screenshot.FilterOptions{
			ExcludeGlobs:  scan.Exclude.Globs,
			MinSize:       scan.Exclude.Size.Min,
			MaxSize:       scan.Exclude.Size.Max,
			Within:        scan.Within,
			VerifyContent: scan.VerifyContent,
		},
		SortBy:     scan.SortBy,
		Descending: scan.Descending,
	}
	if c.option.Sort != "" {
		opts.SortBy = c.option.Sort
		opts.Descending = c.option.Desc
	}
	return opts
}

// Sweep starts the interactive session
func (c CLI) Sweep() error {
	slog.Debug("cli.sweep started")
	defer slog.Debug("cli.sweep finished")

	return ui.Run(ui.Session{
		Dir:      c.config.Scan.Dir,
		Options:  c.scanOptions(),
		Disposer: c.disposer,
		Restorer: c.restorer,
		Ledger:   c.ledger,
	}, c.config.UI)
}
