// Command syx inspects, splits and builds MIDI System Exclusive files.
//
// Usage:
//
//	syx [global flags] <command> [flags] [args]
//
// Commands:
//
//	identify       Describe the messages in a file
//	extract        Write the payload of a single-message file
//	split          Write each message of a file to its own file
//	sections       List the byte ranges of a single message
//	receive        Store messages read in ReceiveMIDI text format
//	make           Build a manufacturer-specific message
//	manufacturers  List or search the manufacturer registry
//	log            View a capture log
//	version        Print version information
//
// Examples:
//
//	# Identify every message in a bank dump
//	syx identify bank.syx
//
//	# Split a bank dump into numbered files in out/
//	syx split -v -dir out bank.syx
//
//	# Capture messages from receivemidi
//	receivemidi dev "MIDI Out" | syx -capture-log rx.sxlog receive
//
//	# Build a Korg message
//	syx make -m korg -p 3028 -o korg.syx
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/syxpack/syx-go/cmd/syx/commands"
	"github.com/syxpack/syx-go/pkg/config"
	"github.com/syxpack/syx-go/pkg/log"
	"github.com/syxpack/syx-go/pkg/manufacturer"
)

const usage = `syx - MIDI System Exclusive toolkit

Usage:
  syx [global flags] <command> [flags] [args]

Commands:
  identify       Describe the messages in a file
  extract        Write the payload of a single-message file
  split          Write each message of a file to its own file
  sections       List the byte ranges of a single message
  receive        Store messages read in ReceiveMIDI text format
  make           Build a manufacturer-specific message
  manufacturers  List or search the manufacturer registry
  log            View a capture log
  version        Print version information

Global flags:
  -config string       Configuration file (.yaml, .yml or .toml)
  -log-level string    Log level: debug, info, warn, error
  -capture-log string  Append a capture log of handled messages to this file

Use "syx <command> -help" for more information about a command.
`

// app holds the state built from global flags and configuration.
type app struct {
	cfg     config.Config
	env     *commands.Env
	capture *log.FileLogger
}

func main() {
	global := flag.NewFlagSet("syx", flag.ExitOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := global.String("config", "", "Configuration file (.yaml, .yml or .toml)")
	logLevel := global.String("log-level", "", "Log level: debug, info, warn, error")
	captureLog := global.String("capture-log", "", "Append a capture log of handled messages to this file")

	if err := global.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if global.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := global.Arg(0)
	args := global.Args()[1:]

	switch cmd {
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	}

	a, err := newApp(*configPath, *logLevel, *captureLog, cmd)
	if err != nil {
		fatal(err)
	}
	defer a.close()

	switch cmd {
	case "identify":
		err = a.runIdentify(args)
	case "extract":
		err = a.runExtract(args)
	case "split":
		err = a.runSplit(args)
	case "sections":
		err = a.runSections(args)
	case "receive":
		err = a.runReceive(args)
	case "make":
		err = a.runMake(args)
	case "manufacturers":
		err = a.runManufacturers(args)
	case "log":
		err = a.runLog(args)
	case "version":
		err = commands.RunVersion(a.env, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		a.close()
		os.Exit(1)
	}

	if err != nil {
		a.close()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newApp(configPath, logLevel, captureLog, cmd string) (*app, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if captureLog == "" && cmd == "receive" {
		captureLog = cfg.Receive.CaptureLog
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	reg := manufacturer.Default()
	if cfg.Registry != "" {
		var err error
		if reg, err = manufacturer.LoadRegistryFile(cfg.Registry); err != nil {
			return nil, err
		}
		logger.Debug("loaded registry", "path", cfg.Registry, "entries", reg.Len())
	}

	alg, _ := cfg.DigestAlgorithm()
	policy, _ := cfg.DanglingPolicy()

	a := &app{
		cfg: cfg,
		env: &commands.Env{
			Registry: reg,
			Digest:   alg,
			Policy:   policy,
			Logger:   logger,
		},
	}

	if captureLog != "" {
		fl, err := log.NewFileLogger(captureLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open capture log: %w", err)
		}
		a.capture = fl
		a.env.Capture = log.NewMultiLogger(fl, log.NewSlogAdapter(logger))
	}
	return a, nil
}

func (a *app) close() {
	if a.capture == nil {
		return
	}
	if err := a.capture.Err(); err != nil {
		a.env.Logger.Warn("capture log write failed", "error", err)
	}
	a.env.Logger.Debug("capture log closed", "records", a.capture.Written())
	if err := a.capture.Close(); err != nil {
		a.env.Logger.Warn("capture log close failed", "error", err)
	}
	a.capture = nil
}

// newFlagSet returns a FlagSet with the usage layout shared by all commands.
func newFlagSet(name, synopsis, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "syx %s - %s\n\nUsage:\n  syx %s [flags] %s\n\nFlags:\n", name, synopsis, name, args)
		fs.PrintDefaults()
	}
	return fs
}

// fileArg returns the single positional file argument or exits with usage.
func fileArg(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func (a *app) runIdentify(args []string) error {
	fs := newFlagSet("identify", "Describe the messages in a file", "<file>")
	alg := fs.String("digest", "", "Digest algorithm: md5, sha256, blake2b (default from config)")
	path := fileArg(fs, args)

	if *alg != "" {
		c := a.cfg
		c.Digest = *alg
		d, err := c.DigestAlgorithm()
		if err != nil {
			return err
		}
		a.env.Digest = d
	}
	return commands.RunIdentify(a.env, path, os.Stdout)
}

func (a *app) runExtract(args []string) error {
	fs := newFlagSet("extract", "Write the payload of a single-message file", "<file>")
	output := fs.String("o", "", "Output file (required)")
	path := fileArg(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	return commands.RunExtract(a.env, path, *output, os.Stdout)
}

func (a *app) runSplit(args []string) error {
	fs := newFlagSet("split", "Write each message of a file to its own file", "<file>")
	verbose := fs.Bool("v", false, "Report what is written")
	dir := fs.String("dir", a.cfg.Split.Dir, "Output directory (default: working directory)")
	path := fileArg(fs, args)

	_, err := commands.RunSplit(a.env, path, commands.SplitOptions{Dir: *dir, Verbose: *verbose}, os.Stdout)
	return err
}

func (a *app) runSections(args []string) error {
	fs := newFlagSet("sections", "List the byte ranges of a single message", "<file>")
	showBytes := fs.Bool("x", false, "Show the bytes of each section")
	path := fileArg(fs, args)

	return commands.RunSections(a.env, path, commands.SectionsOptions{ShowBytes: *showBytes}, os.Stdout)
}

func (a *app) runReceive(args []string) error {
	fs := newFlagSet("receive", "Store messages read in ReceiveMIDI text format", "")
	dir := fs.String("dir", a.cfg.Receive.Dir, "Output directory (default: working directory)")
	interactive := fs.Bool("interactive", false, "Read lines from an interactive prompt")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := commands.ReceiveOptions{
		Dir:         *dir,
		Interactive: *interactive,
		Prompt:      a.cfg.Receive.Prompt,
	}
	n, err := commands.RunReceive(ctx, a.env, opts, os.Stdin, os.Stdout)
	a.env.Logger.Debug("receive finished", "messages", n)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (a *app) runMake(args []string) error {
	fs := newFlagSet("make", "Build a manufacturer-specific message", "")
	m := fs.String("m", "", "Manufacturer: hex identifier (42, 002109) or name")
	p := fs.String("p", "", "Payload as hex")
	output := fs.String("o", "", "Output file (required)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *m == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: manufacturer (-m) and output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}
	_, err := commands.RunMake(a.env, commands.MakeOptions{Manufacturer: *m, Payload: *p, Output: *output}, os.Stdout)
	return err
}

func (a *app) runManufacturers(args []string) error {
	fs := newFlagSet("manufacturers", "List or search the manufacturer registry", "[query]")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	return commands.RunManufacturers(a.env, strings.Join(fs.Args(), " "), os.Stdout)
}

func (a *app) runLog(args []string) error {
	fs := newFlagSet("log", "View a capture log", "<file"+log.FileExtension+">")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, session, error)")
	session := fs.String("session", "", "Filter by session ID")
	mfr := fs.String("manufacturer", "", "Filter by manufacturer identifier (hex)")
	stats := fs.Bool("stats", false, "Show statistics instead of events")
	path := fileArg(fs, args)

	opts := commands.LogOptions{Stats: *stats}
	opts.Filter.SessionID = *session
	if *mfr != "" {
		m, err := manufacturer.ParseHex(*mfr)
		if err != nil {
			return err
		}
		opts.Filter.Manufacturer = m.String()
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			return err
		}
		opts.Filter.Direction = &d
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			return err
		}
		opts.Filter.Category = &c
	}
	return commands.RunLog(path, opts, os.Stdout)
}
