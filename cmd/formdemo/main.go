// Package main is the entry point for the form demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/tuikit/internal/app"
	"github.com/dshills/tuikit/internal/config"
	"github.com/dshills/tuikit/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	themePath := flags.themePath
	if themePath == "" {
		themePath = cfg.Theme
	}
	th := theme.Default()
	if themePath != "" {
		th, err = theme.Load(themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading theme: %v\n", err)
			return 1
		}
	}

	logger := app.NullLogger
	if flags.debug {
		logFile := cfg.LogFile
		if logFile == "" {
			logFile = "formdemo.log"
		}
		fileLogger, err := app.NewFileLogger(logFile, app.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	application := app.New(app.Options{
		Config:   cfg,
		Theme:    th,
		Logger:   logger,
		QuitKeys: "q",
	})

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Interrupt()
	}()

	form := newForm(application)
	if err := application.Run(form.build); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

type cliFlags struct {
	configPath string
	themePath  string
	logLevel   string
	debug      bool
}

func parseFlags() cliFlags {
	var flags cliFlags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&flags.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&flags.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&flags.themePath, "theme", "", "Path to JSON theme file")
	flag.StringVar(&flags.themePath, "t", "", "Path to JSON theme file (shorthand)")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging to a file")
	flag.BoolVar(&flags.debug, "d", false, "Enable debug logging to a file (shorthand)")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Formdemo - immediate-mode terminal form\n\n")
		fmt.Fprintf(os.Stderr, "Usage: formdemo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Tab/Down/s      Move focus forward\n")
		fmt.Fprintf(os.Stderr, "  Shift-Tab/Up/w  Move focus backward\n")
		fmt.Fprintf(os.Stderr, "  Enter           Activate the focused widget\n")
		fmt.Fprintf(os.Stderr, "  Escape          Stop editing a field\n")
		fmt.Fprintf(os.Stderr, "  q               Quit (when not editing)\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Formdemo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flags.logLevel != "" {
		switch flags.logLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", flags.logLevel)
			os.Exit(1)
		}
	}

	return flags
}
