package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/wikisum/internal/config"
	"github.com/go-scripts/wikisum/internal/fetcher"
	"github.com/go-scripts/wikisum/internal/progress"
	"github.com/go-scripts/wikisum/ui"
)

// CLI flags structure
type CLIFlags struct {
	Search []string `arg:"" name:"search" help:"Words of the article title"`

	ConfigFile string        `name:"config" help:"Path to configuration file" default:"wikisum.yaml" type:"path"`
	Timeout    time.Duration `help:"Timeout for fetching the page" short:"t"`
	UserAgent  string        `help:"User-Agent sent with the request"`
	Plain      bool          `help:"Print plain ANSI text instead of a panel"`
	Pager      bool          `help:"Scroll summaries taller than the terminal" short:"p"`
	Browser    bool          `help:"Fetch the page with headless Chrome"`
	Save       string        `help:"Directory to save the summary as JSON" type:"path"`
	Debug      bool          `help:"Enable debug logging"`
}

// loadConfig loads the configuration file and applies the command line
// flags on top of it
func loadConfig(flags CLIFlags) (*config.Configuration, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	// Override config with command line flags if provided
	if flags.Timeout != 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.UserAgent != "" {
		cfg.UserAgent = flags.UserAgent
	}
	if flags.Plain {
		cfg.Plain = true
	}
	if flags.Pager {
		cfg.Pager = true
	}
	if flags.Browser {
		cfg.Browser = true
	}
	if flags.Save != "" {
		cfg.SaveDir = flags.Save
	}
	if flags.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

func setupLogging(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(false)
}

func newFetcher(cfg *config.Configuration) fetcher.Fetcher {
	if cfg.Browser {
		return fetcher.NewBrowserFetcher(cfg.FetchOptions())
	}
	return fetcher.NewHTTPFetcher(cfg.FetchOptions())
}

func main() {
	var flags CLIFlags

	kong.Parse(&flags,
		kong.Name("wikisum"),
		kong.Description("Print the summary paragraph of a Wikipedia article."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig(flags)
	if err != nil {
		log.Error("Error loading configuration", "err", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	capability := ui.Detect(os.Stdout, cfg.Plain)
	log.Debug("Terminal detected", "enhanced", capability.Enhanced, "width", capability.Width)

	app := &App{
		config:   cfg,
		fetcher:  newFetcher(cfg),
		renderer: ui.New(capability, cfg.Pager),
		progress: progress.New(os.Stderr, capability.Enhanced),
		out:      os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = app.Run(ctx, flags.Search)
	stop()
	if err != nil {
		log.Error("Lookup failed", "err", err)
		os.Exit(1)
	}
}
