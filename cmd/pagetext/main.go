package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/fs"
	"github.com/fwojciec/pagetext/goquery"
	"github.com/fwojciec/pagetext/htmltomarkdown"
	pthttp "github.com/fwojciec/pagetext/http"
	"github.com/fwojciec/pagetext/scrape"
	ptslog "github.com/fwojciec/pagetext/slog"
	"github.com/fwojciec/pagetext/sqlite"
	"github.com/fwojciec/pagetext/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Config files consulted for flag defaults, in order.
	ConfigPaths []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher options applied on top of the timeout flag.
	FetchOptions []pthttp.Option
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{"~/.pagetext.yaml"},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetext"),
		kong.Description("Scrape text content from a single web page and export it as text, Markdown and JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagetext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cli.LogLevel, cli.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	command := kongCtx.Selected().Name

	if command == "history" || (command == "scrape" && cli.Scrape.Save) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGETEXT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Scrapes = ptslog.NewLoggingScrapeService(sqlite.NewScrapeService(m.DB), logger)
	}

	if command == "scrape" {
		opts := []pthttp.Option{
			pthttp.WithTimeout(cli.Scrape.Timeout),
			pthttp.WithRateLimit(cli.Scrape.Rate),
			pthttp.WithRetryFunc(func(url string, attempt int, err error) {
				logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
			}),
		}
		opts = append(opts, m.FetchOptions...)

		deps.Scraper = &scrape.Scraper{
			Fetcher:   ptslog.NewLoggingFetcher(pthttp.NewFetcher(opts...), logger),
			Extractor: ptslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		}
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(origin(cli.Scrape.URL)))
		deps.Store = fs.NewArtifactStore(cli.Scrape.Out)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGETEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagetext.db"
	}
	dir := filepath.Join(home, ".pagetext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagetext.db")
}

// origin returns scheme://host of rawURL, or "" when it has no host.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// errorf writes a user-facing error line to stderr and returns err.
func errorf(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", pagetext.ErrorMessage(err))
	return err
}
