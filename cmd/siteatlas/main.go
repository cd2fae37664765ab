package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/crawl"
	"github.com/fwojciec/siteatlas/fs"
	"github.com/fwojciec/siteatlas/goquery"
	sahttp "github.com/fwojciec/siteatlas/http"
	"github.com/fwojciec/siteatlas/htmltomarkdown"
	saslog "github.com/fwojciec/siteatlas/slog"
	"github.com/fwojciec/siteatlas/sqlite"
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
	// SQLite database backing the pages cache, opened only when the
	// materialize command asks for persistence.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteatlas"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteatlas --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire core services into dependencies
	httpFetcher := sahttp.NewFetcher()
	defer httpFetcher.Close()

	var fetcher siteatlas.Fetcher = httpFetcher
	if cmd == "extract" && cli.Extract.Retry {
		fetcher = &crawl.RetryFetcher{Next: fetcher, Logger: logger}
	}

	deps.Fetcher = saslog.NewLoggingFetcher(fetcher, logger)
	deps.Downloader = httpFetcher
	deps.Classifier = saslog.NewLoggingClassifier(goquery.NewClassifier(), logger)
	deps.Prober = saslog.NewLoggingProber(sahttp.NewProber(nil), logger)
	deps.Artifacts = fs.NewWriter()
	deps.Converter = htmltomarkdown.NewConverter()
	rps := cli.Extract.Rate
	if rps <= 0 {
		rps = 1.0
	}
	deps.Extractor = &crawl.Extractor{
		Fetcher: deps.Fetcher,
		Limiter: crawl.NewDomainLimiter(rps),
		Logger:  logger,
	}

	// The pages cache is only durable when asked for explicitly
	if cmd == "materialize" && cli.Materialize.Cache != "" {
		m.DB = sqlite.NewDB(cli.Materialize.Cache)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open cache database at %q: %w", cli.Materialize.Cache, err)
		}
		defer m.Close()
		deps.Caches = sqlite.NewCacheStore(m.DB)
	}

	return kongCtx.Run(deps)
}
