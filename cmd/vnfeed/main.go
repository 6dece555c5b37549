package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vnfeed"
	"github.com/fwojciec/vnfeed/blogger"
	"github.com/fwojciec/vnfeed/gofeed"
	"github.com/fwojciec/vnfeed/goquery"
	vnhttp "github.com/fwojciec/vnfeed/http"
	vnslog "github.com/fwojciec/vnfeed/slog"
	"github.com/fwojciec/vnfeed/sqlite"
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
	// SQLite database opened when --db is set.
	DB *sqlite.DB

	// Source replaces the feed-backed client when set. Used by tests.
	Source vnfeed.PostSource
}

// NewMain returns a new instance of Main.
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vnfeed"),
		kong.Description("Read visual novel releases from the Visual Novel para PC feed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"blog_id": gofeed.DefaultBlogID,
			"timeout": vnhttp.DefaultFetchTimeout.String(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vnfeed --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)
	deps.JSON = cli.JSON

	deps.Source = m.Source
	if deps.Source == nil {
		client := newClient(cli, logger)
		defer client.Close()
		deps.Source = client
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Posts = sqlite.NewPostService(m.DB)
		deps.AndroidPosts = sqlite.NewAndroidPostService(m.DB)
	}

	return kongCtx.Run(deps)
}

// feedClient is a blogger.Client that owns its fetcher.
type feedClient struct {
	*blogger.Client
	fetcher vnfeed.Fetcher
}

func (c *feedClient) Close() error {
	return c.fetcher.Close()
}

// newClient wires the HTTP fetcher, the Atom feed service and the HTML
// parsers into a blogger.Client.
func newClient(cli *CLI, logger *slog.Logger) *feedClient {
	fetcher := vnslog.NewLoggingFetcher(
		vnhttp.NewFetcher(
			vnhttp.WithTimeout(cli.Timeout),
			vnhttp.WithRateLimit(cli.Rate),
		),
		logger,
	)

	feed := vnslog.NewLoggingFeedService(
		gofeed.NewFeedService(fetcher, cli.BlogID),
		logger,
	)

	return &feedClient{
		Client: &blogger.Client{
			Feed:    feed,
			Parser:  goquery.NewPostParser(),
			Android: goquery.NewAndroidExtractor(),
			Logger:  logger,
		},
		fetcher: fetcher,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
