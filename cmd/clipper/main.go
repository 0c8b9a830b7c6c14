package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/fwojciec/clipper/goquery"
	"github.com/fwojciec/clipper/readability"
	clipslog "github.com/fwojciec/clipper/slog"
	"github.com/fwojciec/clipper/sqlite"
	"github.com/fwojciec/clipper/trafilatura"
	"github.com/fwojciec/clipper/yaml"
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

	// Stdin is read by "extract -". Defaults to os.Stdin.
	Stdin io.Reader

	// Sleep overrides the waits of the video extractor.
	Sleep extract.SleepFunc

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ItemService clipper.ItemService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipper"),
		kong.Description("Extract structured content from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipper --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cmd != "extract" || cli.Extract.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CLIPPER_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.ItemService = sqlite.NewItemService(m.DB)
		deps.Items = m.ItemService
	}

	if cmd == "extract" {
		cfg, err := yaml.Load(cli.Extract.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", clipper.ErrorMessage(err))
			return err
		}
		deps.Parser = goquery.NewParser()
		deps.Extractor = newEngine(cfg, cli.Extract.Distiller, m.Sleep, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newEngine wires the extraction engine with logging decorators.
func newEngine(cfg yaml.Config, distiller string, sleep extract.SleepFunc, logger *slog.Logger) clipper.Extractor {
	ecfg := cfg.ExtractConfig()
	ecfg.Logger = logger
	ecfg.Sleep = sleep
	if d := newDistiller(distiller); d != nil {
		ecfg.Distiller = clipslog.NewLoggingDistiller(d, logger)
	}

	extractors := extract.NewExtractors(ecfg)
	classifier := clipslog.NewLoggingClassifier(extract.NewClassifier(ecfg.Selectors.Sites), logger)
	engine := extract.NewEngine(classifier, extractors[clipper.CategoryGeneric])
	for category, x := range extractors {
		engine.Register(category, x)
	}
	return clipslog.NewLoggingExtractor(engine, logger)
}

func newDistiller(name string) clipper.Distiller {
	switch name {
	case "trafilatura":
		return trafilatura.NewDistiller()
	case "readability":
		return readability.NewDistiller()
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("CLIPPER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "clipper.db"
	}
	dir := filepath.Join(home, ".clipper")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "clipper.db")
}
