package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stmtcli/internal/config"
	"stmtcli/internal/exporter"
	"stmtcli/internal/infrastructure"
	"stmtcli/internal/pipeline"
	"stmtcli/internal/yfinance"
	"stmtcli/pkg/contracts"
)

// unsafeDirChars matches everything not allowed in a snapshot folder name
var unsafeDirChars = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

func main() {
	ticker := flag.String("ticker", "", "ticker symbol (prompts when empty)")
	out := flag.String("out", "", "output directory for the clean CSV files (defaults to the configured export dir)")
	snapshot := flag.Bool("snapshot", false, "write into a timestamped <out>/<timestamp>/<ticker>/ folder")
	configPath := flag.String("config", "", "explicit config file path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// .env is optional
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	symbol := strings.ToUpper(strings.TrimSpace(*ticker))
	if symbol == "" {
		symbol = promptTicker(os.Stdin)
	}
	if symbol == "" {
		fmt.Println("No ticker entered. Exiting.")
		return
	}

	destDir := cfg.Export.Dir
	if *out != "" {
		destDir = *out
	}
	if *snapshot || cfg.Export.Snapshot {
		destDir = filepath.Join(destDir, time.Now().Format(config.SnapshotTimeFormat), safeDirName(symbol))
	}

	logger.InfoContext(ctx, "run starting",
		slog.String("app", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("ticker", symbol),
		slog.String("dest_dir", destDir))

	client := yfinance.New(cfg.Provider, logger)
	statements := exporter.NewStatementExporter(cfg.Export)
	runner := pipeline.NewRunner(client, statements, logger)

	result, runErr := runner.Run(ctx, symbol, destDir)

	printExports(os.Stdout, result.Exports)

	if runErr != nil {
		logger.ErrorContext(ctx, "run failed",
			slog.String("ticker", symbol),
			slog.String("error", runErr.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "run completed",
		slog.String("ticker", symbol),
		slog.String("company", result.CompanyName),
		slog.String("currency", result.Currency),
		slog.Int("files", len(result.Exports)))

	fmt.Printf("Done. %d files written to %s\n", len(result.Exports), destDir)
}

// promptTicker asks for a ticker on the terminal. The answer is trimmed
// and uppercased; an empty answer or closed stdin yields an empty string.
func promptTicker(r io.Reader) string {
	fmt.Print("Enter a ticker (e.g. CBA.AX, WBC.AX, AAPL): ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(line))
}

// safeDirName converts a ticker to a folder-safe name: dots become
// underscores, any other disallowed run collapses to one underscore.
func safeDirName(name string) string {
	return unsafeDirChars.ReplaceAllString(strings.ReplaceAll(name, ".", "_"), "_")
}

// printExports writes the per-file progress lines. An empty statement
// gets a warning ahead of the save line for its header-only file.
func printExports(w io.Writer, exports []pipeline.ExportResult) {
	for _, exp := range exports {
		if exp.Empty {
			fmt.Fprintf(w, "[WARN] Empty statement: %s (header-only CSV written)\n", exp.Kind.Title())
		}
		fmt.Fprintf(w, "[OK] Saved: %s\n", exp.Path)
	}
}
