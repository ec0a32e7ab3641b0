package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fedideck/internal/telemetry"
)

func main() {
	logPath := flag.String("log", "fedideck.log", "path of the log file (the TUI owns stderr)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	tracer, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tracing setup: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := tracer.Shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown", "error", err)
		}
	}()

	p := tea.NewProgram(newShell(logger, tracer), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
