package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"schooldesk/internal/config"
	"schooldesk/internal/i18n"
	"schooldesk/internal/telemetry"
	"schooldesk/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "schooldesk: %v\n", err)
		os.Exit(1)
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: schooldesk [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal front office for a school: attendance, grades and student tracking.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "schooldesk: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// The alt screen owns stdout; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "schooldesk")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("config: locale=%s export-dir=%s otlp=%q", cfg.Locale, cfg.ExportDir, cfg.OTLPEndpoint)

	ctx := context.Background()
	tp, shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Printer:   i18n.NewPrinter(cfg.Locale),
		Tracer:    tp.Tracer(telemetry.TracerName),
		ExportDir: cfg.ExportDir,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
