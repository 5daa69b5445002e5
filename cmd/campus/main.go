package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"campus/internal/api"
	"campus/internal/cli/output"
	"campus/internal/config"
	"campus/internal/models"
	"campus/internal/threads"
	"campus/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v":
			fmt.Printf("campus %s (commit: %s, built: %s)\n", version, commit, date)
			return nil
		case "threads":
			return cmdThreads(args[1:])
		case "stats":
			return cmdStats(args[1:])
		default:
			return fmt.Errorf("unknown command %q (try: campus, campus threads, campus stats)", args[0])
		}
	}

	return runTUI()
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.APIURL, cfg.APIToken, cfg.APITimeout)

	app := ui.NewApp(client)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func cmdThreads(args []string) error {
	fs := flag.NewFlagSet("threads", flag.ContinueOnError)
	format := fs.String("format", "", "Output format: table, json, plain, quiet")
	search := fs.String("search", "", "Free-text search")
	typeFilter := fs.String("type", threads.TypeAll, "Thread type: all, classroom, generic")
	unit := fs.String("unit", "", "Filter classroom threads by unit id")
	category := fs.String("category", "", "Filter generic threads by category")
	sortKey := fs.String("sort", "recent", "Sort key: recent, replies, created")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIURL, cfg.APIToken, cfg.APITimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	defer cancel()

	list, err := client.ListThreads(ctx)
	if err != nil {
		return err
	}

	filtered := threads.Apply(list, threads.Query{
		Search:   *search,
		Type:     *typeFilter,
		UnitID:   *unit,
		Category: *category,
		Sort:     models.SortKey(*sortKey),
	})

	return output.Threads(filtered, *format)
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	format := fs.String("format", "", "Output format: table, json, plain")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.APIURL, cfg.APIToken, cfg.APITimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	defer cancel()

	list, err := client.ListThreads(ctx)
	if err != nil {
		return err
	}

	return output.Stats(threads.Stats(list), *format)
}
