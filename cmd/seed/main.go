package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/forgo/todos/api/internal/config"
	"github.com/forgo/todos/api/internal/server"
	"github.com/forgo/todos/api/internal/service"
)

type itemResult struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func main() {
	// Flags for customization
	file := flag.String("file", "", "Path to a JSON array of {title, assignedTo} (default: SEED_FILE)")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	timeout := flag.Duration("timeout", time.Minute, "Overall import timeout")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	path := *file
	if path == "" {
		path = cfg.SeedFile
	}
	if path == "" {
		fmt.Fprintf(os.Stderr, "No seed file given\n")
		fmt.Fprintf(os.Stderr, "\nUse -file or set SEED_FILE\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, err := server.OpenStore(ctx, cfg.DriverConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	svc := service.NewTodoService(service.TodoServiceConfig{TodoRepo: store.Todos})

	results, err := svc.ImportFile(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", path, err)
		os.Exit(1)
	}

	items := make([]itemResult, 0, len(results))
	for i, r := range results {
		item := itemResult{Index: i, Title: r.Candidate.Title, ID: r.ID}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		items = append(items, item)
	}
	summary := service.Summarize(results)

	if *outputJSON {
		output := map[string]any{
			"file":     path,
			"inserted": summary.Inserted,
			"failed":   summary.Failed,
			"results":  items,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		for _, item := range items {
			if item.Error != "" {
				fmt.Printf("  #%d %-30q FAILED  %s\n", item.Index, item.Title, item.Error)
				continue
			}
			fmt.Printf("  #%d %-30q id=%d\n", item.Index, item.Title, item.ID)
		}
		fmt.Printf("\nImported %d of %d todos from %s\n", summary.Inserted, len(items), path)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
