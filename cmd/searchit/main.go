// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/searchit"
	"github.com/poiesic/searchit/cache"
	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/session"
	"github.com/poiesic/searchit/source"
	"github.com/urfave/cli/v2"
)

func main() {
	sourceFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "Path to a JSON array file of searchable items",
		},
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "URL returning a JSON array of searchable items",
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "Maximum number of results (0 = unlimited)",
		},
		&cli.BoolFlag{
			Name:  "load-once",
			Usage: "Fetch the data set once and rank locally on every query",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Path to a BadgerDB directory for persisting fetched data",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Give up on a search after this long",
			Value: 10 * time.Second,
		},
	}

	app := &cli.App{
		Name:   "searchit",
		Usage:  "Incremental search over list data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run one search and print the ranked results",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags:     sourceFlags,
			},
			{
				Name:   "interactive",
				Usage:  "Read queries from stdin and print results per line",
				Action: interactiveCommand,
				Flags:  sourceFlags,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	engine, done, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	engine.Trigger(query)
	return waitForSearch(done, query, c.Duration("timeout"))
}

func interactiveCommand(c *cli.Context) error {
	engine, done, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		engine.Trigger(query)
		if err := waitForSearch(done, query, c.Duration("timeout")); err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return scanner.Err()
}

// searchOutcome ties a completed search back to the query it ran for, so a
// search that outlives its wait cannot be mistaken for the next one.
type searchOutcome struct {
	query string
	err   error
}

// buildEngine wires the data source, cache, and result printing from the
// command flags. Each completed search sends once on the done channel.
func buildEngine(c *cli.Context) (*session.Session, chan searchOutcome, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Resolve the data source
	var data any
	switch {
	case c.String("url") != "":
		remote, err := source.Remote(c.String("url"))
		if err != nil {
			return nil, nil, nil, err
		}
		data = remote
	case c.String("data") != "":
		file, err := source.NewFile(c.String("data"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load data file: %w", err)
		}
		closers = append(closers, func() { file.Close() })
		data = file
	default:
		cleanup()
		return nil, nil, nil, fmt.Errorf("either --data or --url is required")
	}

	cfg := session.DefaultConfig()
	cfg.Max = c.Int("max")
	cfg.Live = !c.Bool("load-once")

	done := make(chan searchOutcome, 4)
	opts := []searchit.Option{
		searchit.WithConfig(cfg),
		searchit.WithMonitor(&session.Funcs{
			OnResults: func(records []core.Record, query string) {
				for i, record := range records {
					if record.Value != "" && record.Value != record.Title {
						fmt.Printf("%d: %s (%s)\n", i+1, record.Title, record.Value)
						continue
					}
					fmt.Printf("%d: %s\n", i+1, record.Title)
				}
				report(done, searchOutcome{query: query})
			},
			OnNoResults: func(query, message string) {
				fmt.Println(message)
				report(done, searchOutcome{query: query})
			},
			OnSearchFailed: func(query, _ string, err error) {
				report(done, searchOutcome{query: query, err: err})
			},
		}),
	}

	// Optional persistent cache
	if cachePath := c.String("cache"); cachePath != "" {
		store, err := cache.OpenStore(cachePath, false)
		if err != nil {
			cleanup()
			return nil, nil, nil, fmt.Errorf("failed to open cache: %w", err)
		}
		closers = append(closers, func() { store.Close() })
		opts = append(opts, searchit.WithStore(store, c.String("url")))
	}

	engine, err := searchit.New(data, opts...)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	closers = append(closers, engine.Release)

	return engine, done, cleanup, nil
}

// report never blocks the search cycle; if nobody is waiting anymore the
// outcome is dropped.
func report(done chan searchOutcome, out searchOutcome) {
	select {
	case done <- out:
	default:
	}
}

// waitForSearch waits for the outcome of the search for query, discarding
// outcomes left over from searches that timed out earlier.
func waitForSearch(done chan searchOutcome, query string, timeout time.Duration) error {
	deadline := time.After(timeout)
	for {
		select {
		case out := <-done:
			if out.query != query {
				continue
			}
			return out.err
		case <-deadline:
			return fmt.Errorf("search timed out after %s", timeout)
		}
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
