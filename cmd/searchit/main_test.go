package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp() *cli.App {
	return &cli.App{
		Name: "searchit",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}},
					&cli.IntFlag{Name: "max"},
					&cli.BoolFlag{Name: "load-once"},
					&cli.StringFlag{Name: "cache"},
					&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second},
				},
			},
		},
	}
}

func TestSearchCommand(t *testing.T) {
	t.Run("requires a data source", func(t *testing.T) {
		err := testApp().Run([]string{"searchit", "search", "band"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--data or --url")
	})

	t.Run("searches a data file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`["Band", "Sandbox", {"title": "Bandana"}]`), 0o644))

		err := testApp().Run([]string{"searchit", "search", "--data", path, "band"})
		require.NoError(t, err)
	})

	t.Run("missing data file fails", func(t *testing.T) {
		err := testApp().Run([]string{"searchit", "search", "--data", "/does/not/exist.json", "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load data file")
	})
}

func TestWaitForSearch(t *testing.T) {
	t.Run("returns the published error", func(t *testing.T) {
		done := make(chan searchOutcome, 4)
		done <- searchOutcome{query: "band", err: errors.New("boom")}
		err := waitForSearch(done, "band", time.Second)
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("nil on success", func(t *testing.T) {
		done := make(chan searchOutcome, 4)
		done <- searchOutcome{query: "band"}
		assert.NoError(t, waitForSearch(done, "band", time.Second))
	})

	t.Run("times out", func(t *testing.T) {
		done := make(chan searchOutcome, 4)
		err := waitForSearch(done, "band", 10*time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out")
	})

	t.Run("discards an outcome from a timed-out search", func(t *testing.T) {
		done := make(chan searchOutcome, 4)
		done <- searchOutcome{query: "old", err: errors.New("stale failure")}
		done <- searchOutcome{query: "new"}
		assert.NoError(t, waitForSearch(done, "new", time.Second))
	})

	t.Run("report never blocks", func(t *testing.T) {
		done := make(chan searchOutcome, 1)
		report(done, searchOutcome{query: "a"})
		report(done, searchOutcome{query: "b"}) // full channel, dropped
		out := <-done
		assert.Equal(t, "a", out.query)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func(action cli.ActionFunc) *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: action,
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp(func(c *cli.Context) error { return nil }).
					Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp(func(c *cli.Context) error { return nil }).
					Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp(func(c *cli.Context) error { return nil }).
			Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp(func(c *cli.Context) error {
			assert.Equal(t, "debug", c.String("log-level"))
			return nil
		}).Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}
