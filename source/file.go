package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/poiesic/searchit/core"
)

// FileOption configures a File source.
type FileOption func(*File)

// WithFileLogger sets a custom logger.
// Default is slog.Default().
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
	}
}

// File is a List backed by a JSON array file on disk. The file is loaded at
// construction and reloaded whenever it changes, so long-running sessions
// always search the current dataset.
//
// A reload that fails (unreadable file, bad shape) keeps the previous
// records and logs a warning.
type File struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}

	mu      sync.RWMutex
	records []core.Record
}

// NewFile creates a file source for path. The initial load must succeed;
// a missing or malformed file is a configuration error.
func NewFile(path string, opts ...FileOption) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f := &File{
		path:   path,
		logger: slog.Default(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	records, err := loadRecordFile(path)
	if err != nil {
		return nil, err
	}
	f.records = records

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory rather than the file: editors often replace files
	// by rename, which drops a direct watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	f.watcher = watcher

	go f.watchLoop()

	return f, nil
}

// Records returns a snapshot of the current dataset.
func (f *File) Records(string) ([]core.Record, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]core.Record(nil), f.records...), nil
}

// Close stops watching the file. The last loaded records remain available.
func (f *File) Close() error {
	close(f.done)
	return f.watcher.Close()
}

func (f *File) watchLoop() {
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(f.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			f.reload()
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warn("file watcher error", "path", f.path, "err", err)
		}
	}
}

func (f *File) reload() {
	records, err := loadRecordFile(f.path)
	if err != nil {
		f.logger.Warn("keeping previous records after failed reload", "path", f.path, "err", err)
		return
	}

	f.mu.Lock()
	f.records = records
	f.mu.Unlock()

	f.logger.Debug("reloaded record file", "path", f.path, "records", len(records))
}

func loadRecordFile(path string) ([]core.Record, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return core.CoerceItems(items)
}
