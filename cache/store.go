package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/searchit/core"
)

// Store is a persistent record-set cache backed by BadgerDB.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a BadgerDB cache at the specified path.
// Creates the directory if it doesn't exist. With inMemory set, path is
// ignored and nothing is persisted (useful in tests).
func OpenStore(path string, inMemory bool, opts ...StoreOption) (*Store, error) {
	s := &Store{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	var badgerOpts badger.Options
	if inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(path, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(path)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", path)
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	badgerOpts.Logger = &badgerLoggerAdapter{logger: s.logger}
	badgerOpts.Compression = options.None

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	s.db = db

	return s, nil
}

// Get retrieves a cached record set. The second return value reports
// whether the entry exists.
func (s *Store) Get(id core.ID) ([]core.Record, bool, error) {
	var records []core.Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeRecordSetKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			records, err = UnmarshalRecords(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return records, true, nil
}

// Put stores a record set under id, replacing any previous entry.
func (s *Store) Put(id core.ID, records []core.Record) error {
	payload := MarshalRecords(records)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeRecordSetKey(id), payload)
	})
}

// Delete removes a cached record set. Deleting a missing entry is not an
// error.
func (s *Store) Delete(id core.ID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(makeRecordSetKey(id))
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
