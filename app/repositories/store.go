package repositories

import (
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the Badger database at path. An empty path opens an in-memory
// database, which is what the tests use.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(newBadgerLogger(log.Default())).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %v", path, err)
	}
	return db, nil
}

// badgerLogger forwards Badger warnings and errors to the process logger and
// drops its info and debug chatter.
type badgerLogger struct {
	l *log.Logger
}

func newBadgerLogger(l *log.Logger) *badgerLogger {
	return &badgerLogger{l: l}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Printf("badger ERROR: "+format, args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Printf("badger WARNING: "+format, args...)
}

func (b *badgerLogger) Infof(string, ...interface{}) {}

func (b *badgerLogger) Debugf(string, ...interface{}) {}
