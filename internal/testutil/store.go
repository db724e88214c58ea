package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/thenoetrevino/turmas/internal/database"
)

// ErrInjected is the cause wrapped into every failure FailingStore produces
var ErrInjected = errors.New("injected failure")

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestStore creates an in-memory SQLite key-value store with the full schema
func SetupTestStore(t *testing.T) *database.KVStore {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return database.NewKVStore(db)
}

// FailingStore wraps a Store and fails selected operations on selected keys.
// Failures are wrapped in database.ErrStorageUnavailable like real ones.
type FailingStore struct {
	database.Store

	mu    sync.Mutex
	fails map[string]bool
	calls []string
}

// NewFailingStore wraps inner; nothing fails until FailOn is called.
func NewFailingStore(inner database.Store) *FailingStore {
	return &FailingStore{
		Store: inner,
		fails: make(map[string]bool),
	}
}

// FailOn makes op ("get", "set", "remove", "list") fail for key.
// For "list" the key is the prefix.
func (s *FailingStore) FailOn(op, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[op+" "+key] = true
}

// Reset clears all injected failures
func (s *FailingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails = make(map[string]bool)
}

// Calls returns every operation seen, as "op key", in order
func (s *FailingStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *FailingStore) check(op, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, op+" "+key)
	if s.fails[op+" "+key] {
		return fmt.Errorf("%w: %s %q: %w", database.ErrStorageUnavailable, op, key, ErrInjected)
	}
	return nil
}

func (s *FailingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check("get", key); err != nil {
		return "", false, err
	}
	return s.Store.Get(ctx, key)
}

func (s *FailingStore) Set(ctx context.Context, key, value string) error {
	if err := s.check("set", key); err != nil {
		return err
	}
	return s.Store.Set(ctx, key, value)
}

func (s *FailingStore) Remove(ctx context.Context, key string) error {
	if err := s.check("remove", key); err != nil {
		return err
	}
	return s.Store.Remove(ctx, key)
}

func (s *FailingStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if err := s.check("list", prefix); err != nil {
		return nil, err
	}
	return s.Store.ListKeys(ctx, prefix)
}
