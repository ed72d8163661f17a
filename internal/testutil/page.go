// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"todobox/internal/service"
	"todobox/internal/storage"
	"todobox/internal/todo"
)

// EmptyTaskLists is the seed a fresh profile starts with: both task keys
// present and holding empty arrays.
func EmptyTaskLists() map[string]string {
	return map[string]string{
		todo.PendingKey:   "[]",
		todo.CompletedKey: "[]",
	}
}

// QuietLogger returns a logger that discards everything.
func QuietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewPage mounts a page over an in-memory store seeded with seed.
// The store is returned so tests can inspect persisted values.
func NewPage(seed map[string]string) (*service.Page, *storage.Memory) {
	store := storage.NewMemory(seed)
	return service.NewPage(store, QuietLogger(), ""), store
}

// PushCall records one FakeMirror.Push invocation.
type PushCall struct {
	ListName  string
	Pending   []todo.Task
	Completed []todo.Task
}

// FakeMirror is an in-memory service.Mirror for testing.
type FakeMirror struct {
	mu    sync.Mutex
	Calls []PushCall

	// Result is returned by every Push.
	Result service.PushResult

	// PushErr is returned by Push when set.
	PushErr error
}

// Push implements service.Mirror.
func (f *FakeMirror) Push(ctx context.Context, listName string, pending, completed []todo.Task) (service.PushResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, PushCall{ListName: listName, Pending: pending, Completed: completed})
	if f.PushErr != nil {
		return service.PushResult{}, f.PushErr
	}
	return f.Result, nil
}
