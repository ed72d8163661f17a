package todo_test

import (
	"errors"
	"reflect"
	"testing"

	"todobox/internal/storage"
	"todobox/internal/todo"
)

// seededStore mirrors a fresh browser profile where both keys hold "[]".
func seededStore() *storage.Memory {
	return storage.NewMemory(map[string]string{
		todo.PendingKey:   "[]",
		todo.CompletedKey: "[]",
	})
}

func mustAdd(t *testing.T, l *todo.List, text string) todo.Task {
	t.Helper()
	task, added, err := l.Add(text)
	if err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
	if !added {
		t.Fatalf("add %q: expected task to be added", text)
	}
	return task
}

func TestNew_EmptyStorage(t *testing.T) {
	for name, store := range map[string]*storage.Memory{
		"absent keys": storage.NewMemory(nil),
		"empty lists": seededStore(),
	} {
		l := todo.New(store)
		if len(l.Pending()) != 0 || len(l.Completed()) != 0 {
			t.Errorf("%s: expected empty lists", name)
		}
		if l.NextID() != 1 {
			t.Errorf("%s: expected next id 1, got %d", name, l.NextID())
		}
	}
}

func TestNew_MalformedStorage(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		todo.PendingKey:   "{not json",
		todo.CompletedKey: `{"id":1}`,
	})

	l := todo.New(store)

	if len(l.Pending()) != 0 || len(l.Completed()) != 0 {
		t.Error("expected malformed data to load as empty lists")
	}
	if l.NextID() != 1 {
		t.Errorf("expected next id 1, got %d", l.NextID())
	}
}

func TestAdd_FirstTask(t *testing.T) {
	store := seededStore()
	l := todo.New(store)

	task := mustAdd(t, l, "Test task")

	if task.ID != 1 || task.Task != "Test task" {
		t.Errorf("unexpected task %+v", task)
	}
	pending := l.Pending()
	if len(pending) != 1 || pending[0].Task != "Test task" {
		t.Errorf("expected items[0] to be the new task, got %+v", pending)
	}
	if v, _, _ := store.Get(todo.PendingKey); v != `[{"id":1,"task":"Test task"}]` {
		t.Errorf("unexpected persisted pending %q", v)
	}
}

func TestAdd_AssignsIncreasingIDsNewestFirst(t *testing.T) {
	l := todo.New(seededStore())

	mustAdd(t, l, "Test task")
	mustAdd(t, l, "Test task 2")

	pending := l.Pending()
	if pending[0].ID != 2 || pending[0].Task != "Test task 2" {
		t.Errorf("expected items[0] to have id 2, got %+v", pending[0])
	}
	if pending[1].ID != 1 {
		t.Errorf("expected items[1] to have id 1, got %+v", pending[1])
	}
}

func TestAdd_BlankTextIsNoop(t *testing.T) {
	store := storage.NewMemory(nil)
	l := todo.New(store)
	mustAdd(t, l, "keep")
	before := store.Snapshot()

	for _, text := range []string{"", " ", "\t\n", "   \r\n "} {
		task, added, err := l.Add(text)
		if err != nil || added || task != (todo.Task{}) {
			t.Errorf("Add(%q) = %+v, %v, %v; want no-op", text, task, added, err)
		}
	}

	if len(l.Pending()) != 1 || len(l.Completed()) != 0 {
		t.Error("expected lists to be unchanged")
	}
	if l.NextID() != 2 {
		t.Errorf("expected blank adds not to consume ids, got next id %d", l.NextID())
	}
	if !reflect.DeepEqual(store.Snapshot(), before) {
		t.Error("expected no storage writes for blank text")
	}
}

func TestAdd_TrimsText(t *testing.T) {
	l := todo.New(storage.NewMemory(nil))
	task := mustAdd(t, l, "  Buy milk \n")
	if task.Task != "Buy milk" {
		t.Errorf("expected trimmed text, got %q", task.Task)
	}
}

func TestComplete_MovesTask(t *testing.T) {
	store := seededStore()
	l := todo.New(store)
	mustAdd(t, l, "Test task")

	moved, err := l.Complete(1)
	if err != nil || !moved {
		t.Fatalf("Complete(1) = %v, %v", moved, err)
	}

	if len(l.Pending()) != 0 {
		t.Errorf("expected no pending tasks, got %d", len(l.Pending()))
	}
	if len(l.Completed()) != 1 {
		t.Errorf("expected one completed task, got %d", len(l.Completed()))
	}
	if v, _, _ := store.Get(todo.PendingKey); v != "[]" {
		t.Errorf("expected persisted pending to be empty, got %q", v)
	}
	if v, _, _ := store.Get(todo.CompletedKey); v != `[{"id":1,"task":"Test task"}]` {
		t.Errorf("unexpected persisted completed %q", v)
	}
}

func TestComplete_UnknownIDIsNoop(t *testing.T) {
	store := seededStore()
	l := todo.New(store)
	mustAdd(t, l, "a")
	mustAdd(t, l, "b")
	if _, err := l.Complete(1); err != nil {
		t.Fatal(err)
	}
	before := store.Snapshot()

	// 1 is already completed, 99 never existed.
	for _, id := range []int{1, 99, 0, -1} {
		moved, err := l.Complete(id)
		if err != nil || moved {
			t.Errorf("Complete(%d) = %v, %v; want no-op", id, moved, err)
		}
	}
	if !reflect.DeepEqual(store.Snapshot(), before) {
		t.Error("expected no storage writes")
	}
}

func TestRevert_RoundTrip(t *testing.T) {
	l := todo.New(seededStore())
	original := mustAdd(t, l, "Test task")
	mustAdd(t, l, "Other")
	completedBefore := len(l.Completed())

	if _, err := l.Complete(original.ID); err != nil {
		t.Fatal(err)
	}
	moved, err := l.Revert(original.ID)
	if err != nil || !moved {
		t.Fatalf("Revert = %v, %v", moved, err)
	}

	if len(l.Completed()) != completedBefore {
		t.Errorf("expected completed length %d, got %d", completedBefore, len(l.Completed()))
	}
	pending := l.Pending()
	if len(pending) != 2 {
		t.Fatalf("expected two pending tasks, got %d", len(pending))
	}
	if last := pending[len(pending)-1]; last != original {
		t.Errorf("expected reverted task %+v at the end of pending, got %+v", original, last)
	}
}

func TestRevert_UnknownIDIsNoop(t *testing.T) {
	l := todo.New(seededStore())
	mustAdd(t, l, "still pending")

	moved, err := l.Revert(1)
	if err != nil || moved {
		t.Errorf("Revert on a pending task = %v, %v; want no-op", moved, err)
	}
	if len(l.Pending()) != 1 {
		t.Error("expected pending to be unchanged")
	}
}

func TestDelete_RemovesOnlyCompletedTask(t *testing.T) {
	store := seededStore()
	l := todo.New(store)
	mustAdd(t, l, "one")
	mustAdd(t, l, "two")
	mustAdd(t, l, "three")
	if _, err := l.Complete(1); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Complete(2); err != nil {
		t.Fatal(err)
	}
	pendingBefore := l.Pending()

	removed, err := l.Delete(1)
	if err != nil || !removed {
		t.Fatalf("Delete(1) = %v, %v", removed, err)
	}

	if got := l.Completed(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected only task 2 to remain completed, got %+v", got)
	}
	if !reflect.DeepEqual(l.Pending(), pendingBefore) {
		t.Error("delete must not affect pending")
	}
	if v, _, _ := store.Get(todo.CompletedKey); v != `[{"id":2,"task":"two"}]` {
		t.Errorf("unexpected persisted completed %q", v)
	}
}

func TestDelete_PendingTaskIsNoop(t *testing.T) {
	l := todo.New(seededStore())
	mustAdd(t, l, "pending")

	removed, err := l.Delete(1)
	if err != nil || removed {
		t.Errorf("Delete on pending = %v, %v; want no-op", removed, err)
	}
	if len(l.Pending()) != 1 {
		t.Error("expected pending task to survive")
	}
}

func TestIDsAreNeverShared(t *testing.T) {
	l := todo.New(seededStore())
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		mustAdd(t, l, text)
	}
	l.Complete(2)
	l.Complete(4)
	l.Delete(4)
	l.Revert(2)
	l.Complete(5)
	mustAdd(t, l, "f")

	seen := map[int]bool{}
	for _, task := range append(l.Pending(), l.Completed()...) {
		if seen[task.ID] {
			t.Fatalf("id %d appears twice", task.ID)
		}
		seen[task.ID] = true
	}
	if l.NextID() != 7 {
		t.Errorf("expected next id 7, got %d", l.NextID())
	}
}

func TestRemount_RestoresStateAndCounter(t *testing.T) {
	store := seededStore()
	l := todo.New(store)
	mustAdd(t, l, "one")
	mustAdd(t, l, "two")
	mustAdd(t, l, "three")
	l.Complete(2)

	again := todo.New(store)

	if !reflect.DeepEqual(again.Pending(), l.Pending()) {
		t.Errorf("pending order lost: %+v vs %+v", again.Pending(), l.Pending())
	}
	if !reflect.DeepEqual(again.Completed(), l.Completed()) {
		t.Errorf("completed order lost: %+v vs %+v", again.Completed(), l.Completed())
	}
	if again.NextID() != 4 {
		t.Errorf("expected next id 4, got %d", again.NextID())
	}
}

func TestRemount_CounterUsesMaxAcrossBothLists(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		todo.PendingKey:   `[{"id":2,"task":"b"}]`,
		todo.CompletedKey: `[{"id":7,"task":"g"},{"id":3,"task":"c"}]`,
	})

	l := todo.New(store)
	task := mustAdd(t, l, "next")
	if task.ID != 8 {
		t.Errorf("expected id 8, got %d", task.ID)
	}
}

func TestNew_IDSharedAcrossListsKeepsPendingCopy(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		todo.PendingKey:   `[{"id":1,"task":"a"}]`,
		todo.CompletedKey: `[{"id":1,"task":"b"}]`,
	})

	l := todo.New(store)

	if got := l.Pending(); len(got) != 1 || got[0].Task != "a" {
		t.Errorf("expected pending [a], got %+v", got)
	}
	if got := l.Completed(); len(got) != 0 {
		t.Fatalf("expected duplicate id to be dropped from completed, got %+v", got)
	}

	if _, err := l.Complete(1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := l.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(l.Pending()) != 0 || len(l.Completed()) != 0 {
		t.Errorf("expected task 1 to be gone, got %+v / %+v", l.Pending(), l.Completed())
	}
}

func TestNew_DuplicateIDWithinListKeepsFirst(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		todo.PendingKey: `[{"id":2,"task":"first"},{"id":2,"task":"second"},{"id":1,"task":"one"}]`,
	})

	l := todo.New(store)

	want := []todo.Task{{ID: 2, Task: "first"}, {ID: 1, Task: "one"}}
	if got := l.Pending(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if l.NextID() != 3 {
		t.Errorf("expected next id 3, got %d", l.NextID())
	}
}

func TestNew_NonPositiveIDsDropped(t *testing.T) {
	store := storage.NewMemory(map[string]string{
		todo.PendingKey:   `[{"id":0,"task":"zero"},{"id":4,"task":"ok"}]`,
		todo.CompletedKey: `[{"id":-3,"task":"negative"},{"task":"no id"}]`,
	})

	l := todo.New(store)

	if got := l.Pending(); len(got) != 1 || got[0].ID != 4 {
		t.Errorf("expected only task 4 pending, got %+v", got)
	}
	if got := l.Completed(); len(got) != 0 {
		t.Errorf("expected completed to be empty, got %+v", got)
	}
	if l.NextID() != 5 {
		t.Errorf("expected next id 5, got %d", l.NextID())
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	l := todo.New(seededStore())
	mustAdd(t, l, "original")

	p := l.Pending()
	p[0].Task = "mutated"

	if l.Pending()[0].Task != "original" {
		t.Error("caller mutation leaked into list state")
	}
}

type failingStore struct {
	*storage.Memory
}

func (failingStore) Set(string, string) error { return errors.New("quota exceeded") }

func TestStorageFailuresAreReturned(t *testing.T) {
	l := todo.New(failingStore{storage.NewMemory(nil)})

	task, added, err := l.Add("x")
	if err == nil {
		t.Fatal("expected write failure to be returned")
	}
	if !added || task.ID != 1 {
		t.Errorf("expected in-memory add to stand, got %+v added=%v", task, added)
	}
	if len(l.Pending()) != 1 {
		t.Error("expected in-memory state to keep the task")
	}
}
