package todo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"todobox/internal/storage"
)

// Storage keys for the two sequences.
const (
	PendingKey   = "pendingTasks"
	CompletedKey = "completedTasks"
)

// List owns the pending and completed sequences. Every mutation is written
// through to storage before the method returns.
type List struct {
	store     storage.Store
	log       logrus.FieldLogger
	pending   []Task
	completed []Task
	nextID    int
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger for fail-soft events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(list *List) { list.log = l }
}

// New mounts a list over store. Missing or malformed sequences load as empty.
// Entries with an id below 1, or an id already seen earlier (pending is read
// first), are dropped so every id appears at most once. The id counter
// resumes after the highest id kept in either sequence.
func New(store storage.Store, opts ...Option) *List {
	l := &List{
		store: store,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	seen := make(map[int]bool)
	l.pending = l.keepValid(PendingKey, l.load(PendingKey), seen)
	l.completed = l.keepValid(CompletedKey, l.load(CompletedKey), seen)

	maxID := 0
	for _, seq := range [][]Task{l.pending, l.completed} {
		for _, t := range seq {
			if t.ID > maxID {
				maxID = t.ID
			}
		}
	}
	l.nextID = maxID + 1

	l.log.WithFields(logrus.Fields{
		"pending":   len(l.pending),
		"completed": len(l.completed),
		"next_id":   l.nextID,
	}).Debug("todo: mounted")
	return l
}

func (l *List) load(key string) []Task {
	raw, ok, err := l.store.Get(key)
	if err != nil {
		l.log.WithError(err).WithField("key", key).Warn("todo: read failed, starting empty")
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		l.log.WithError(err).WithField("key", key).Debug("todo: malformed data, starting empty")
		return nil
	}
	return tasks
}

// keepValid filters tasks loaded from key, recording kept ids in seen.
func (l *List) keepValid(key string, tasks []Task, seen map[int]bool) []Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID < 1 || seen[t.ID] {
			l.log.WithFields(logrus.Fields{"key": key, "id": t.ID}).Debug("todo: dropped invalid or duplicate id")
			continue
		}
		seen[t.ID] = true
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// Pending returns a copy of the pending tasks, newest first.
func (l *List) Pending() []Task {
	return append([]Task(nil), l.pending...)
}

// Completed returns a copy of the completed tasks in completion order.
func (l *List) Completed() []Task {
	return append([]Task(nil), l.completed...)
}

// NextID returns the id the next added task will receive.
func (l *List) NextID() int {
	return l.nextID
}

// Add creates a task from text and puts it at the front of the pending list.
// Text is trimmed; blank text is ignored and reports added == false.
func (l *List) Add(text string) (task Task, added bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false, nil
	}

	task = Task{ID: l.nextID, Task: text}
	l.nextID++
	l.pending = append([]Task{task}, l.pending...)

	if err := l.save(PendingKey, l.pending); err != nil {
		return task, true, err
	}
	l.log.WithField("id", task.ID).Debug("todo: added")
	return task, true, nil
}

// Complete moves task id from pending to the end of completed.
// Unknown ids are ignored and report moved == false.
func (l *List) Complete(id int) (moved bool, err error) {
	i := indexOf(l.pending, id)
	if i < 0 {
		return false, nil
	}
	task := l.pending[i]
	l.pending = remove(l.pending, i)
	l.completed = append(l.completed, task)

	if err := l.saveBoth(); err != nil {
		return true, err
	}
	l.log.WithField("id", id).Debug("todo: completed")
	return true, nil
}

// Revert moves task id from completed to the end of pending.
// Unknown ids are ignored and report moved == false.
func (l *List) Revert(id int) (moved bool, err error) {
	i := indexOf(l.completed, id)
	if i < 0 {
		return false, nil
	}
	task := l.completed[i]
	l.completed = remove(l.completed, i)
	l.pending = append(l.pending, task)

	if err := l.saveBoth(); err != nil {
		return true, err
	}
	l.log.WithField("id", id).Debug("todo: reverted")
	return true, nil
}

// Delete removes task id from completed. Pending tasks cannot be deleted;
// for them, as for unknown ids, Delete reports removed == false.
func (l *List) Delete(id int) (removed bool, err error) {
	i := indexOf(l.completed, id)
	if i < 0 {
		return false, nil
	}
	l.completed = remove(l.completed, i)

	if err := l.save(CompletedKey, l.completed); err != nil {
		return true, err
	}
	l.log.WithField("id", id).Debug("todo: deleted")
	return true, nil
}

func (l *List) saveBoth() error {
	if err := l.save(PendingKey, l.pending); err != nil {
		return err
	}
	return l.save(CompletedKey, l.completed)
}

func (l *List) save(key string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
