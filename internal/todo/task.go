// Package todo implements the pending/completed task list and its
// synchronisation with storage.
package todo

// Task is a single to-do item. The JSON form is the persisted format.
type Task struct {
	ID   int    `json:"id"`
	Task string `json:"task"`
}

// indexOf returns the position of id in tasks, or -1.
func indexOf(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// remove returns tasks without the element at i, leaving the input intact.
func remove(tasks []Task, i int) []Task {
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}
