// Package render prints the page and maps per-row handles back to actions.
package render

import (
	"fmt"
	"io"
	"strings"

	"todobox/internal/service"
	"todobox/internal/todo"
)

const (
	// Separator is the separator line around section headers.
	Separator = "------------"

	// AcceptControl is the label of the banner's accept control.
	AcceptControl = "[accept]"
)

// Banner prints the consent text and accept control when visible, and
// nothing otherwise.
func Banner(w io.Writer, visible bool, message string) {
	if !visible {
		return
	}
	fmt.Fprintf(w, "%s  %s\n", message, AcceptControl)
}

// Header prints a section header.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Separator)
}

// PendingRow prints a pending task with its completion toggle.
// Format: "  [ ] {handle}  {TASK}"
func PendingRow(w io.Writer, t todo.Task) {
	fmt.Fprintf(w, "  [ ] %s  %s\n", CompleteHandle(t.ID), normalizeText(t.Task))
}

// CompletedRow prints a completed task with its revert and delete controls.
// Format: "  [x] {TASK}  revert-{id}  delete-{id}"
func CompletedRow(w io.Writer, t todo.Task) {
	fmt.Fprintf(w, "  [x] %s  %s  %s\n", normalizeText(t.Task), RevertHandle(t.ID), DeleteHandle(t.ID))
}

// Page prints the banner followed by the pending and completed sections.
func Page(w io.Writer, svc service.Service) {
	Banner(w, svc.ConsentVisible(), svc.ConsentMessage())

	Header(w, "Pending")
	for _, t := range svc.Pending() {
		PendingRow(w, t)
	}

	Header(w, "Completed")
	for _, t := range svc.Completed() {
		CompletedRow(w, t)
	}
}

// normalizeText normalizes task text for display.
// - Newlines are replaced with spaces
// - Empty or whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
