package commands

import (
	"errors"
	"fmt"
	"io"

	"todobox/internal/exitcode"
	"todobox/internal/render"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the single task id argument of done, revert and rm.
// A bare handle such as "delete-3" is accepted too, so ids can be copied
// straight from the rendered page.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments: %d", len(args))
	}
	if a, err := render.ParseHandle(args[0]); err == nil && a.Kind != render.Accept {
		return a.ID, nil
	}
	return render.ParseID(args[0])
}

// runTaskAction is the shared body of the id-driven commands. Unknown ids
// are silent no-ops; only storage failures are errors.
func runTaskAction(quiet bool, args []string, action func(id int) (bool, error), out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, err := action(id); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.BackendError
	}

	if !quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
