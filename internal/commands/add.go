package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todobox/internal/config"
	"todobox/internal/exitcode"
	"todobox/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd submits the new-task form.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a pending task" }
func (c *AddCmd) Usage() string     { return "todobox add <task...>" }
func (c *AddCmd) NeedsPage() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Blank text is ignored without complaint, like an empty form submit.
	task, added, err := svc.AddTask(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.BackendError
	}
	if !added {
		cfg.Logger().Debug("add: blank task ignored")
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %d\n", task.ID)
	}
	return exitcode.Success
}
