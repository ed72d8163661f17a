package commands

import (
	"context"
	"flag"
	"io"

	"todobox/internal/config"
	"todobox/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd deletes a completed task. Pending tasks are never deleted.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a completed task" }
func (c *RmCmd) Usage() string     { return "todobox rm <id>" }
func (c *RmCmd) NeedsPage() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskAction(cfg.Quiet, args, svc.DeleteTask, out, errOut)
}
