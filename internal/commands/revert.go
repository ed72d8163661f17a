package commands

import (
	"context"
	"flag"
	"io"

	"todobox/internal/config"
	"todobox/internal/service"
)

func init() {
	Register(&RevertCmd{})
}

// RevertCmd moves a completed task back to pending.
type RevertCmd struct{}

func (c *RevertCmd) Name() string      { return "revert" }
func (c *RevertCmd) Aliases() []string { return []string{"undo"} }
func (c *RevertCmd) Synopsis() string  { return "Move a completed task back to pending" }
func (c *RevertCmd) Usage() string     { return "todobox revert <id>" }
func (c *RevertCmd) NeedsPage() bool   { return true }

func (c *RevertCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RevertCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskAction(cfg.Quiet, args, svc.RevertTask, out, errOut)
}
