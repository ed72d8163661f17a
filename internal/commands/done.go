package commands

import (
	"context"
	"flag"
	"io"

	"todobox/internal/config"
	"todobox/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd toggles a pending task to completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a pending task completed" }
func (c *DoneCmd) Usage() string     { return "todobox done <id>" }
func (c *DoneCmd) NeedsPage() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskAction(cfg.Quiet, args, svc.CompleteTask, out, errOut)
}
