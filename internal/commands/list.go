package commands

import (
	"context"
	"flag"
	"io"

	"todobox/internal/config"
	"todobox/internal/exitcode"
	"todobox/internal/render"
	"todobox/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd renders the page: the banner, then pending and completed tasks.
// Handles both `todobox` (no args) and `todobox list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Show the banner and both task lists" }
func (c *ListCmd) Usage() string     { return "todobox list" }
func (c *ListCmd) NeedsPage() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	render.Page(out, svc)
	return exitcode.Success
}
