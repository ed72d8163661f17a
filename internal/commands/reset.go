package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todobox/internal/config"
	"todobox/internal/exitcode"
	"todobox/internal/service"
)

func init() {
	Register(&ResetCmd{})
}

// ResetCmd clears all stored data for the origin, like clearing site data
// in a browser.
type ResetCmd struct{}

func (c *ResetCmd) Name() string      { return "reset" }
func (c *ResetCmd) Aliases() []string { return nil }
func (c *ResetCmd) Synopsis() string  { return "Clear stored consent and tasks" }
func (c *ResetCmd) Usage() string     { return "todobox reset" }
func (c *ResetCmd) NeedsPage() bool   { return true }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ResetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := svc.Reset(); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.BackendError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
