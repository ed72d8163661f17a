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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todobox help" }
func (c *HelpCmd) NeedsPage() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText(DefaultRegistry))
	return exitcode.Success
}

// HelpText builds the usage text from the commands in r.
func HelpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "  %-40s %s\n", "todobox", "Show the banner and both task lists")
	for _, cmd := range r.All() {
		fmt.Fprintf(&b, "  %-40s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	b.WriteString(commonFlagsText)
	return b.String()
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Handles:
  accept, complete-<id>, revert-<id>, delete-<id>
`
