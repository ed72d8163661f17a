package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todobox/internal/config"
	"todobox/internal/exitcode"
	"todobox/internal/render"
	"todobox/internal/service"
)

func init() {
	Register(&ClickCmd{})
}

// ClickCmd triggers a control by the handle shown on the rendered page.
type ClickCmd struct {
	show bool
}

// SetShow sets the show flag (for testing).
func (c *ClickCmd) SetShow(show bool) {
	c.show = show
}

func (c *ClickCmd) Name() string      { return "click" }
func (c *ClickCmd) Aliases() []string { return nil }
func (c *ClickCmd) Synopsis() string  { return "Trigger a control by handle" }
func (c *ClickCmd) Usage() string     { return "todobox click [--show] <handle>" }
func (c *ClickCmd) NeedsPage() bool   { return true }

func (c *ClickCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.show, "show", false, "")
}

func (c *ClickCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: handle required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %d\n", len(args))
		return exitcode.UserError
	}

	action, err := render.ParseHandle(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	changed, err := render.Apply(svc, action)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.BackendError
	}
	cfg.Logger().WithField("handle", action.String()).WithField("changed", changed).Debug("click: applied")

	if c.show {
		render.Page(out, svc)
		return exitcode.Success
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
