package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todobox/internal/config"
	"todobox/internal/exitcode"
	"todobox/internal/service"
)

// MirrorFactory builds the remote mirror used by push. Set by main; tests
// replace it with a fake.
var MirrorFactory func(ctx context.Context, cfg *config.Config) (service.Mirror, error)

func init() {
	Register(&PushCmd{})
}

// PushCmd mirrors the local task lists to Google Tasks.
type PushCmd struct {
	listName string
}

// SetListName sets the list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return []string{"sync"} }
func (c *PushCmd) Synopsis() string  { return "Mirror tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todobox push [--list <list-name>]" }
func (c *PushCmd) NeedsPage() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	listName := strings.TrimSpace(c.listName)
	if listName == "" {
		listName = cfg.Push.List
	}
	if listName == "" {
		listName = config.DefaultPushList
	}

	if MirrorFactory == nil {
		fmt.Fprintln(errOut, "error: push is not configured")
		return exitcode.AuthError
	}
	mirror, err := MirrorFactory(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}

	res, err := mirror.Push(ctx, listName, svc.Pending(), svc.Completed())
	if err != nil {
		if errors.Is(err, service.ErrAuth) {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok (created %d, updated %d, deleted %d)\n", res.Created, res.Updated, res.Deleted)
	}
	return exitcode.Success
}
