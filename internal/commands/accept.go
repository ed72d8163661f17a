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
	Register(&AcceptCmd{})
	Register(&BannerCmd{})
}

// AcceptCmd clicks the banner's accept control.
type AcceptCmd struct{}

func (c *AcceptCmd) Name() string      { return "accept" }
func (c *AcceptCmd) Aliases() []string { return nil }
func (c *AcceptCmd) Synopsis() string  { return "Accept cookies and hide the banner" }
func (c *AcceptCmd) Usage() string     { return "todobox accept" }
func (c *AcceptCmd) NeedsPage() bool   { return true }

func (c *AcceptCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AcceptCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := svc.AcceptConsent(); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.BackendError
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// BannerCmd renders only the consent banner.
type BannerCmd struct{}

func (c *BannerCmd) Name() string      { return "banner" }
func (c *BannerCmd) Aliases() []string { return nil }
func (c *BannerCmd) Synopsis() string  { return "Show the cookie banner if it has not been accepted" }
func (c *BannerCmd) Usage() string     { return "todobox banner" }
func (c *BannerCmd) NeedsPage() bool   { return true }

func (c *BannerCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BannerCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	render.Banner(out, svc.ConsentVisible(), svc.ConsentMessage())
	return exitcode.Success
}
