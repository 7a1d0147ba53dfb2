package passes

import (
	"context"
	"flag"
	"fmt"

	wusul "go.wusul.io/sdk"
	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

// Action is a change of state applied to a single access pass.
type Action string

const (
	ActionSuspend Action = "suspend"
	ActionResume  Action = "resume"
	ActionUnlink  Action = "unlink"
	ActionDelete  Action = "delete"
)

var actionSynopses = map[Action]string{
	ActionSuspend: "Temporarily disable an access pass",
	ActionResume:  "Re-enable a suspended access pass",
	ActionUnlink:  "Unlink an access pass from its device",
	ActionDelete:  "Delete an access pass",
}

type ActionCommand struct {
	*base.Command

	Action Action
	client base.ClientFlags
}

func (c *ActionCommand) Synopsis() string {
	return actionSynopses[c.Action]
}

func (c *ActionCommand) Help() string {
	return fmt.Sprintf(`Usage: wusul passes %s [options] ACCESS_PASS_ID

  %s.`, c.Action, actionSynopses[c.Action]) +
		c.Flags().Help()
}

func (c *ActionCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(string(c.Action), flag.ContinueOnError))
	c.client.Register(f)
	return f
}

func (c *ActionCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one argument, the access pass id")
		return 1
	}
	id := flags.Arg(0)

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	resp, err := c.apply(ctx, sdk, id)
	if err != nil {
		return c.Fail(fmt.Sprintf("error applying %s: %%v", c.Action), err)
	}
	return c.Output(resp)
}

func (c *ActionCommand) apply(ctx context.Context, sdk *wusul.SDK, id string) (*types.APIResponse, error) {
	switch c.Action {
	case ActionSuspend:
		return sdk.AccessPasses.Suspend(ctx, id)
	case ActionResume:
		return sdk.AccessPasses.Resume(ctx, id)
	case ActionUnlink:
		return sdk.AccessPasses.Unlink(ctx, id)
	case ActionDelete:
		return sdk.AccessPasses.Delete(ctx, id)
	}
	return nil, fmt.Errorf("unknown action %q", c.Action)
}
