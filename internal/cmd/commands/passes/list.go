package passes

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type ListCommand struct {
	*base.Command

	client     base.ClientFlags
	flagTmpl   string
	flagEmp    string
	flagState  string
	flagLimit  base.Uint32Value
	flagOffset base.Uint32Value
}

func (c *ListCommand) Synopsis() string {
	return "List access passes"
}

func (c *ListCommand) Help() string {
	return `Usage: wusul passes list [options]

  This command lists the access passes matching the given filters.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagTmpl, "template", "", "Only list passes issued from this card template.")
	f.StringVar(&c.flagEmp, "employee-id", "", "Only list passes held by this employee.")
	f.StringVar(&c.flagState, "state", "", "Only list passes in this state: active, suspended, unlinked, deleted or expired.")
	f.Var(&c.flagLimit, "limit", "Maximum number of passes to list..")
	f.Var(&c.flagOffset, "offset", "Number of passes to skip.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	passes, err := sdk.AccessPasses.List(ctx, &types.ListAccessPassesParams{
		CardTemplateID: c.flagTmpl,
		EmployeeID:     c.flagEmp,
		State:          types.AccessPassState(c.flagState),
		Limit:          c.flagLimit.Get(),
		Offset:         c.flagOffset.Get(),
	})
	if err != nil {
		return c.Fail("error listing access passes: %v", err)
	}
	return c.Output(passes)
}
