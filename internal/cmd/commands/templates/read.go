package templates

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
)

type ReadCommand struct {
	*base.Command

	client base.ClientFlags
}

func (c *ReadCommand) Synopsis() string {
	return "Show a card template"
}

func (c *ReadCommand) Help() string {
	return `Usage: wusul templates read [options] CARD_TEMPLATE_ID

  This command prints a card template.` +
		c.Flags().Help()
}

func (c *ReadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("read", flag.ContinueOnError))
	c.client.Register(f)
	return f
}

func (c *ReadCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one argument, the card template id")
		return 1
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	tmpl, err := sdk.Console.ReadTemplate(ctx, flags.Arg(0))
	if err != nil {
		return c.Fail("error reading card template: %v", err)
	}
	return c.Output(tmpl)
}
