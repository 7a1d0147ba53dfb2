package templates

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
)

type PublishCommand struct {
	*base.Command

	client base.ClientFlags
}

func (c *PublishCommand) Synopsis() string {
	return "Publish a card template"
}

func (c *PublishCommand) Help() string {
	return `Usage: wusul templates publish [options] CARD_TEMPLATE_ID

  This command publishes a card template so passes can be issued from it.` +
		c.Flags().Help()
}

func (c *PublishCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("publish", flag.ContinueOnError))
	c.client.Register(f)
	return f
}

func (c *PublishCommand) Run(args []string) int {
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

	resp, err := sdk.Console.PublishTemplate(ctx, flags.Arg(0))
	if err != nil {
		return c.Fail("error publishing card template: %v", err)
	}
	return c.Output(resp)
}
