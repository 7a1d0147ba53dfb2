package health

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
)

type Command struct {
	*base.Command

	client base.ClientFlags
}

func (c *Command) Synopsis() string {
	return "Check the health of the Wusul API"
}

func (c *Command) Help() string {
	return `Usage: wusul health [options]

  This command calls the API health endpoint and prints the result.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("health", flag.ContinueOnError))
	c.client.Register(f)
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	health, err := sdk.Health(ctx)
	if err != nil {
		return c.Fail("error checking health: %v", err)
	}
	return c.Output(health)
}
