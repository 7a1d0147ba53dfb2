package templates

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type UpdateCommand struct {
	*base.Command

	client   base.ClientFlags
	flagFile string
	flagName string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a card template"
}

func (c *UpdateCommand) Help() string {
	return `Usage: wusul templates update [options] CARD_TEMPLATE_ID

  This command changes a card template. Changes are read from a YAML or
  JSON document with the same fields as for create; the platform, use case
  and protocol of a template cannot be changed.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagFile, "file", "", "Path to a document with the changes.")
	f.StringVar(&c.flagName, "name", "", "New name of the template.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one argument, the card template id")
		return 1
	}

	var p types.UpdateCardTemplateParams
	if c.flagFile != "" {
		if err := c.DecodeFile(c.flagFile, &p); err != nil {
			return c.Fail("error reading changes: %v", err)
		}
	}
	if c.flagName != "" {
		p.Name = c.flagName
	}
	p.CardTemplateID = flags.Arg(0)

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	tmpl, err := sdk.Console.UpdateTemplate(ctx, &p)
	if err != nil {
		return c.Fail("error updating card template: %v", err)
	}
	return c.Output(tmpl)
}
