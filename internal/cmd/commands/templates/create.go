package templates

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type CreateCommand struct {
	*base.Command

	client   base.ClientFlags
	flagFile string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a card template"
}

func (c *CreateCommand) Help() string {
	return `Usage: wusul templates create -file=<path> [options]

  This command creates a card template from a YAML or JSON document:

    name: Employee Badge
    platform: apple
    useCase: employee_badge
    protocol: desfire
    design:
      backgroundColor: "#FFFFFF"
      logoUrl: https://example.com/logo.png
    supportInfo:
      email: help@example.com` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to the template document.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	var p types.CreateCardTemplateParams
	if err := c.DecodeFile(c.flagFile, &p); err != nil {
		return c.Fail("error reading template: %v", err)
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	tmpl, err := sdk.Console.CreateTemplate(ctx, &p)
	if err != nil {
		return c.Fail("error creating card template: %v", err)
	}
	c.Log.Info().Str("card_template_id", tmpl.ID).Msg("created card template")
	return c.Output(tmpl)
}
