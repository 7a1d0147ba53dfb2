package passes

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type UpdateCommand struct {
	*base.Command

	client         base.ClientFlags
	params         types.UpdateAccessPassParams
	flagStart      string
	flagExpiration string
	flagMetadata   base.StringMapValue
}

func (c *UpdateCommand) Synopsis() string {
	return "Update an access pass"
}

func (c *UpdateCommand) Help() string {
	return `Usage: wusul passes update [options] ACCESS_PASS_ID

  This command changes the details of an access pass. Only the given
  fields are changed.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("update", flag.ContinueOnError))
	c.client.Register(f)

	p := &c.params
	f.StringVar(&p.FullName, "name", "", "Full name of the pass holder.")
	f.StringVar(&p.Email, "email", "", "Email address of the pass holder.")
	f.StringVar(&p.PhoneNumber, "phone", "", "Phone number of the pass holder.")
	f.StringVar(&c.flagStart, "start", "", "Date the pass becomes valid.")
	f.StringVar(&c.flagExpiration, "expiration", "", "Date the pass expires.")
	f.Func("classification", "Employment classification: full_time, contractor, part_time or temporary.", func(s string) error {
		p.Classification = types.Classification(s)
		return nil
	})
	if c.flagMetadata == nil {
		c.flagMetadata = base.StringMapValue{}
	}
	f.Var(c.flagMetadata, "metadata", "Metadata as key=value, replacing the existing metadata. May be repeated.")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one argument, the access pass id")
		return 1
	}
	c.params.AccessPassID = flags.Arg(0)

	var err error
	if c.params.StartDate, err = base.ParseDate(c.flagStart); err != nil {
		return c.Fail("error parsing -start: %v", err)
	}
	if c.params.ExpirationDate, err = base.ParseDate(c.flagExpiration); err != nil {
		return c.Fail("error parsing -expiration: %v", err)
	}
	if len(c.flagMetadata) > 0 {
		c.params.Metadata = c.flagMetadata
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	pass, err := sdk.AccessPasses.Update(ctx, &c.params)
	if err != nil {
		return c.Fail("error updating access pass: %v", err)
	}
	return c.Output(pass)
}
