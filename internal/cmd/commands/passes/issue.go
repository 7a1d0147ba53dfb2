package passes

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type IssueCommand struct {
	*base.Command

	client         base.ClientFlags
	params         types.IssueAccessPassParams
	flagStart      string
	flagExpiration string
	flagMetadata   base.StringMapValue
}

func (c *IssueCommand) Synopsis() string {
	return "Issue a new access pass"
}

func (c *IssueCommand) Help() string {
	return `Usage: wusul passes issue [options]

  This command issues a new access pass from a card template and prints it.
  Dates may be given in any common format.` +
		c.Flags().Help()
}

func (c *IssueCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("issue", flag.ContinueOnError))
	c.client.Register(f)

	p := &c.params
	f.StringVar(&p.CardTemplateID, "template", "", "(Required) Card template to issue the pass from.")
	f.StringVar(&p.FullName, "name", "", "(Required) Full name of the pass holder.")
	f.StringVar(&c.flagStart, "start", "", "(Required) Date the pass becomes valid.")
	f.StringVar(&c.flagExpiration, "expiration", "", "(Required) Date the pass expires.")
	f.StringVar(&p.EmployeeID, "employee-id", "", "Employee id of the pass holder.")
	f.StringVar(&p.Email, "email", "", "Email address of the pass holder.")
	f.StringVar(&p.PhoneNumber, "phone", "", "Phone number of the pass holder.")
	f.StringVar(&p.TagID, "tag-id", "", "NFC tag id, 14 hex characters.")
	f.StringVar(&p.SiteCode, "site-code", "", "Facility site code, 0-255.")
	f.StringVar(&p.CardNumber, "card-number", "", "Card number, 0-65535.")
	f.Func("classification", "Employment classification: full_time, contractor, part_time or temporary.", func(s string) error {
		p.Classification = types.Classification(s)
		return nil
	})
	if c.flagMetadata == nil {
		c.flagMetadata = base.StringMapValue{}
	}
	f.Var(c.flagMetadata, "metadata", "Metadata as key=value. May be repeated.")

	return f
}

func (c *IssueCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

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

	pass, err := sdk.AccessPasses.Issue(ctx, &c.params)
	if err != nil {
		return c.Fail("error issuing access pass: %v", err)
	}
	c.Log.Info().Str("access_pass_id", pass.ID).Msg("issued access pass")
	return c.Output(pass)
}
