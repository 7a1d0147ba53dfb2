package events

import (
	"flag"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/types"
)

type Command struct {
	*base.Command

	client     base.ClientFlags
	flagPass   string
	flagType   string
	flagStart  string
	flagEnd    string
	flagLimit  base.Uint32Value
	flagOffset base.Uint32Value
}

func (c *Command) Synopsis() string {
	return "Read the account event log (Enterprise accounts)"
}

func (c *Command) Help() string {
	return `Usage: wusul events [options]

  This command prints the event log entries matching the given filters,
  newest first. Dates may be given in any common format.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("events", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagPass, "pass", "", "Only show events for this access pass.")
	f.StringVar(&c.flagType, "type", "", "Only show events of this type.")
	f.StringVar(&c.flagStart, "start", "", "Only show events on or after this date.")
	f.StringVar(&c.flagEnd, "end", "", "Only show events on or before this date.")
	f.Var(&c.flagLimit, "limit", "Maximum number of events to show..")
	f.Var(&c.flagOffset, "offset", "Number of events to skip.")

	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

	p := &types.ReadEventLogParams{
		AccessPassID: c.flagPass,
		EventType:    c.flagType,
		Limit:        c.flagLimit.Get(),
		Offset:       c.flagOffset.Get(),
	}
	var err error
	if p.StartDate, err = base.ParseDate(c.flagStart); err != nil {
		return c.Fail("error parsing -start: %v", err)
	}
	if p.EndDate, err = base.ParseDate(c.flagEnd); err != nil {
		return c.Fail("error parsing -end: %v", err)
	}

	sdk, err := c.SDK(&c.client)
	if err != nil {
		return c.Fail("error configuring client: %v", err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	events, err := sdk.Console.EventLog(ctx, p)
	if err != nil {
		return c.Fail("error reading event log: %v", err)
	}
	return c.Output(events)
}
