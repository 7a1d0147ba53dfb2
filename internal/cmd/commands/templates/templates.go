package templates

import (
	"github.com/mitchellh/cli"

	"go.wusul.io/sdk/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage card templates (Enterprise accounts)"
}

func (c *Command) Help() string {
	return `Usage: wusul templates <subcommand> [options] [args]

  This command groups subcommands for managing the card templates access
  passes are issued from. Card templates are only available to Enterprise
  tier accounts.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
