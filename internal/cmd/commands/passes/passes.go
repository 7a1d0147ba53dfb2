package passes

import (
	"github.com/mitchellh/cli"

	"go.wusul.io/sdk/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Issue and manage access passes"
}

func (c *Command) Help() string {
	return `Usage: wusul passes <subcommand> [options] [args]

  This command groups subcommands for issuing and managing access passes.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
