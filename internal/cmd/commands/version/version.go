package version

import (
	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of the wusul CLI"
}

func (c *Command) Help() string {
	return `Usage: wusul version

  This command prints the version of the wusul CLI.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
