package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"github.com/rs/zerolog"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	return run(args, base.New(log, ui))
}

func run(args []string, b *base.Command) int {
	cliName := args[0]

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: commands(b),
	}

	// Run the CLI
	exitCode, err := c.Run()
	if err != nil {
		b.UI.Error(fmt.Sprintf("error running command: %v", err))
		return 1
	}

	return exitCode
}
