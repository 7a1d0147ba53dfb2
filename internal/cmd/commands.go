package cmd

import (
	"github.com/mitchellh/cli"

	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/internal/cmd/commands/events"
	"go.wusul.io/sdk/internal/cmd/commands/health"
	"go.wusul.io/sdk/internal/cmd/commands/passes"
	"go.wusul.io/sdk/internal/cmd/commands/sign"
	"go.wusul.io/sdk/internal/cmd/commands/templates"
	"go.wusul.io/sdk/internal/cmd/commands/version"
)

// commands returns the factories for every command, all sharing b.
func commands(b *base.Command) map[string]cli.CommandFactory {
	action := func(a passes.Action) cli.CommandFactory {
		return func() (cli.Command, error) {
			return &passes.ActionCommand{Command: b, Action: a}, nil
		}
	}

	return map[string]cli.CommandFactory{
		"health": func() (cli.Command, error) {
			return &health.Command{Command: b}, nil
		},
		"passes": func() (cli.Command, error) {
			return &passes.Command{Command: b}, nil
		},
		"passes issue": func() (cli.Command, error) {
			return &passes.IssueCommand{Command: b}, nil
		},
		"passes list": func() (cli.Command, error) {
			return &passes.ListCommand{Command: b}, nil
		},
		"passes update": func() (cli.Command, error) {
			return &passes.UpdateCommand{Command: b}, nil
		},
		"passes suspend": action(passes.ActionSuspend),
		"passes resume":  action(passes.ActionResume),
		"passes unlink":  action(passes.ActionUnlink),
		"passes delete":  action(passes.ActionDelete),
		"templates": func() (cli.Command, error) {
			return &templates.Command{Command: b}, nil
		},
		"templates create": func() (cli.Command, error) {
			return &templates.CreateCommand{Command: b}, nil
		},
		"templates read": func() (cli.Command, error) {
			return &templates.ReadCommand{Command: b}, nil
		},
		"templates update": func() (cli.Command, error) {
			return &templates.UpdateCommand{Command: b}, nil
		},
		"templates publish": func() (cli.Command, error) {
			return &templates.PublishCommand{Command: b}, nil
		},
		"events": func() (cli.Command, error) {
			return &events.Command{Command: b}, nil
		},
		"sign": func() (cli.Command, error) {
			return &sign.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
