// Package base holds what every wusul command shares: the UI, the logger,
// flag handling and SDK construction.
package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/cli"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	wusul "go.wusul.io/sdk"
	"go.wusul.io/sdk/internal/cliconfig"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Command is embedded by every command.
type Command struct {
	Log    zerolog.Logger
	UI     cli.Ui
	Fs     afero.Fs
	Getenv func(string) string

	// NewSDK builds the SDK used by API commands. Tests replace it to point
	// commands at a fake server.
	NewSDK func(accountID, sharedSecret string, options ...wusul.Option) (*wusul.SDK, error)
}

// New returns a command base using the real file system and environment.
func New(log zerolog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:    log,
		UI:     ui,
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
		NewSDK: wusul.NewSDK,
	}
}

// ClientFlags are the flags shared by commands that talk to the API.
type ClientFlags struct {
	Config  string
	BaseURL string
	Verbose bool
}

// Register adds the client flags to f.
func (cf *ClientFlags) Register(f *FlagSet) {
	f.StringVar(&cf.Config, "config", "",
		"Path to a YAML config file. Defaults to $WUSUL_CONFIG.")
	f.StringVar(&cf.BaseURL, "base-url", "",
		"Override the API base URL.")
	f.BoolVar(&cf.Verbose, "verbose", false,
		"Log every request sent to the API.")
}

// SDK loads the configuration selected by flags and builds an SDK from it.
func (c *Command) SDK(flags *ClientFlags) (*wusul.SDK, error) {
	cfg, err := cliconfig.Load(c.Fs, flags.Config, c.Getenv)
	if err != nil {
		return nil, err
	}
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := c.Log
	if flags.Verbose {
		log = log.Level(zerolog.DebugLevel)
	}
	opts := append(cfg.Options(), wusul.WithLogger(&log))

	newSDK := c.NewSDK
	if newSDK == nil {
		newSDK = wusul.NewSDK
	}
	return newSDK(cfg.AccountID, cfg.SharedSecret, opts...)
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Output writes v to the UI as indented JSON.
func (c *Command) Output(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(data))
	return 0
}

// Fail reports err to the user and returns the exit code for a failed command.
func (c *Command) Fail(format string, err error) int {
	c.UI.Error(fmt.Sprintf(format, err))
	return 1
}
