package sign

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"go.wusul.io/sdk/internal/cliconfig"
	"go.wusul.io/sdk/internal/cmd/base"
	"go.wusul.io/sdk/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Command struct {
	*base.Command

	flagConfig string
	flagFile   string
	flagSecret string
}

// Result is printed by the command.
type Result struct {
	Payload   auth.EncodedPayload `json:"payload"`
	Signature auth.Signature      `json:"signature"`
	Headers   map[string]string   `json:"headers"`
}

func (c *Command) Synopsis() string {
	return "Sign a JSON payload offline"
}

func (c *Command) Help() string {
	return `Usage: wusul sign [options] [JSON]

  This command prints the encoded payload, signature and authentication
  headers the SDK would send for a JSON document. The document is taken
  from the argument, or the file given with -file. Without either the
  empty payload is signed.

  Nothing is sent to the API.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("sign", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "",
		"Path to a YAML config file. Defaults to $WUSUL_CONFIG.")
	f.StringVar(&c.flagFile, "file", "",
		"Read the JSON document from this file.")
	f.StringVar(&c.flagSecret, "secret", "",
		"Shared secret to sign with, overriding the configured one.")

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

	cfg, err := cliconfig.Load(c.Fs, c.flagConfig, c.Getenv)
	if err != nil {
		return c.Fail("error loading config: %v", err)
	}
	if c.flagSecret != "" {
		cfg.SharedSecret = c.flagSecret
	}
	if cfg.SharedSecret == "" {
		c.UI.Error(fmt.Sprintf("a shared secret is required (use -secret or %s)", cliconfig.EnvSharedSecret))
		return 1
	}

	var doc []byte
	switch {
	case c.flagFile != "" && flags.NArg() > 0:
		c.UI.Error("use either -file or an argument, not both")
		return 1
	case c.flagFile != "":
		if doc, err = afero.ReadFile(c.Fs, c.flagFile); err != nil {
			return c.Fail("error reading payload: %v", err)
		}
	case flags.NArg() > 0:
		doc = []byte(strings.Join(flags.Args(), " "))
	}

	payload, err := parse(doc)
	if err != nil {
		return c.Fail("error parsing payload: %v", err)
	}

	encoded, err := auth.EncodePayload(payload)
	if err != nil {
		return c.Fail("error encoding payload: %v", err)
	}
	sig := auth.Sign(cfg.SharedSecret, encoded)

	result := &Result{
		Payload:   encoded,
		Signature: sig,
		Headers: map[string]string{
			auth.HeaderSignature: string(sig),
		},
	}
	if cfg.AccountID != "" {
		result.Headers[auth.HeaderAccountID] = cfg.AccountID
	}
	return c.Output(result)
}

// parse decodes doc so that it is signed in canonical form. Numbers are kept
// as written.
func parse(doc []byte) (any, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil, nil
	}
	var payload any
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after the JSON document")
	}
	return payload, nil
}
