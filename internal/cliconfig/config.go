// Package cliconfig loads the credentials and connection settings used by
// the wusul command line tool.
//
// Settings are read from an optional YAML file and then overridden by
// environment variables:
//
//	account_id: acct_123
//	shared_secret: s3cr3t
//	base_url: https://api.wusul.io
//	timeout: 30s
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	wusul "go.wusul.io/sdk"
)

// Environment variables read by Load.
const (
	EnvConfig       = "WUSUL_CONFIG"
	EnvAccountID    = "WUSUL_ACCOUNT_ID"
	EnvSharedSecret = "WUSUL_SHARED_SECRET"
	EnvBaseURL      = "WUSUL_BASE_URL"
	EnvTimeout      = "WUSUL_TIMEOUT"
)

// Config is the configuration of the command line tool.
type Config struct {
	AccountID    string        `mapstructure:"account_id"`
	SharedSecret string        `mapstructure:"shared_secret"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// Load reads the configuration file at path from fs, falling back to the
// file named by WUSUL_CONFIG when path is empty. Without either, only the
// environment is used. Environment variables take precedence over the file.
//
// getenv is used to read the environment; it is os.Getenv if nil.
func Load(fs afero.Fs, path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv(EnvConfig)
	}

	cfg := &Config{}
	if path != "" {
		if err := cfg.readFile(fs, path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			secondsToDurationHook,
		),
		ErrorUnused: true,
		Result:      c,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

// secondsToDurationHook reads bare numbers as a number of seconds.
func secondsToDurationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Second, nil
	case float64:
		return time.Duration(v * float64(time.Second)), nil
	}
	return data, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvAccountID); v != "" {
		c.AccountID = v
	}
	if v := getenv(EnvSharedSecret); v != "" {
		c.SharedSecret = v
	}
	if v := getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the credentials are present.
func (c *Config) Validate() error {
	var errs []error
	if c.AccountID == "" {
		errs = append(errs, fmt.Errorf("account id is required (set account_id or %s)", EnvAccountID))
	}
	if c.SharedSecret == "" {
		errs = append(errs, fmt.Errorf("shared secret is required (set shared_secret or %s)", EnvSharedSecret))
	}
	return errors.Join(errs...)
}

// Options returns the SDK options for the settings that differ from the
// SDK defaults.
func (c *Config) Options() []wusul.Option {
	var opts []wusul.Option
	if c.BaseURL != "" {
		opts = append(opts, wusul.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, wusul.WithTimeout(c.Timeout))
	}
	return opts
}
