package base

import (
	"flag"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/mitchellh/cli"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"go.wusul.io/sdk/types"
)

func newTestCommand(env map[string]string) (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Command{
		Log: zerolog.Nop(),
		UI:  ui,
		Fs:  afero.NewMemMapFs(),
		Getenv: func(key string) string {
			return env[key]
		},
	}, ui
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2025-01-31", "2025-01-31"},
		{"01/31/2025", "2025-01-31"},
		{"Jan 31 2025", "2025-01-31"},
		{"2025-01-31T15:04:05Z", "2025-01-31"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.in, func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			got, err := ParseDate(test.in)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.want)
		})
	}

	_, err := ParseDate("someday")
	qt.New(t).Assert(err, qt.ErrorMatches, `invalid date "someday": .*`)
}

func TestFlagSetHelp(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var cf ClientFlags
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	cf.Register(f)

	help := f.Help()
	c.Assert(help, qt.Contains, "Options:")
	c.Assert(help, qt.Contains, "-config=<string>")
	c.Assert(help, qt.Contains, "-verbose\n      Log every request sent to the API.")

	c.Assert(f.Parse([]string{"-config", "wusul.yaml", "-verbose"}), qt.IsNil)
	c.Assert(cf.Config, qt.Equals, "wusul.yaml")
	c.Assert(cf.Verbose, qt.IsTrue)
}

func TestStringMapValue(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	m := StringMapValue{}
	c.Assert(m.Set("floor=3"), qt.IsNil)
	c.Assert(m.Set("desk=a=b"), qt.IsNil)
	c.Assert(m, qt.DeepEquals, StringMapValue{"floor": "3", "desk": "a=b"})
	c.Assert(m.Set("nokey"), qt.ErrorMatches, `expected key=value, got "nokey"`)
}

func TestUint32Value(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var u Uint32Value
	c.Assert(u.Get(), qt.IsNil)
	c.Assert(u.String(), qt.Equals, "")

	c.Assert(u.Set("0"), qt.IsNil)
	c.Assert(u.Get(), qt.Not(qt.IsNil))
	c.Assert(*u.Get(), qt.Equals, uint32(0))
	c.Assert(u.String(), qt.Equals, "0")

	c.Assert(u.Set("-1"), qt.ErrorMatches, `expected a non-negative integer, got "-1"`)
	c.Assert(u.Set("4294967296"), qt.ErrorMatches, `expected a non-negative integer, got .*`)
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cmd, _ := newTestCommand(nil)
	c.Assert(afero.WriteFile(cmd.Fs, "template.yaml", []byte(`
name: Employee Badge
platform: apple
useCase: employee_badge
protocol: desfire
design:
  backgroundColor: "#FFFFFF"
  logoUrl: https://example.com/logo.png
`), 0o644), qt.IsNil)

	var p types.CreateCardTemplateParams
	c.Assert(cmd.DecodeFile("template.yaml", &p), qt.IsNil)
	c.Assert(p.Name, qt.Equals, "Employee Badge")
	c.Assert(p.UseCase, qt.Equals, types.UseCaseEmployeeBadge)
	c.Assert(p.Design, qt.DeepEquals, &types.CardTemplateDesign{
		BackgroundColor: "#FFFFFF",
		LogoURL:         "https://example.com/logo.png",
	})

	// JSON documents are YAML too
	c.Assert(afero.WriteFile(cmd.Fs, "template.json", []byte(`{"name": "Hotel Key", "bogus": true}`), 0o644), qt.IsNil)
	c.Assert(cmd.DecodeFile("template.json", &p), qt.ErrorMatches, `(?s)error decoding template.json: .*bogus.*`)

	c.Assert(cmd.DecodeFile("missing.yaml", &p), qt.ErrorMatches, `error reading missing.yaml: .*`)
}

func TestSDKRequiresCredentials(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cmd, _ := newTestCommand(map[string]string{"WUSUL_ACCOUNT_ID": "acct_1"})
	_, err := cmd.SDK(&ClientFlags{})
	c.Assert(err, qt.ErrorMatches, `shared secret is required.*`)

	cmd, _ = newTestCommand(map[string]string{
		"WUSUL_ACCOUNT_ID":    "acct_1",
		"WUSUL_SHARED_SECRET": "secret",
	})
	sdk, err := cmd.SDK(&ClientFlags{BaseURL: "http://localhost:8080"})
	c.Assert(err, qt.IsNil)
	c.Assert(sdk.AccountID(), qt.Equals, "acct_1")
	c.Assert(sdk.BaseURL(), qt.Equals, "http://localhost:8080")
}

func TestOutput(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cmd, ui := newTestCommand(nil)
	c.Assert(cmd.Output(map[string]any{"b": 1, "a": "x"}), qt.Equals, 0)
	c.Assert(ui.OutputWriter.String(), qt.Equals, "{\n  \"a\": \"x\",\n  \"b\": 1\n}\n")
}
