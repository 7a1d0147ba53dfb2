package base

import (
	"bytes"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// FlagSet is a flag.FlagSet that can render its own help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f, silencing its default output so that usage errors are
// reported by the command.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(&bytes.Buffer{})
	f.Usage = func() {}
	return &FlagSet{f}
}

// Help renders the flags as an options section for a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if name, _ := flag.UnquoteUsage(fl); name != "" {
			fmt.Fprintf(&b, "=<%s>", name)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}

// StringMapValue collects repeated key=value flags.
type StringMapValue map[string]any

func (m StringMapValue) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (m StringMapValue) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	m[key] = val
	return nil
}

// Uint32Value is an unsigned flag that remembers whether it was given, so an
// explicit zero can be told apart from an absent flag.
type Uint32Value struct {
	value *uint32
}

func (u *Uint32Value) String() string {
	if u == nil || u.value == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*u.value), 10)
}

func (u *Uint32Value) Set(value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return fmt.Errorf("expected a non-negative integer, got %q", value)
	}
	v := uint32(n)
	u.value = &v
	return nil
}

// Get returns the parsed value, or nil if the flag was not given.
func (u *Uint32Value) Get() *uint32 {
	return u.value
}
