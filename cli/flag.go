package cli

import (
	"github.com/ka2n/sitemapgen/config"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/pflag"
)

// indentFlag accepts "tab", "none", a number of spaces, or literal whitespace
type indentFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value. It returns the resolved indent.
func (f *indentFlag) String() string {
	return f.Value
}

func (f *indentFlag) Set(value string) error {
	indent, err := parseIndent(value)
	if err != nil {
		return err
	}
	f.Value = indent
	f.IsSet = true
	return nil
}

func (f *indentFlag) Type() string {
	return "indent"
}

var _ pflag.Value = &indentFlag{}

func parseIndent(value string) (string, error) {
	indent, err := config.ParseIndent(value)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(InvalidIndentFlag))
	}
	return indent, nil
}
