package cli

import (
	"testing"

	"github.com/morikuni/failure/v2"
)

func TestIndentFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "none", want: ""},
		{input: "tab", want: "\t"},
		{input: `\t`, want: "\t"},
		{input: "0", want: ""},
		{input: "2", want: "  "},
		{input: "4", want: "    "},
		{input: "  ", want: "  "},
		{input: "\t", want: "\t"},
		{input: "17", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "spaces", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f indentFlag
			err := f.Set(tt.input)
			if tt.wantErr {
				if !failure.Is(err, InvalidIndentFlag) {
					t.Fatalf("expected error %v, got %v", InvalidIndentFlag, err)
				}
				if f.IsSet {
					t.Error("IsSet = true after a failed Set")
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) unexpected error: %v", tt.input, err)
			}
			if f.String() != tt.want {
				t.Errorf("String() = %q, want %q", f.String(), tt.want)
			}
			if f.Type() != "indent" {
				t.Errorf("Type() = %q", f.Type())
			}
		})
	}
}
