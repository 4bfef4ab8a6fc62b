package cli

import (
	"bytes"
	"testing"

	"bfhl-hq/bfhl/pkg/api/types"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}
	buf := &bytes.Buffer{}

	if err := formatter.FormatTo(buf, "test message"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	expected := "test message\n"
	if buf.String() != expected {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), expected)
	}
}

func TestJSONFormatter(t *testing.T) {
	env := &types.Envelope{
		IsSuccess:  true,
		UserID:     "u",
		Email:      "e@x",
		RollNumber: "r",
		Numbers:    []string{},
		Alphabets:  []string{"a"},
	}

	compact, err := (&JSONFormatter{}).Format(env)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `{"is_success":true,"user_id":"u","email":"e@x","roll_number":"r","numbers":[],"alphabets":["a"]}`
	if string(compact) != want {
		t.Errorf("Format() = %s, want %s", compact, want)
	}

	buf := &bytes.Buffer{}
	if err := (&JSONFormatter{Indent: true}).FormatTo(buf, map[string]int{"operation_code": 1}); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "{\n  \"operation_code\": 1\n}\n" {
		t.Errorf("FormatTo() = %q", buf.String())
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		indent bool
		text   bool
	}{
		{FormatJSON, true, false},
		{FormatCompact, false, false},
		{FormatText, false, true},
		{"", true, false},
	}

	for _, tt := range tests {
		f := NewFormatter(tt.format)
		if tt.text {
			if _, ok := f.(*TextFormatter); !ok {
				t.Errorf("NewFormatter(%q) = %T, want *TextFormatter", tt.format, f)
			}
			continue
		}
		jf, ok := f.(*JSONFormatter)
		if !ok {
			t.Errorf("NewFormatter(%q) = %T, want *JSONFormatter", tt.format, f)
			continue
		}
		if jf.Indent != tt.indent {
			t.Errorf("NewFormatter(%q).Indent = %v, want %v", tt.format, jf.Indent, tt.indent)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{"": FormatJSON, "json": FormatJSON, "compact": FormatCompact, "text": FormatText} {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOutputFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}
