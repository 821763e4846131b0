package kdd

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n ", nil},
		{"single", "a,b,normal", []string{"a,b,normal"}},
		{"trimmed", "\n\n a,b \n", []string{"a,b"}},
		{"blank lines skipped", "x,neptune\n\n   \ny,satan", []string{"x,neptune", "y,satan"}},
		{"crlf", "x,neptune\r\ny,satan\r\n", []string{"x,neptune", "y,satan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) returned %d lines, want %d: %q", tt.input, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	rec := ParseLine(SampleRecord)
	if rec.Protocol != "tcp" || rec.Flag != "SF" || rec.RawLabel != "normal" {
		t.Errorf("unexpected record from sample: %+v", rec)
	}

	// Only two fields: protocol present, flag missing.
	rec = ParseLine("0,udp")
	if rec.Protocol != "udp" {
		t.Errorf("expected protocol 'udp', got '%s'", rec.Protocol)
	}
	if rec.Flag != "unknown" {
		t.Errorf("expected flag 'unknown', got '%s'", rec.Flag)
	}
	if rec.RawLabel != "udp" {
		t.Errorf("expected last field as label, got '%s'", rec.RawLabel)
	}

	rec = ParseLine("smurf. ")
	if rec.Protocol != "unknown" || rec.Flag != "unknown" || rec.RawLabel != "smurf." {
		t.Errorf("unexpected record from single field: %+v", rec)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(SampleRecord, 0); err != nil {
		t.Fatalf("sample record should validate, got %v", err)
	}

	if err := Validate("   ", MinFields); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	err := Validate("0,tcp,http,SF,neptune", MinFields)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	var fce *FieldCountError
	if !errors.As(err, &fce) {
		t.Fatalf("expected *FieldCountError, got %T", err)
	}
	if fce.Got != 5 || fce.Want != MinFields {
		t.Errorf("unexpected field counts: %+v", fce)
	}

	// Only the first line is checked.
	input := SampleRecord + "\n0,tcp,neptune"
	if err := Validate(input, MinFields); err != nil {
		t.Errorf("expected only first line to be validated, got %v", err)
	}

	short := strings.Join([]string{"a", "b", "c"}, ",")
	if err := Validate(short, 3); err != nil {
		t.Errorf("custom minimum of 3 should accept 3 fields, got %v", err)
	}
}

func TestSampleDataset(t *testing.T) {
	if err := Validate(SampleDataset, MinFields); err != nil {
		t.Fatalf("sample dataset should validate, got %v", err)
	}

	lines := SplitLines(SampleDataset)
	if len(lines) != 78 {
		t.Fatalf("expected 78 sample lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len(Fields(line)); n < MinFields {
			t.Errorf("line %d has %d fields", i, n)
		}
	}
}
