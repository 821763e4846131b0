package kdd

import (
	"errors"
	"fmt"
	"strings"
)

// MinFields is the number of comma-separated fields in a KDD Cup 99 connection record.
const MinFields = 41

// SampleRecord is a well-formed single-line KDD record with a normal label. It is
// offered to callers whose input fails validation.
const SampleRecord = "0,tcp,http,SF,215,45076,0,0,0,0,0,1,0,0,0,0,0,0,0,0,0,0,1,1,0.00,0.00,0.00,0.00,1.00,0.00,0.00,0,0,0.00,0.00,0.00,0.00,0.00,0.00,0.00,0.00,normal"

const unknownField = "unknown"

var (
	// ErrEmptyInput is returned by Validate when the input holds no text.
	ErrEmptyInput = errors.New("input is empty")
	// ErrMalformedInput is matched by every FieldCountError.
	ErrMalformedInput = errors.New("input is not KDD formatted")
)

// FieldCountError reports a first line with too few fields.
type FieldCountError struct {
	Got  int
	Want int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("first line has %d comma-separated fields, KDD format requires at least %d", e.Got, e.Want)
}

func (e *FieldCountError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Record is a KDD line split into the fields the classifier cares about.
type Record struct {
	Protocol string
	Flag     string
	RawLabel string
}

// SplitLines trims the input and splits it into lines. Blank lines are skipped
// and a trailing carriage return is removed from each line.
func SplitLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Fields splits a line on commas. There is no quoting in KDD data.
func Fields(line string) []string {
	return strings.Split(line, ",")
}

// ParseLine extracts protocol, flag and raw label from a single line. Missing
// positional fields fall back to "unknown"; the label is always the last field.
func ParseLine(line string) Record {
	parts := Fields(line)

	rec := Record{
		Protocol: unknownField,
		Flag:     unknownField,
		RawLabel: strings.TrimSpace(parts[len(parts)-1]),
	}
	if len(parts) > 1 {
		rec.Protocol = parts[1]
	}
	if len(parts) > 3 {
		rec.Flag = parts[3]
	}
	return rec
}

// Validate checks that raw looks like KDD data by counting the fields of its
// first line. A minFields of zero or less means MinFields.
func Validate(raw string, minFields int) error {
	if minFields <= 0 {
		minFields = MinFields
	}

	lines := SplitLines(raw)
	if len(lines) == 0 {
		return ErrEmptyInput
	}

	if n := len(Fields(lines[0])); n < minFields {
		return &FieldCountError{Got: n, Want: minFields}
	}
	return nil
}
