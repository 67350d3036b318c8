package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Jeff-Rowell/Expression-Tree/history"
	"github.com/Jeff-Rowell/Expression-Tree/notation"
)

func TestSessionRun(t *testing.T) {
	tests := []struct {
		input    string
		mode     notation.Mode
		expected string
	}{
		{input: "5", expected: "Prefix: 5\nCalculated Result: 5.0\n"},
		{input: "1+2*3", expected: "Prefix: + 1 * 2 3\nCalculated Result: 7.0\n"},
		{input: "8-3-2", expected: "Prefix: - - 8 3 2\nCalculated Result: 3.0\n"},
		{input: "(1+2)*3", expected: "Prefix: * + 1 2 3\nCalculated Result: 9.0\n"},
		{input: "7/2", expected: "Prefix: / 7 2\nCalculated Result: 3.5\n"},
		{input: "1-9", expected: "Prefix: - 1 9\nCalculated Result: -8.0\n"},
		{input: "1/0", expected: "Prefix: / 1 0\nCalculated Result: Infinity\n"},
		{input: "0/0", expected: "Prefix: / 0 0\nCalculated Result: NaN\n"},
		{input: "1+2\r\n", expected: "Prefix: + 1 2\nCalculated Result: 3.0\n"},
		{input: "+2", expected: "Invalid Expression\n"},
		{input: "", expected: "Invalid Expression\n"},
		{input: "8-3-2", mode: notation.Legacy, expected: "Prefix: - 8- 32\nCalculated Result: 7.0\n"},
		{input: "(1+2)*3", mode: notation.Legacy, expected: "Prefix: + (1* 2)3\nCalculated Result: 7.0\n"},
		{input: "9*9*9*9*9*9*9*9", mode: notation.Legacy, expected: "Prefix: * 9* 9* 9* 9* 9* 9* 99\nCalculated Result: 4.3046721E7\n"},
		{input: "1/9/9/9/9/9", expected: "Prefix: / / / / / 1 9 9 9 9 9\nCalculated Result: 1.6935087808430286E-5\n"},
	}

	for i, tt := range tests {
		buf := &bytes.Buffer{}
		s := &session{mode: tt.mode}

		if err := s.run(buf, tt.input); err != nil {
			t.Errorf("test %d failed: %s", i+1, err)
			continue
		}

		if diff := cmp.Diff(buf.String(), tt.expected); diff != "" {
			t.Errorf("test %d (%q) failed: %s", i+1, tt.input, diff)
		}
	}
}

func TestSessionRecordsHistory(t *testing.T) {
	store := history.NewStore(memfs.New(), "history.jsonl")
	s := &session{mode: notation.Standard, history: store}

	buf := &bytes.Buffer{}
	for _, line := range []string{"1+2*3", "+2"} {
		if err := s.run(buf, line); err != nil {
			t.Error(err)
			return
		}
	}

	entries, err := store.List()
	if err != nil {
		t.Error(err)
		return
	}

	expected := []*history.Entry{
		{Mode: "standard", Input: "1+2*3", Prefix: "+ 1 * 2 3", Result: "7.0"},
		{Mode: "standard", Input: "+2", Prefix: "+ 2", Err: "invalid expression: operator is missing its right operand at 0 ('+')"},
	}
	if diff := cmp.Diff(entries, expected, cmpopts.IgnoreFields(history.Entry{}, "ID", "Time")); diff != "" {
		t.Error(diff)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 7, expected: "7.0"},
		{value: -8, expected: "-8.0"},
		{value: 3.5, expected: "3.5"},
		{value: 1.0 / 3, expected: "0.3333333333333333"},
		{value: math.Copysign(0, -1), expected: "-0.0"},
		{value: 0, expected: "0.0"},
		{value: 9999999, expected: "9999999.0"},
		{value: 1e7, expected: "1.0E7"},
		{value: 43046721, expected: "4.3046721E7"},
		{value: -43046721, expected: "-4.3046721E7"},
		{value: 0.001, expected: "0.001"},
		{value: 1.5241579027587258e-4, expected: "1.5241579027587258E-4"},
		{value: math.Inf(1), expected: "Infinity"},
		{value: math.Inf(-1), expected: "-Infinity"},
		{value: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		if got := formatResult(tt.value); got != tt.expected {
			t.Errorf("formatResult(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
