package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Jeff-Rowell/Expression-Tree/eval"
	"github.com/Jeff-Rowell/Expression-Tree/history"
	"github.com/Jeff-Rowell/Expression-Tree/logging"
	"github.com/Jeff-Rowell/Expression-Tree/notation"
)

const (
	promptMessage            = "Enter an expression to evaluate in infix form: "
	invalidExpressionMessage = "Invalid Expression"
)

type session struct {
	mode    notation.Mode
	history *history.Store
}

// run converts, builds and evaluates one line and writes the outcome to w.
// An expression that cannot be built is reported on w, not returned.
func (s *session) run(w io.Writer, line string) error {
	input := strings.TrimRight(line, "\r\n")
	prefix := notation.ToPrefix(input, notation.WithMode(s.mode))

	entry := &history.Entry{
		Mode:   s.mode.String(),
		Input:  input,
		Prefix: prefix,
	}

	expr, err := eval.Build(prefix)
	if errors.Is(err, eval.ErrInvalidExpression) {
		logging.Debug().Err(err).Str("input", input).Str("prefix", prefix).Msg("rejected expression")

		if _, err := fmt.Fprintln(w, invalidExpressionMessage); err != nil {
			return err
		}

		entry.Err = err.Error()
		return s.record(entry)
	}
	if err != nil {
		return err
	}

	value := expr.Evaluate()
	entry.Result = formatResult(value)

	if e := logging.Debug(); e.Enabled() {
		e.Str("input", input).
			Str("prefix", prefix).
			Str("tree", expr.String()).
			Str("result", entry.Result).
			Msg("evaluated expression")
	}

	_, err = fmt.Fprintf(w, "Prefix: %s\nCalculated Result: %s\n", prefix, entry.Result)
	if err != nil {
		return err
	}

	return s.record(entry)
}

func (s *session) record(entry *history.Entry) error {
	if s.history == nil {
		return nil
	}

	if err := s.history.Append(entry); err != nil {
		return fmt.Errorf("could not record history: %w", err)
	}

	return nil
}

// formatResult prints a value the way the console always has: whole numbers
// keep one decimal place, magnitudes outside [1e-3, 1e7) switch to d.dddEn
// and IEEE specials are spelled out.
func formatResult(v float64) string {
	abs := math.Abs(v)

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v != 0 && (abs >= 1e7 || abs < 1e-3):
		return formatExponent(v)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func formatExponent(v float64) string {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}

	// "+07" and "-04" become 7 and -4
	n, _ := strconv.Atoi(exp)

	return mantissa + "E" + strconv.Itoa(n)
}
