// Package shell implements the interactive read-eval-print loop of the
// fraction calculator.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/kbolino/fracalc"
	"github.com/kbolino/fracalc/internal/logging"
)

// LineReader supplies input lines without their trailing newline. Readline
// returns io.EOF once the input is exhausted.
type LineReader interface {
	Readline() (string, error)
}

// Options configures a Shell.
type Options struct {
	// QuitWords end the loop when entered exactly. Defaults to q and quit.
	QuitWords []string

	// DecimalPlaces, when not negative, appends the result rounded to that
	// many decimal places.
	DecimalPlaces int

	// Color enables coloured results and errors.
	Color bool

	Codec  fracalc.Codec
	Logger logrus.FieldLogger
}

// Shell reads equations, evaluates them and writes the results.
// A Shell is not safe for concurrent use.
type Shell struct {
	in     LineReader
	out    io.Writer
	codec  fracalc.Codec
	quit   []string
	places int
	log    logrus.FieldLogger

	resultColor *color.Color
	errorColor  *color.Color
}

// New returns a shell reading from in and writing to out.
func New(in LineReader, out io.Writer, opts Options) *Shell {
	quit := opts.QuitWords
	if len(quit) == 0 {
		quit = []string{"q", "quit"}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	s := &Shell{
		in:          in,
		out:         out,
		codec:       opts.Codec,
		quit:        quit,
		places:      opts.DecimalPlaces,
		log:         log,
		resultColor: color.New(color.FgGreen),
		errorColor:  color.New(color.FgRed),
	}
	if opts.Color {
		s.resultColor.EnableColor()
		s.errorColor.EnableColor()
	} else {
		s.resultColor.DisableColor()
		s.errorColor.DisableColor()
	}
	return s
}

// Run prints a banner and evaluates lines until a quit word, the end of the
// input, or the cancellation of ctx. Errors in equations are reported and do
// not stop the loop; Run only fails if reading fails or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "\n  Enter an equation. Enter %s to quit.\n\n", s.quit[0])
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.in.Readline()
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if s.isQuit(line) {
			s.log.Debug("quit")
			return nil
		}
		if strings.TrimSpace(line) != "" {
			s.handle(line)
		}
		if eof {
			s.log.Debug("end of input")
			return nil
		}
	}
}

// Evaluate evaluates a single equation and returns the encoded result.
func (s *Shell) Evaluate(line string) (string, error) {
	eq, err := fracalc.ParseEquation(line)
	if err != nil {
		return "", err
	}
	v, err := eq.Eval()
	if err != nil {
		return "", err
	}
	text, err := s.codec.Encode(v)
	if err != nil {
		return "", err
	}
	if s.places >= 0 {
		text += " (" + decimal.NewFromFloat(v).StringFixed(int32(s.places)) + ")"
	}
	return text, nil
}

func (s *Shell) handle(line string) {
	result, err := s.Evaluate(line)
	if err != nil {
		s.log.WithField("input", line).WithError(err).Debug("rejected")
		s.errorColor.Fprintln(s.out, "\n  "+fracalc.KindOf(err).String())
		return
	}
	s.log.WithFields(logrus.Fields{"input": line, "result": result}).Debug("evaluated")
	s.resultColor.Fprintln(s.out, "\n  = "+result)
}

func (s *Shell) isQuit(line string) bool {
	for _, w := range s.quit {
		if line == w {
			return true
		}
	}
	return false
}

type scannerReader struct {
	sc *bufio.Scanner
}

// NewReader returns a LineReader over plain, non-interactive input such as a
// pipe or a file.
func NewReader(r io.Reader) LineReader {
	return &scannerReader{bufio.NewScanner(r)}
}

func (r *scannerReader) Readline() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
