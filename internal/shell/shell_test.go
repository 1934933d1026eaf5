package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbolino/fracalc"
)

const banner = "\n  Enter an equation. Enter q to quit.\n\n"

func run(t *testing.T, input string, opts Options) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(NewReader(strings.NewReader(input)), &out, opts)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestRun(t *testing.T) {
	out := run(t, "1 + 2\n6 / 0\n4 * 2_1/2\n1 & 2\nq\n1 + 1\n", Options{DecimalPlaces: -1})
	assert.Equal(t, banner+
		"\n  = 3\n"+
		"\n  Divide by zero error\n"+
		"\n  = 10\n"+
		"\n  Error parsing equation\n", out)
}

func TestRun_quitWords(t *testing.T) {
	out := run(t, "quit\n1 + 1\n", Options{DecimalPlaces: -1})
	assert.Equal(t, banner, out)

	// quit words match exactly
	out = run(t, "Quit\n q\nexit\n2 + 2\n", Options{DecimalPlaces: -1, QuitWords: []string{"exit"}})
	assert.Equal(t, "\n  Enter an equation. Enter exit to quit.\n\n"+
		"\n  Error parsing equation\n"+
		"\n  Error parsing equation\n", out)
}

func TestRun_endOfInput(t *testing.T) {
	out := run(t, "3_1/2 - 1/2\r\n\n   \n-1/3 * 1", Options{DecimalPlaces: -1})
	assert.Equal(t, banner+"\n  = 3\n"+"\n  = -0_1/3\n", out)

	out = run(t, "", Options{})
	assert.Equal(t, banner, out)
}

func TestRun_errors(t *testing.T) {
	out := run(t, "1__2/3 + 1\n99999999999999999999 + 1\n1 + 2 + 3\n", Options{DecimalPlaces: -1})
	assert.Equal(t, banner+
		"\n  Error parsing number\n"+
		"\n  Number overflow error\n"+
		"\n  Error parsing equation\n", out)
}

func TestRun_decimal(t *testing.T) {
	out := run(t, "1 / 3\n", Options{DecimalPlaces: 4})
	assert.Contains(t, out, "\n  = 0_1/3 (0.3333)\n")
}

func TestRun_color(t *testing.T) {
	out := run(t, "1 + 2\n", Options{DecimalPlaces: -1, Color: true})
	assert.Contains(t, out, "\x1b[32m")
	assert.Contains(t, out, "= 3")
}

func TestRun_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh := New(NewReader(strings.NewReader("1 + 1\n")), io.Discard, Options{})
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

type failingReader struct{}

func (failingReader) Readline() (string, error) {
	return "", errors.New("tty gone")
}

func TestRun_readError(t *testing.T) {
	sh := New(failingReader{}, io.Discard, Options{})
	assert.ErrorContains(t, sh.Run(context.Background()), "tty gone")
}

func TestRun_logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	run(t, "1 + 2\n5/0 + 1\n", Options{DecimalPlaces: -1, Logger: logger})

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "evaluated", entries[0].Message)
	assert.Equal(t, "3", entries[0].Data["result"])
	assert.Equal(t, "rejected", entries[1].Message)
	assert.ErrorIs(t, entries[1].Data[logrus.ErrorKey].(error), fracalc.ErrNumberParse)
	assert.Equal(t, "end of input", entries[2].Message)
}

func TestEvaluate(t *testing.T) {
	sh := New(NewReader(strings.NewReader("")), io.Discard, Options{
		DecimalPlaces: -1,
		Codec:         fracalc.Codec{Approximator: fracalc.Approximator{Epsilon: 1e-2}},
	})
	result, err := sh.Evaluate("3 + 0_16/113")
	require.NoError(t, err)
	assert.Equal(t, "3_1/7", result)

	_, err = sh.Evaluate("6 / 0")
	assert.ErrorIs(t, err, fracalc.ErrDivByZero)
}
