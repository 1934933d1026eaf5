package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kbolino/fracalc/internal/config"
	"github.com/kbolino/fracalc/internal/shell"
)

type lineSource interface {
	shell.LineReader
	io.Closer
}

// openInput returns a line editor with history when standard input is a
// terminal, and a plain line reader otherwise.
func openInput(cmd *cobra.Command, cfg *config.Config) (lineSource, bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          cfg.Prompt,
			HistoryFile:     cfg.HistoryFile,
			InterruptPrompt: "^C",
			EOFPrompt:       cfg.QuitWords[0],
			Stdout:          cmd.OutOrStdout(),
		})
		if err != nil {
			return nil, false, err
		}
		return terminalReader{rl}, true, nil
	}
	return plainReader{shell.NewReader(in)}, false, nil
}

type terminalReader struct {
	rl *readline.Instance
}

// Readline treats ^C on an empty line as the end of input and otherwise
// discards the line being edited.
func (r terminalReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

func (r terminalReader) Close() error {
	return r.rl.Close()
}

type plainReader struct {
	shell.LineReader
}

func (plainReader) Close() error {
	return nil
}
