package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const prompt = "computor> "

// prompter is the part of *liner.State the read loop needs.
type prompter interface {
	Prompt(string) (string, error)
	AppendHistory(string)
}

// REPL reads one equation per line from the terminal until EOF, Ctrl-C or ctx is done.
// History is loaded from and saved to historyFile when it is not empty.
func (r *Runner) REPL(ctx context.Context, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	err := r.loop(ctx, line)

	if historyFile != "" {
		if serr := saveHistory(line, historyFile); serr != nil {
			r.log.Warn("history not saved", "path", historyFile, "err", serr)
		}
	}

	return err
}

func (r *Runner) loop(ctx context.Context, p prompter) error {
	for ctx.Err() == nil {
		input, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)

			return nil
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}

		p.AppendHistory(input)
		r.Run([]string{input})
	}

	return nil
}

func saveHistory(line *liner.State, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = line.WriteHistory(f)

	return err
}
