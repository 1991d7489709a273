package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mgpai22/srtsh/internal/shell"
)

type replOptions struct {
	Prompt    string
	ColorMode string
}

type lineReader interface {
	ReadLine() (string, error)
}

// scannerReader reads piped input. It never prints a prompt.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type repl struct {
	session *shell.Session
	reader  lineReader
	out     io.Writer
	styles  styles
	restore func()
}

// newREPL uses a line editor with history when both ends are a terminal
// and plain line reading otherwise.
func newREPL(session *shell.Session, in io.Reader, out io.Writer, opts replOptions) (*repl, error) {
	r := &repl{
		session: session,
		restore: func() {},
	}

	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	interactive := inOK && outOK && isTerminal(inFile) && isTerminal(outFile)

	r.styles = newStyles(out, opts.ColorMode, interactive)

	if !interactive {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		r.reader = &scannerReader{scanner: scanner}
		r.out = out
		return r, nil
	}

	fd := int(inFile.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set terminal mode: %w", err)
	}
	r.restore = func() {
		_ = term.Restore(fd, state)
	}

	terminal := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{inFile, outFile}, r.styles.prompt.Render(opts.Prompt))
	if width, height, err := term.GetSize(fd); err == nil {
		_ = terminal.SetSize(width, height)
	}

	r.reader = terminal
	r.out = terminal
	return r, nil
}

// Run reads commands until exit or end of input.
func (r *repl) Run(ctx context.Context) error {
	for {
		line, err := r.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		res := r.session.ExecuteLine(ctx, line)
		r.print(res)
		if res.Exit {
			return nil
		}
	}
}

func (r *repl) print(res shell.Result) {
	if res.Output == "" {
		return
	}
	text := res.Output
	if res.Failed {
		text = r.styles.err.Render(text)
	}
	fmt.Fprintln(r.out, text)
}

// Close puts the terminal back into the mode it was in.
func (r *repl) Close() {
	r.restore()
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
