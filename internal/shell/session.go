// Package shell holds the interactive session: the loaded subtitle
// document, where it is saved, and the commands that act on it.
package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mgpai22/srtsh/internal/command"
	"github.com/mgpai22/srtsh/internal/config"
	"github.com/mgpai22/srtsh/internal/logging"
	"github.com/mgpai22/srtsh/internal/subtitle"
	"github.com/mgpai22/srtsh/internal/timecode"
)

// Options configures a Session. SaveHook is fixed for the session's life.
type Options struct {
	SaveHook   string
	Logger     *logging.Logger
	TableStyle string
}

// Session owns at most one document. Nothing outside the session holds a
// reference into it; every view handed out is a copy.
type Session struct {
	doc        *subtitle.Document
	path       string
	saveHook   string
	logger     *logging.Logger
	tableStyle table.Style
}

// Result is what the front end prints after a command.
type Result struct {
	Output string
	// Failed marks Output as an error message.
	Failed bool
	// Exit asks the front end to stop reading input.
	Exit bool
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Session{
		saveHook:   opts.SaveHook,
		logger:     logger,
		tableStyle: tableStyle(opts.TableStyle),
	}
}

// Loaded reports whether a document is open.
func (s *Session) Loaded() bool {
	return s.doc != nil
}

// Path is the absolute path of the open document, or "".
func (s *Session) Path() string {
	return s.path
}

// SaveHook is the script run after each save, or "".
func (s *Session) SaveHook() string {
	return s.saveHook
}

// Document returns a copy of the open document's entries.
func (s *Session) Document() []subtitle.Entry {
	if s.doc == nil {
		return nil
	}
	return s.doc.Entries()
}

// Load replaces the open document with the file at path. On error the
// previous document and path stay in place.
func (s *Session) Load(path string) error {
	absPath, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	doc, err := subtitle.Open(absPath)
	if err != nil {
		return err
	}

	s.doc = doc
	s.path = absPath
	s.logger.Infow("Loaded subtitle file",
		"path", absPath,
		"entries", doc.Len(),
	)
	return nil
}

func (s *Session) Show(index int) (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	entry, err := s.doc.EntryAt(index)
	if err != nil {
		return "", err
	}
	return entry.String(), nil
}

func (s *Session) ShowAll() (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	return s.doc.String(), nil
}

// List renders a one-row-per-entry overview table.
func (s *Session) List() (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	return renderEntryTable(s.doc.Entries(), s.tableStyle), nil
}

// Search renders every entry with a text line containing term.
func (s *Session) Search(term string) (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	return joinEntries(s.doc.Search(term)), nil
}

// ScanInterval renders entries that start at least ms milliseconds after
// the previous entry ends.
func (s *Session) ScanInterval(ms int) (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	gap, ok := timecode.Parse(fmt.Sprintf("%dms", ms))
	if !ok {
		return "", &inputError{
			msg:  fmt.Sprintf("Invalid time used %d", ms),
			kind: ErrInvalidDuration,
		}
	}
	return joinEntries(s.doc.ScanGaps(gap)), nil
}

// Timeshift moves entries from index onward by the span in text, for
// example "+1500ms". Nothing changes when either argument is invalid.
func (s *Session) Timeshift(index int, text string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if _, err := s.doc.EntryAt(index); err != nil {
		return err
	}
	delta, ok := timecode.Parse(text)
	if !ok {
		return &inputError{
			msg:  fmt.Sprintf("Invalid timeshift input (%d, %s)", index, text),
			kind: ErrInvalidDuration,
		}
	}
	if err := s.doc.ShiftTime(index, delta); err != nil {
		return err
	}
	s.logger.Debugw("Shifted entries",
		"from", index,
		"delta_ms", delta.Milliseconds(),
	)
	return nil
}

// Rewind moves entries from index onward ms milliseconds earlier.
func (s *Session) Rewind(index, ms int) error {
	return s.Timeshift(index, fmt.Sprintf("-%dms", ms))
}

// Forward moves entries from index onward ms milliseconds later.
func (s *Session) Forward(index, ms int) error {
	return s.Timeshift(index, fmt.Sprintf("+%dms", ms))
}

func (s *Session) Remove(index int) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if err := s.doc.RemoveAt(index); err != nil {
		return err
	}
	s.logger.Debugw("Removed entry", "index", index, "remaining", s.doc.Len())
	return nil
}

// Save writes the document back to the path it was loaded from and then
// runs the save hook, if any. The returned string is the hook's output.
func (s *Session) Save(ctx context.Context) (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	return s.SaveAs(ctx, s.path)
}

// SaveAs is Save with an explicit target. The session keeps its path.
func (s *Session) SaveAs(ctx context.Context, path string) (string, error) {
	if s.doc == nil {
		return "", ErrNotLoaded
	}
	if err := subtitle.WriteFile(s.doc, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	s.logger.Infow("Saved subtitle file",
		"path", path,
		"entries", s.doc.Len(),
	)

	if s.saveHook == "" {
		return "", nil
	}
	return runHook(ctx, s.saveHook, s.logger), nil
}

// Execute runs one parsed command. Every failure is turned into a message;
// the session stays usable whatever happens.
func (s *Session) Execute(ctx context.Context, cmd command.Command) Result {
	if cmd.Kind.RequiresDocument() && !s.Loaded() {
		return failure(ErrNotLoaded)
	}

	var (
		out string
		err error
	)

	switch cmd.Kind {
	case command.Help:
		return Result{Output: Usage}
	case command.Exit:
		return Result{Exit: true}
	case command.Load:
		err = s.Load(cmd.Path)
	case command.Show:
		out, err = s.Show(cmd.Index)
	case command.ShowAll:
		out, err = s.ShowAll()
	case command.List:
		out, err = s.List()
	case command.Interval:
		out, err = s.ScanInterval(cmd.Millis)
	case command.Shift:
		if cmd.Backward {
			err = s.Rewind(cmd.Index, cmd.Millis)
		} else {
			err = s.Forward(cmd.Index, cmd.Millis)
		}
	case command.Remove:
		err = s.Remove(cmd.Index)
	case command.Save:
		out, err = s.Save(ctx)
	case command.Search:
		out, err = s.Search(cmd.Term)
	default:
		err = ErrInvalidCommand
	}

	if err != nil {
		s.logger.Debugw("Command failed", "command", cmd.Kind.String(), "error", err)
		return failure(err)
	}
	return Result{Output: out}
}

// ExecuteLine parses and runs a single input line.
func (s *Session) ExecuteLine(ctx context.Context, line string) Result {
	return s.Execute(ctx, command.Parse(line))
}

func failure(err error) Result {
	return Result{Output: err.Error(), Failed: true}
}

func joinEntries(entries []subtitle.Entry) string {
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = e.String()
	}
	return strings.Join(blocks, "\n\n")
}
