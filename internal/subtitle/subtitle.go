package subtitle

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mgpai22/srtsh/internal/timecode"
)

// ErrOutOfRange is wrapped by every IndexError.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports a 1-based entry index outside the document.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Index < 1 {
		return "Invalid index given, index must be more than 0"
	}
	return "Invalid index given, index must be at most " + strconv.Itoa(e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// represents single subtitle block
type Entry struct {
	Sequence  int
	StartTime timecode.Duration
	EndTime   timecode.Duration
	Text      []string
}

// String renders the SRT block without a trailing newline.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(e.Sequence))
	sb.WriteString("\n")
	sb.WriteString(e.StartTime.Timestamp())
	sb.WriteString(" --> ")
	sb.WriteString(e.EndTime.Timestamp())
	for _, line := range e.Text {
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}

func (e Entry) clone() Entry {
	e.Text = append([]string(nil), e.Text...)
	return e
}

// Document is an ordered subtitle track. Sequence numbers always run
// 1..Len() in order; every mutating method keeps it that way.
type Document struct {
	entries []Entry
}

// NewDocument copies entries and numbers them from 1.
func NewDocument(entries []Entry) *Document {
	d := &Document{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		d.entries[i] = e.clone()
		d.entries[i].Sequence = i + 1
	}
	return d
}

func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns a copy of every entry.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.clone()
	}
	return out
}

// String renders the whole track, blocks separated by a blank line.
func (d *Document) String() string {
	blocks := make([]string, len(d.entries))
	for i, e := range d.entries {
		blocks[i] = e.String()
	}
	return strings.Join(blocks, "\n\n")
}
