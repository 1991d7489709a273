package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgpai22/srtsh/internal/timecode"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestOpenSRTFile(t *testing.T) {
	path := writeTestFile(t, "test.srt", sampleSRT)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}

	if doc.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", doc.Len())
	}

	entries := doc.Entries()
	if entries[0].StartTime != 1000 {
		t.Errorf("entry 0: expected start 1000ms, got %d", entries[0].StartTime)
	}
	if entries[0].EndTime != 4000 {
		t.Errorf("entry 0: expected end 4000ms, got %d", entries[0].EndTime)
	}
	if len(entries[0].Text) != 1 || entries[0].Text[0] != "Hello, world!" {
		t.Errorf("entry 0: expected 'Hello, world!', got %q", entries[0].Text)
	}

	expected := []string{"This is a test.", "With multiple lines."}
	if strings.Join(entries[1].Text, "|") != strings.Join(expected, "|") {
		t.Errorf("entry 1: expected %q, got %q", expected, entries[1].Text)
	}

	for i, e := range entries {
		if e.Sequence != i+1 {
			t.Errorf("entry %d: expected sequence %d, got %d", i, i+1, e.Sequence)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.srt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseCRLFAndBOM(t *testing.T) {
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nFirst\r\n\r\n" +
		"2\r\n00:00:03,000 --> 00:00:04,000\r\nSecond\r\n\r\n"

	doc, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", doc.Len())
	}
	entries := doc.Entries()
	if entries[1].Text[0] != "Second" {
		t.Errorf("expected 'Second', got %q", entries[1].Text[0])
	}
}

func TestParseRenumbersSequences(t *testing.T) {
	content := `7
00:00:01,000 --> 00:00:02,000
a

9
00:00:03,000 --> 00:00:04,000
b
`
	doc, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for i, e := range doc.Entries() {
		if e.Sequence != i+1 {
			t.Errorf("entry %d: expected sequence %d, got %d", i, i+1, e.Sequence)
		}
	}
}

func TestParseIgnoresPositionHints(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000 X1:10 X2:20 Y1:30 Y2:40\nText\n"
	doc, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	e, _ := doc.EntryAt(1)
	if e.EndTime != timecode.Duration(2000) {
		t.Errorf("expected end 2000ms, got %d", e.EndTime)
	}
}

func TestParseKeepsEntriesWithoutText(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n\n2\n00:00:03,000 --> 00:00:04,000\nText\n"
	doc, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", doc.Len())
	}
	e, _ := doc.EntryAt(1)
	if len(e.Text) != 0 {
		t.Errorf("expected no text lines, got %q", e.Text)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "one\n00:00:01,000 --> 00:00:02,000\nText\n"},
		{"bad timing", "1\n00:00:01,000 -> 00:00:02,000\nText\n"},
		{"bad timestamp", "1\n00:00:01 --> 00:00:02,000\nText\n"},
		{"truncated", "1\n00:00:01,000 --> 00:00:02,000\nText\n\n2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.content)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("expected empty document, got %d entries", doc.Len())
	}
}
