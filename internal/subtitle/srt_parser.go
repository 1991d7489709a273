package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/srtsh/internal/timecode"
)

// trailing text after the end timestamp (position hints) is ignored
var timingRegex = regexp.MustCompile(`^\s*(\S+)\s*-->\s*(\S+)`)

type parseState int

const (
	expectSequence parseState = iota
	expectTiming
	readingText
)

// Parse reads an SRT track. Sequence numbers in the input are checked for
// shape only; the returned document is renumbered from 1.
func Parse(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries []Entry
		current Entry
		state   = expectSequence
		lineNum = 0
	)

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		blank := strings.TrimSpace(line) == ""

		switch state {
		case expectSequence:
			if blank {
				continue
			}
			seq, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || seq < 0 {
				return nil, fmt.Errorf(
					"line %d: expected subtitle number, got %q",
					lineNum,
					line,
				)
			}
			current = Entry{Sequence: seq}
			state = expectTiming

		case expectTiming:
			start, end, err := parseTiming(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			current.StartTime = start
			current.EndTime = end
			state = readingText

		case readingText:
			if blank {
				entries = append(entries, current)
				state = expectSequence
				continue
			}
			current.Text = append(current.Text, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	switch state {
	case expectTiming:
		return nil, fmt.Errorf(
			"line %d: unexpected end of file, missing timing for subtitle %d",
			lineNum,
			current.Sequence,
		)
	case readingText:
		entries = append(entries, current)
	}

	return NewDocument(entries), nil
}

func parseTiming(line string) (timecode.Duration, timecode.Duration, error) {
	matches := timingRegex.FindStringSubmatch(line)
	if matches == nil {
		return 0, 0, fmt.Errorf("expected timing line, got %q", line)
	}
	start, err := timecode.ParseTimestamp(matches[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start timestamp: %w", err)
	}
	end, err := timecode.ParseTimestamp(matches[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end timestamp: %w", err)
	}
	return start, end, nil
}
