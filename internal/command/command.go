// Package command turns a line of shell input into a typed Command.
package command

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies the action a Command requests.
type Kind int

const (
	Invalid Kind = iota
	Help
	Exit
	Load
	Show
	ShowAll
	List
	Interval
	Shift
	Remove
	Save
	Search
)

var kindNames = map[Kind]string{
	Invalid:  "invalid",
	Help:     "help",
	Exit:     "exit",
	Load:     "load",
	Show:     "show",
	ShowAll:  "showall",
	List:     "list",
	Interval: "interval",
	Shift:    "shift",
	Remove:   "remove",
	Save:     "save",
	Search:   "search",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// RequiresDocument reports whether the command needs a loaded file.
func (k Kind) RequiresDocument() bool {
	switch k {
	case Help, Exit, Load:
		return false
	}
	return true
}

// Command is one parsed input line. Only the fields relevant to Kind are set.
type Command struct {
	Kind Kind

	// Index is the 1-based entry for Show, Shift and Remove.
	Index int
	// Millis is the Interval threshold or the Shift amount.
	Millis int
	// Backward marks a Shift as a rewind.
	Backward bool
	// Path is the Load target as typed.
	Path string
	// Term is the Search text, possibly empty.
	Term string
}

// Parse recognises a single line. Keywords are case-sensitive and
// surrounding whitespace is ignored. Anything unrecognised yields Invalid.
func Parse(line string) Command {
	line = strings.TrimRightFunc(line, func(r rune) bool { return r == '\n' || r == '\r' })
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	keyword, rest := splitKeyword(trimmed)
	args := strings.Fields(rest)

	switch keyword {
	case "help", "h":
		if len(args) == 0 {
			return Command{Kind: Help}
		}
	case "exit":
		if len(args) == 0 {
			return Command{Kind: Exit}
		}
	case "load":
		if path, ok := parsePath(rest); ok {
			return Command{Kind: Load, Path: path}
		}
	case "show", "s":
		if n, ok := singleNumber(args); ok {
			return Command{Kind: Show, Index: n}
		}
	case "showall":
		if len(args) == 0 {
			return Command{Kind: ShowAll}
		}
	case "list":
		if len(args) == 0 {
			return Command{Kind: List}
		}
	case "interval":
		if n, ok := singleNumber(args); ok {
			return Command{Kind: Interval, Millis: n}
		}
	case "u", "rewind", "f", "forward":
		if len(args) != 2 {
			break
		}
		index, ok1 := number(args[0])
		millis, ok2 := number(args[1])
		if ok1 && ok2 {
			return Command{
				Kind:     Shift,
				Index:    index,
				Millis:   millis,
				Backward: keyword == "u" || keyword == "rewind",
			}
		}
	case "remove":
		if n, ok := singleNumber(args); ok {
			return Command{Kind: Remove, Index: n}
		}
	case "save":
		if len(args) == 0 {
			return Command{Kind: Save}
		}
	case "search":
		return Command{Kind: Search, Term: strings.TrimLeftFunc(rest, unicode.IsSpace)}
	}

	return Command{Kind: Invalid}
}

// splitKeyword cuts the leading word off s. rest keeps its leading
// whitespace so callers can tell "search" from "search  x".
func splitKeyword(s string) (keyword, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// parsePath accepts a bare, single-quoted or double-quoted path. Outside
// double quotes a path may not contain a single quote.
func parsePath(rest string) (string, bool) {
	if rest == "" {
		return "", false
	}
	path := strings.TrimSpace(rest)
	if len(path) >= 2 && path[0] == '"' && path[len(path)-1] == '"' {
		path = path[1 : len(path)-1]
	} else {
		path = strings.TrimSuffix(strings.TrimPrefix(path, "'"), "'")
		if strings.Contains(path, "'") {
			return "", false
		}
	}
	if strings.TrimSpace(path) == "" {
		return "", false
	}
	return path, true
}

func singleNumber(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	return number(args[0])
}

// number accepts unsigned decimal digits only.
func number(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
