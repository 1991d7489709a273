package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"help", Command{Kind: Help}},
		{"h", Command{Kind: Help}},
		{"  h  ", Command{Kind: Help}},
		{"exit", Command{Kind: Exit}},
		{"exit\n", Command{Kind: Exit}},

		{"load movie.srt", Command{Kind: Load, Path: "movie.srt"}},
		{"load 'my movie.srt'", Command{Kind: Load, Path: "my movie.srt"}},
		{`load "it's.srt"`, Command{Kind: Load, Path: "it's.srt"}},
		{"  load   /tmp/a.srt  ", Command{Kind: Load, Path: "/tmp/a.srt"}},

		{"show 3", Command{Kind: Show, Index: 3}},
		{"s 12", Command{Kind: Show, Index: 12}},
		{"show 0", Command{Kind: Show, Index: 0}},
		{"showall", Command{Kind: ShowAll}},
		{"list", Command{Kind: List}},

		{"interval 90", Command{Kind: Interval, Millis: 90}},

		{"u 50 5000", Command{Kind: Shift, Index: 50, Millis: 5000, Backward: true}},
		{"rewind 2 5000", Command{Kind: Shift, Index: 2, Millis: 5000, Backward: true}},
		{"f 1 5000", Command{Kind: Shift, Index: 1, Millis: 5000}},
		{"forward  1   5000 ", Command{Kind: Shift, Index: 1, Millis: 5000}},

		{"remove 2", Command{Kind: Remove, Index: 2}},
		{"save", Command{Kind: Save}},

		{"search hello", Command{Kind: Search, Term: "hello"}},
		{"search   two words ", Command{Kind: Search, Term: "two words "}},
		{"search", Command{Kind: Search, Term: ""}},
		{"search ", Command{Kind: Search, Term: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Parse(tt.line)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"HELP",
		"help me",
		"exit now",
		"load",
		"load ",
		"load ''",
		"load it's.srt",
		"loadfile.srt",
		"show",
		"show x",
		"show -1",
		"show 1 2",
		"show 99999999999999999999999",
		"showall 1",
		"interval",
		"interval -5",
		"u 1",
		"u 1 -5",
		"f 1 5s",
		"forward",
		"remove",
		"remove 1 2",
		"save now",
		"searchfoo",
		"delete 1",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if got := Parse(line); got.Kind != Invalid {
				t.Errorf("Parse(%q) = %+v, want Invalid", line, got)
			}
		})
	}
}

func TestRequiresDocument(t *testing.T) {
	free := map[Kind]bool{Help: true, Exit: true, Load: true}
	for k := Invalid; k <= Search; k++ {
		if got := k.RequiresDocument(); got == free[k] {
			t.Errorf("%s.RequiresDocument() = %v", k, got)
		}
	}
}

func TestKindString(t *testing.T) {
	if Shift.String() != "shift" {
		t.Errorf("Shift.String() = %q", Shift.String())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}
