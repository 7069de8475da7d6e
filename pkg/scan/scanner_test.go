package scan

import (
	"math/rand"
	"testing"
)

func kinds(atoms []Atom) []Kind {
	out := make([]Kind, len(atoms))
	for i, a := range atoms {
		out[i] = a.Kind
	}
	return out
}

func TestScan_Empty(t *testing.T) {
	atoms := NewScanner().Scan("")
	if len(atoms) != 0 {
		t.Errorf("expected 0 atoms for empty input, got %d", len(atoms))
	}
}

func TestScan_NonOverlapping(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"plain code", "x = 1\ny = 2\n"},
		{"string with comment marker", "s = \"ab # cd\"\n"},
		{"docstring", "def f():\n    \"\"\"doc\n    more\n    \"\"\"\n    pass\n"},
		{"brackets", "x = [1,\n     2]\n"},
		{"continuation", "x = 1 + \\\n    2\n"},
		{"comment paragraph", "# a\n# b\nx = 1\n"},
		{"blank lines", "x = 1\n\n\ny = 2\n"},
		{"nested quotes", "s = 'it is \"quoted\"'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atoms := NewScanner().Scan(tt.src)
			prev := 0
			for i, a := range atoms {
				if a.Start < prev {
					t.Errorf("atom[%d] %v [%d,%d) overlaps previous end %d",
						i, a.Kind, a.Start, a.End, prev)
				}
				if a.End <= a.Start {
					t.Errorf("atom[%d] %v has empty span [%d,%d)", i, a.Kind, a.Start, a.End)
				}
				prev = a.End
			}
		})
	}
}

func TestScan_StringKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // expected text of the first String atom
	}{
		{"double", `x = "abc"`, `"abc"`},
		{"single", `x = 'abc'`, `'abc'`},
		{"escaped quote", `x = "a\"b"`, `"a\"b"`},
		{"triple double", `x = """abc"""`, `"""abc"""`},
		{"triple single", `x = '''abc'''`, `'''abc'''`},
		{"empty triple", `x = """"""`, `""""""`},
		{"triple with inner quotes", `x = """a""b"""`, `"""a""b"""`},
		{"triple multiline", "x = \"\"\"a\nb\"\"\"", "\"\"\"a\nb\"\"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atoms := NewScanner().Scan(tt.src)
			for _, a := range atoms {
				if a.Kind == AtomString {
					if got := a.Text(tt.src); got != tt.want {
						t.Errorf("string atom = %q, want %q", got, tt.want)
					}
					return
				}
			}
			t.Fatalf("no string atom in %q: %v", tt.src, kinds(atoms))
		})
	}
}

// A string literal containing a comment marker must be tokenized as a single
// STRING atom regardless of finder registration order: the earliest-starting,
// longest match always wins.
func TestScan_FirstThenLongest(t *testing.T) {
	src := `x = """a#b"""` + "\n"
	finders := DefaultFinders()
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 20; round++ {
		rng.Shuffle(len(finders), func(i, j int) {
			finders[i], finders[j] = finders[j], finders[i]
		})

		atoms := NewScanner(finders...).Scan(src)

		var str []Atom
		for _, a := range atoms {
			if a.Kind == AtomComment {
				t.Fatalf("round %d: comment atom leaked out of string interior", round)
			}
			if a.Kind == AtomString {
				str = append(str, a)
			}
		}
		if len(str) != 1 || str[0].Text(src) != `"""a#b"""` {
			t.Fatalf("round %d: string atoms = %v, want one full triple-quoted atom", round, str)
		}
	}
}

func TestScan_CommentParagraph(t *testing.T) {
	src := "# one\n# two\nx = 1\n"
	atoms := NewScanner().Scan(src)

	if len(atoms) == 0 || atoms[0].Kind != AtomComment {
		t.Fatalf("first atom = %v, want comment", kinds(atoms))
	}
	if got := atoms[0].Text(src); got != "# one\n# two\n" {
		t.Errorf("comment paragraph = %q, want both lines merged", got)
	}
}

func TestScan_TrailingComment(t *testing.T) {
	src := "x = 1  # note\n"
	atoms := NewScanner().Scan(src)

	var comment *Atom
	for i := range atoms {
		if atoms[i].Kind == AtomComment {
			comment = &atoms[i]
		}
	}
	if comment == nil {
		t.Fatalf("no comment atom in %v", kinds(atoms))
	}
	if comment.Start == 0 {
		t.Errorf("trailing comment should not start at column 0")
	}
}

func TestScan_BlanklineNotMidLine(t *testing.T) {
	// The trailing whitespace after the string must not register as a
	// blank line: the cursor sits mid-line after the string atom.
	src := "x = \"s\"  \ny = 2\n"
	atoms := NewScanner().Scan(src)

	for _, a := range atoms {
		if a.Kind == AtomBlankline {
			t.Errorf("spurious blankline atom at [%d,%d)", a.Start, a.End)
		}
	}
}

func TestScan_LineContinuation(t *testing.T) {
	src := "x = 1 + \\\n    2\n"
	atoms := NewScanner().Scan(src)

	found := false
	for _, a := range atoms {
		if a.Kind == AtomLineCont {
			found = true
			if got := a.Text(src); got != "\\\n" {
				t.Errorf("continuation atom = %q", got)
			}
		}
	}
	if !found {
		t.Fatalf("no line-continuation atom in %v", kinds(atoms))
	}
}

func TestScan_Idempotent(t *testing.T) {
	src := "def f():\n    \"\"\"doc # not a comment\"\"\"\n    return [1,\n            2]\n"
	s := NewScanner()

	first := s.Scan(src)
	second := s.Scan(src)

	if len(first) != len(second) {
		t.Fatalf("scan not idempotent: %d vs %d atoms", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("atom[%d] differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
