package banner

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAutogeneratedWarning_Golden(t *testing.T) {
	want, err := os.ReadFile("testdata/foo.golden")
	if err != nil {
		t.Fatal(err)
	}

	got := AutogeneratedWarning("Foo")
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

func TestAutogeneratedWarning_FilenameLine(t *testing.T) {
	tests := []string{
		"Foo",
		"a",
		"Sources/Core/Generated/BitSet",
		"name with spaces",
		"Foo.swift", // suffix is appended again
		strings.Repeat("x", 300),
	}

	for _, name := range tests {
		t.Run(name[:min(len(name), 20)], func(t *testing.T) {
			got := AutogeneratedWarning(name)
			want := "Auto-generated file: " + name + ".swift"
			if n := strings.Count(got, want); n != 1 {
				t.Errorf("found %q %d times, want 1", want, n)
			}
		})
	}
}

func TestAutogeneratedWarning_FooScenario(t *testing.T) {
	got := AutogeneratedWarning("Foo")
	if !containsLine(got, "// Auto-generated file: Foo.swift") {
		t.Errorf("missing filename line in:\n%s", got)
	}
	if !containsLine(got, "// Generated by GYB") {
		t.Errorf("missing attribution line in:\n%s", got)
	}
}

func TestAutogeneratedWarning_EmptyFilename(t *testing.T) {
	got := AutogeneratedWarning("")
	if !containsLine(got, "// Auto-generated file: .swift") {
		t.Errorf("missing filename line in:\n%s", got)
	}
	if !strings.HasPrefix(got, "\n//\n") || !strings.HasSuffix(got, "Generated by GYB\n") {
		t.Errorf("unexpected framing:\n%q", got)
	}
}

func TestBorderWidthIndependentOfFilename(t *testing.T) {
	short := Swift.Lines("a")
	long := Swift.Lines(strings.Repeat("Long", 100))

	if len(short) != len(long) {
		t.Fatalf("line count changed: %d vs %d", len(short), len(long))
	}
	// The box occupies lines 1 through 5.
	for i := 1; i <= 5; i++ {
		if len(short[i]) != 80 {
			t.Errorf("line %d is %d columns, want 80: %q", i, len(short[i]), short[i])
		}
		if short[i] != long[i] {
			t.Errorf("line %d differs: %q vs %q", i, short[i], long[i])
		}
	}
}

func TestStyleRender(t *testing.T) {
	tests := []struct {
		name      string
		style     Style
		wantLines []string
	}{
		{
			name:  "python",
			style: Python,
			wantLines: []string{
				"#",
				"# DO NOT EDIT THIS FILE MANUALLY.",
				"# Auto-generated file: gen.py",
				"# Generated by GYB",
			},
		},
		{
			name:  "custom",
			style: Style{CommentPrefix: "--", Extension: ".sql", Attribution: "Generated by tables.yml"},
			wantLines: []string{
				"--",
				"-- Auto-generated file: gen.sql",
				"-- Generated by tables.yml",
			},
		},
		{
			name:  "no extension",
			style: Style{CommentPrefix: "//"},
			wantLines: []string{
				"// Auto-generated file: gen",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.Render("gen")
			for _, line := range tt.wantLines {
				if !containsLine(got, line) {
					t.Errorf("missing line %q in:\n%s", line, got)
				}
			}
			for _, line := range tt.style.Lines("gen") {
				if !strings.HasPrefix(line, tt.style.CommentPrefix) {
					t.Errorf("line %q lacks prefix %q", line, tt.style.CommentPrefix)
				}
			}
		})
	}
}

func TestEmptyAttributionIsBareComment(t *testing.T) {
	lines := Style{CommentPrefix: "//", Extension: ".swift"}.Lines("Foo")
	if got := lines[len(lines)-1]; got != "//" {
		t.Errorf("got %q, want %q", got, "//")
	}
}

func containsLine(text, line string) bool {
	for _, l := range strings.Split(text, "\n") {
		if l == line {
			return true
		}
	}
	return false
}
