// Package banner builds the "do not edit" warning block that is placed at the
// top of every file produced by a GYB template run.
package banner

import (
	"strings"
)

// borderWidth is the width of the boxed part of the banner, counted from the
// first '#' to the last. It does not depend on the filename.
const borderWidth = 77

const title = "DO NOT EDIT THIS FILE; IT IS AUTOGENERATED."

// titleIndent is the number of spaces between the left edge of the box and
// the title.
const titleIndent = 12

var notice = []string{
	"WARNING: This file is auto-generated by the code generation tool.",
	"Modifications to this file may be overwritten and lost if the code is regenerated.",
	"If you need to make changes, update the source schema or generation process instead.",
	"DO NOT EDIT THIS FILE MANUALLY.",
}

// AutogeneratedWarning returns the banner for filename using the default
// Swift style. The ".swift" extension is always appended, so callers pass the
// name without it.
//
// The result starts and ends with a newline so it can be concatenated
// directly in front of generated source.
func AutogeneratedWarning(filename string) string {
	return Swift.Render(filename)
}

// Render returns the banner for filename surrounded by a leading and a
// trailing newline.
func (s Style) Render(filename string) string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, line := range s.Lines(filename) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines returns the banner for filename, one comment line per element.
func (s Style) Lines(filename string) []string {
	border := strings.Repeat("#", borderWidth)
	empty := "#" + strings.Repeat(" ", borderWidth-2) + "#"
	heading := "#" + strings.Repeat(" ", titleIndent) + title
	heading += strings.Repeat(" ", borderWidth-1-len(heading)) + "#"

	lines := []string{
		s.comment(""),
		s.comment(border),
		s.comment(empty),
		s.comment(heading),
		s.comment(empty),
		s.comment(border),
		s.comment(""),
	}
	for _, n := range notice {
		lines = append(lines, s.comment(n))
	}
	return append(lines,
		s.comment(""),
		s.comment("Auto-generated file: "+filename+s.Extension),
		s.comment(s.Attribution),
	)
}

func (s Style) comment(text string) string {
	if text == "" {
		return s.CommentPrefix
	}
	return s.CommentPrefix + " " + text
}
