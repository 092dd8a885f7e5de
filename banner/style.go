package banner

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultAttribution is the closing line of every banner unless a style
// overrides it.
const DefaultAttribution = "Generated by GYB"

// ErrUnknownPreset is returned by Lookup for names that are not registered.
var ErrUnknownPreset = errors.New("unknown banner preset")

// Style controls the parts of the banner that depend on the language of the
// generated file.
type Style struct {
	// CommentPrefix starts every banner line (e.g. "//" or "#").
	CommentPrefix string

	// Extension is appended to the filename in the "Auto-generated file"
	// line. It is appended unconditionally.
	Extension string

	// Attribution is the last line of the banner.
	Attribution string
}

// Presets for common target languages. Swift is the default.
var (
	Swift  = Style{CommentPrefix: "//", Extension: ".swift", Attribution: DefaultAttribution}
	Go     = Style{CommentPrefix: "//", Extension: ".go", Attribution: DefaultAttribution}
	C      = Style{CommentPrefix: "//", Extension: ".c", Attribution: DefaultAttribution}
	Python = Style{CommentPrefix: "#", Extension: ".py", Attribution: DefaultAttribution}
	Shell  = Style{CommentPrefix: "#", Extension: ".sh", Attribution: DefaultAttribution}
)

var presets = map[string]Style{
	"swift":  Swift,
	"go":     Go,
	"c":      C,
	"python": Python,
	"shell":  Shell,
}

// Presets returns the sorted names accepted by Lookup.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset registered under name. The empty name selects
// the Swift style.
func Lookup(name string) (Style, error) {
	if name == "" {
		return Swift, nil
	}
	s, ok := presets[strings.ToLower(name)]
	if !ok {
		return Style{}, errors.Wrapf(ErrUnknownPreset, "%q (known: %s)", name, strings.Join(Presets(), ", "))
	}
	return s, nil
}

// Validate reports every problem with the style at once.
func (s Style) Validate() error {
	var result *multierror.Error
	if s.CommentPrefix == "" {
		result = multierror.Append(result, errors.New("comment prefix must not be empty"))
	} else if hasLineBreak(s.CommentPrefix) {
		result = multierror.Append(result, errors.Errorf("comment prefix %q contains a line break", s.CommentPrefix))
	}
	if s.Extension != "" {
		if !strings.HasPrefix(s.Extension, ".") {
			result = multierror.Append(result, errors.Errorf("extension %q must start with '.'", s.Extension))
		}
		if strings.ContainsAny(s.Extension, " \t\r\n") {
			result = multierror.Append(result, errors.Errorf("extension %q contains whitespace", s.Extension))
		}
	}
	if hasLineBreak(s.Attribution) {
		result = multierror.Append(result, errors.Errorf("attribution %q contains a line break", s.Attribution))
	}
	return result.ErrorOrNil()
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
