package banner

import (
	"bytes"
	"go/token"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

// GoFile renders a Go source file containing only the banner and a package
// clause. The banner is followed by the standard "Code generated ... DO NOT
// EDIT." marker so that Go tooling treats the file as generated.
//
// Go files always use "//" comments, whatever the style's prefix is.
func GoFile(pkg, filename string, style Style) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, errors.Errorf("invalid Go package name %q", pkg)
	}
	style.CommentPrefix = "//"

	f := jen.NewFile(pkg)
	for _, line := range style.Lines(filename) {
		f.HeaderComment(line)
	}
	f.HeaderComment("Code generated by GYB. DO NOT EDIT.")

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrapf(err, "rendering Go header for %s", filename)
	}
	return buf.Bytes(), nil
}
