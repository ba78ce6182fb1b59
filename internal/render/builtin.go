package render

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var builtinFS embed.FS

// BuiltinContent returns the text of the embedded template.
func BuiltinContent() string {
	data, err := builtinFS.ReadFile("templates/" + DefaultName)
	if err != nil {
		panic(fmt.Sprintf("reading builtin template: %v", err))
	}
	return string(data)
}
