package codegen

import (
	"strings"

	"github.com/devicelab-dev/uiscribe/pkg/script"
)

// Output banner comments framing the copy-paste sections.
const (
	functionsHeader = "# --- All Generated Python Functions (copy this into your main automation script) ---"
	functionsFooter = "# --- End of All Generated Python Functions ---"
	helpersHeader   = "# --- Helper functions for screen recognition (copy this into your main automation script) ---"
	helpersFooter   = "# --- End of helper functions ---"
)

// Combine renders the full session output: an import prelude, every
// screen function in recording order, and the recognition helpers.
// Screens are never merged or reordered; recording the same screen
// name twice yields two functions.
func (e *Emitter) Combine(defs []script.ScreenDefinition) string {
	var b strings.Builder

	b.WriteString("import time\n\n")

	b.WriteString(functionsHeader + "\n")
	for i, def := range defs {
		b.WriteString(e.ScreenFunction(def))
		b.WriteString("\n")
		if i < len(defs)-1 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString(functionsFooter + "\n")

	b.WriteString("\n\n" + helpersHeader + "\n")
	b.WriteString(HelperBlock())
	b.WriteString("\n" + helpersFooter + "\n")

	return b.String()
}
