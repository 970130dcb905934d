package docstree

import (
	"strings"

	"github.com/tsawler/docstree/transform"
)

// Warning is a non-fatal issue found during conversion. The conversion
// still succeeds but some content was omitted.
type Warning struct {
	// Path locates the offending element, e.g. "body.content[3].paragraph.elements[0]".
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// FormatWarnings joins warnings into a single string, one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

func fromDiagnostics(ws []transform.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{Path: w.Path, Message: w.Message}
	}
	return out
}
