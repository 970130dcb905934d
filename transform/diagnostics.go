package transform

// Warning is a recoverable problem found while transforming. The node it
// concerns was omitted from the output.
type Warning struct {
	Path    string // location in the source document, e.g. body.content[3]
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// Diagnostics receives warnings during a transform
type Diagnostics interface {
	Warn(w Warning)
}

// Collector is a Diagnostics that keeps every warning in order
type Collector struct {
	warnings []Warning
}

// Warn records w
func (c *Collector) Warn(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the recorded warnings
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Len returns the number of recorded warnings
func (c *Collector) Len() int {
	return len(c.warnings)
}

type discard struct{}

func (discard) Warn(Warning) {}

// Discard is a Diagnostics that drops every warning
var Discard Diagnostics = discard{}
