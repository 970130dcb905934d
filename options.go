package docstree

// Options holds configuration for a conversion
type Options struct {
	// PrettyHeaderIDs replaces heading ids with slugs of the heading text
	// and rewrites links to them.
	PrettyHeaderIDs bool
	// Styles keeps inline style attributes and span wrappers.
	Styles bool
}

// DefaultOptions returns the default conversion options
func DefaultOptions() Options {
	return defaultOptions()
}

func defaultOptions() Options {
	return Options{
		PrettyHeaderIDs: true,
		Styles:          true,
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		PrettyHeaderIDs: o.PrettyHeaderIDs,
		Styles:          o.Styles,
	}
}
