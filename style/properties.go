package style

import "strings"

// Property is a single CSS declaration
type Property struct {
	Name  string
	Value string
}

// Properties is an ordered set of CSS declarations. Setting an existing name
// replaces its value in place, so serialization order is first-set order.
type Properties []Property

// Set sets name to value
func (p *Properties) Set(name, value string) {
	for i := range *p {
		if (*p)[i].Name == name {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Name: name, Value: value})
}

// Get returns the value of name and whether it is present
func (p Properties) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

// Merge sets every declaration of other on p
func (p *Properties) Merge(other Properties) {
	for _, prop := range other {
		p.Set(prop.Name, prop.Value)
	}
}

// Len returns the number of declarations
func (p Properties) Len() int {
	return len(p)
}

// String serializes the declarations as an inline style attribute value
func (p Properties) String() string {
	var sb strings.Builder
	for i, prop := range p {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(prop.Name)
		sb.WriteString(": ")
		sb.WriteString(prop.Value)
	}
	return sb.String()
}
