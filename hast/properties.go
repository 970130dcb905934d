package hast

// Property is a single element attribute
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered attribute list. Setting an existing key replaces
// its value in place.
type Properties []Property

// Set sets key to value
func (p *Properties) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: value})
}

// Get returns the value of key and whether it is present
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present
func (p Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes key if present
func (p *Properties) Delete(key string) {
	for i := range *p {
		if (*p)[i].Key == key {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return
		}
	}
}

// Len returns the number of attributes
func (p Properties) Len() int {
	return len(p)
}

// Clone returns an independent copy
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	copy(out, p)
	return out
}
