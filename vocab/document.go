// Package vocab defines the ActivityStreams vocabulary the engine
// validates against: the document shape, the recognized type sets, the
// per-property rule table and the per-activity requirement sets. The
// tables are immutable process-wide state, built once and safe to share
// across concurrent validations.
package vocab

import "sort"

// ContextURI is the ActivityStreams vocabulary context every object is
// expected to declare.
const ContextURI = "https://www.w3.org/ns/activitystreams"

// Document is a parsed JSON object mapping property names to values.
// Values are the usual encoding/json shapes: string, float64, bool,
// nil, map[string]any and []any.
type Document map[string]any

// AsDocument reports whether v is object-shaped and returns it as a
// Document. Only mappings qualify; scalars, sequences and nil do not.
func AsDocument(v any) (Document, bool) {
	switch doc := v.(type) {
	case Document:
		return doc, doc != nil
	case map[string]any:
		return Document(doc), doc != nil
	default:
		return nil, false
	}
}

// Has reports whether the property is present, regardless of value.
func (d Document) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Get returns the property value, or nil when absent.
func (d Document) Get(name string) any {
	return d[name]
}

// Types returns the document's type tokens. A single string yields one
// token; an array yields its string elements; anything else is empty.
func (d Document) Types() []string {
	switch v := d["type"].(type) {
	case string:
		return []string{v}
	case []any:
		var types []string
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				types = append(types, s)
			}
		}
		return types
	default:
		return nil
	}
}

// HasType reports whether the document's type tokens intersect names.
func (d Document) HasType(names ...string) bool {
	for _, typ := range d.Types() {
		for _, name := range names {
			if typ == name {
				return true
			}
		}
	}
	return false
}

// DeclaresContext reports whether the document declares the
// ActivityStreams context: either the exact context URI, or a
// two-element array containing the URI plus exactly one map (the
// extension-context form). No other shape qualifies; JSON-LD expansion
// is out of scope.
func (d Document) DeclaresContext() bool {
	switch ctx := d["@context"].(type) {
	case string:
		return ctx == ContextURI
	case []any:
		if len(ctx) != 2 {
			return false
		}
		var hasURI, hasMap bool
		for _, elem := range ctx {
			switch e := elem.(type) {
			case string:
				if e == ContextURI {
					hasURI = true
				}
			case map[string]any:
				hasMap = true
			}
		}
		return hasURI && hasMap
	default:
		return false
	}
}

// PropertyNames returns the document's keys in sorted order, for
// deterministic fault output.
func (d Document) PropertyNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
