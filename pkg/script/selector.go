// Package script defines the recorded-session data model: selectors,
// action variants and screen definitions. Pure data structures - the
// code emitter decides how to render them.
package script

import "sort"

// Selector describes how to re-locate an element at replay time.
// Built once from a catalog entry and immutable afterwards; it is the
// only thing recorded actions and emitted code ever reference.
type Selector struct {
	ResourceID  string `yaml:"resourceId,omitempty"`
	Text        string `yaml:"text,omitempty"`
	Description string `yaml:"description,omitempty"`
	ClassName   string `yaml:"className,omitempty"`

	// Extra carries any non-standard criteria (e.g. instance). Rarely set.
	Extra map[string]string `yaml:"extra,omitempty"`
}

// Criterion is one key/value match pair in serialization order.
type Criterion struct {
	Key   string
	Value string
}

// preferredKeys is the fixed serialization order for the standard criteria.
var preferredKeys = []string{"resourceId", "text", "description", "className"}

// IsEmpty reports whether the selector carries no criteria at all.
// An empty selector cannot reliably re-locate its element; this is
// accepted, not an error.
func (s Selector) IsEmpty() bool {
	return s.ResourceID == "" && s.Text == "" && s.Description == "" &&
		s.ClassName == "" && len(s.Extra) == 0
}

// Criteria returns the non-empty match pairs in emission order:
// resourceId, text, description, className, then extra keys sorted.
func (s Selector) Criteria() []Criterion {
	named := map[string]string{
		"resourceId":  s.ResourceID,
		"text":        s.Text,
		"description": s.Description,
		"className":   s.ClassName,
	}

	var out []Criterion
	for _, k := range preferredKeys {
		if v := named[k]; v != "" {
			out = append(out, Criterion{Key: k, Value: v})
		}
	}

	extraKeys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		if s.Extra[k] != "" {
			extraKeys = append(extraKeys, k)
		}
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		out = append(out, Criterion{Key: k, Value: s.Extra[k]})
	}

	return out
}

// Describe returns a short human-readable description for menus and logs.
func (s Selector) Describe() string {
	switch {
	case s.ResourceID != "":
		return "id=" + s.ResourceID
	case s.Text != "":
		return "text=" + s.Text
	case s.Description != "":
		return "desc=" + s.Description
	case s.ClassName != "":
		return "class=" + s.ClassName
	default:
		return "(no selector)"
	}
}
